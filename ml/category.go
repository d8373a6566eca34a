package ml

import (
	"errors"
	"fmt"
)

// CategoryID is the classifier label of a price bracket.
type CategoryID int

const (
	CategoryLow CategoryID = iota
	CategoryMedium
	CategoryHigh
	CategoryVeryHigh
)

func (c CategoryID) String() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryMedium:
		return "medium"
	case CategoryHigh:
		return "high"
	case CategoryVeryHigh:
		return "very_high"
	default:
		return fmt.Sprintf("CategoryID(%d)", int(c))
	}
}

// PriceCategory describes one price bracket for display.
type PriceCategory struct {
	ID          CategoryID `json:"id"`
	Label       string     `json:"label"`
	PriceRange  string     `json:"price_range"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
}

var categories = [...]PriceCategory{
	CategoryLow:      {ID: CategoryLow, Label: "Low Cost", PriceRange: "$0 - $150", Description: "Perfect for basic usage", Color: "#28a745"},
	CategoryMedium:   {ID: CategoryMedium, Label: "Medium Cost", PriceRange: "$151 - $400", Description: "Great balance of features and price", Color: "#007bff"},
	CategoryHigh:     {ID: CategoryHigh, Label: "High Cost", PriceRange: "$401 - $800", Description: "Premium features and performance", Color: "#6f42c1"},
	CategoryVeryHigh: {ID: CategoryVeryHigh, Label: "Very High Cost", PriceRange: "$801+", Description: "Flagship with cutting-edge technology", Color: "#fd7e14"},
}

// ErrSchemaMismatch means the classifier produced a label with no category,
// i.e. the model artifact does not match this service.
var ErrSchemaMismatch = errors.New("schema mismatch")

type SchemaMismatchError struct {
	Label int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: classifier returned label %d, expected 0..%d", e.Label, len(categories)-1)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// CategoryForLabel maps a classifier label to its price bracket.
func CategoryForLabel(label int) (PriceCategory, error) {
	if label < 0 || label >= len(categories) {
		return PriceCategory{}, &SchemaMismatchError{Label: label}
	}
	return categories[label], nil
}

// Categories returns all brackets in label order.
func Categories() []PriceCategory {
	return append([]PriceCategory(nil), categories[:]...)
}
