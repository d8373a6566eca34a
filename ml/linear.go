package ml

import (
	"errors"
	"fmt"
)

// LinearClassifier is a multinomial linear model: the predicted class is the
// one whose row of coefficients scores highest. Ties go to the earlier class.
type LinearClassifier struct {
	classes   []int
	coef      [][FeatureCount]float64
	intercept []float64
}

func NewLinearClassifier(classes []int, coef [][]float64, intercept []float64) (*LinearClassifier, error) {
	if len(classes) == 0 {
		return nil, errors.New("linear model has no classes")
	}
	if len(coef) != len(classes) || len(intercept) != len(classes) {
		return nil, fmt.Errorf("linear model: %d classes, %d coefficient rows, %d intercepts",
			len(classes), len(coef), len(intercept))
	}
	rows := make([][FeatureCount]float64, len(coef))
	for i, row := range coef {
		arr, err := toFeatureArray(fmt.Sprintf("coef[%d]", i), row)
		if err != nil {
			return nil, err
		}
		rows[i] = arr
	}
	return &LinearClassifier{
		classes:   append([]int(nil), classes...),
		coef:      rows,
		intercept: append([]float64(nil), intercept...),
	}, nil
}

func (lc *LinearClassifier) Predict(features ScaledVector) (int, error) {
	best := 0
	bestScore := 0.0
	for k, row := range lc.coef {
		score := lc.intercept[k]
		for i, w := range row {
			score += w * features[i]
		}
		if k == 0 || score > bestScore {
			best = k
			bestScore = score
		}
	}
	return lc.classes[best], nil
}
