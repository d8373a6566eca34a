package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"phoneprice/ml"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError is one out-of-range input.
type FieldError struct {
	Field   string  `json:"field"`
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ValidationErrors lists every rejected field of a spec.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Defaults returns a spec with every field at its declared default.
func Defaults() ml.PhoneSpec {
	var spec ml.PhoneSpec
	if err := defaults.Set(&spec); err != nil {
		// tags are static; a failure here is a programming error
		panic(fmt.Sprintf("form: bad default tag: %v", err))
	}
	return spec
}

// Validate checks every field against its declared bounds. It returns
// ValidationErrors when any field is out of range.
func Validate(spec ml.PhoneSpec) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	out := FieldError{
		Field: fe.Field(),
		Code:  "ERR_" + strings.ToUpper(fe.Tag()),
	}
	decl, ok := Lookup(fe.Field())
	if ok {
		out.Min = decl.Min
		out.Max = decl.Max
	}
	label := fe.Field()
	if ok {
		label = decl.Label
	}
	switch fe.Tag() {
	case "gte":
		out.Message = fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		out.Message = fmt.Sprintf("%s must be at most %s", label, fe.Param())
	default:
		out.Message = fmt.Sprintf("%s failed validation: %s", label, fe.Tag())
	}
	return out
}
