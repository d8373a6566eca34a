package ml

import (
	"errors"
	"fmt"
)

// Predictor runs the scale, classify, decode pipeline. It holds no mutable
// state and is safe for concurrent use.
type Predictor struct {
	scaler     Scaler
	classifier Classifier
}

func NewPredictor(artifacts *Artifacts) (*Predictor, error) {
	if artifacts == nil || artifacts.scaler == nil || artifacts.classifier == nil {
		return nil, errors.New("predictor requires a scaler and a classifier")
	}
	return &Predictor{scaler: artifacts.scaler, classifier: artifacts.classifier}, nil
}

// Predict does not range-check the input; callers validate against the form.
func (p *Predictor) Predict(vector FeatureVector) (PriceCategory, error) {
	scaled := p.scaler.Transform(vector)
	label, err := p.classifier.Predict(scaled)
	if err != nil {
		return PriceCategory{}, fmt.Errorf("classify: %w", err)
	}
	return CategoryForLabel(label)
}

func (p *Predictor) PredictSpec(spec PhoneSpec) (PriceCategory, error) {
	return p.Predict(spec.Vector())
}
