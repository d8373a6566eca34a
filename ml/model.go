package ml

// Scaler normalizes raw features into the range the classifier was fitted on.
type Scaler interface {
	Transform(vector FeatureVector) ScaledVector
}

// Classifier maps a scaled feature vector to a class label.
type Classifier interface {
	Predict(features ScaledVector) (int, error)
}
