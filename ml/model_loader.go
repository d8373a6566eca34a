package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

const (
	ModelDecisionTree = "decision_tree"
	ModelLinear       = "linear"
)

// ErrArtifactLoad reports a missing, unreadable or incompatible artifact.
var ErrArtifactLoad = errors.New("artifact load failed")

type modelFile struct {
	Type      string      `json:"type"`
	Nodes     []TreeNode  `json:"nodes,omitempty"`
	Classes   []int       `json:"classes,omitempty"`
	Coef      [][]float64 `json:"coef,omitempty"`
	Intercept []float64   `json:"intercept,omitempty"`
}

// LoadModel reads a classifier artifact; the type is recorded in the file.
func LoadModel(path string) (Classifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file modelFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	switch file.Type {
	case ModelDecisionTree:
		return NewDecisionTree(file.Nodes)
	case ModelLinear:
		return NewLinearClassifier(file.Classes, file.Coef, file.Intercept)
	default:
		return nil, errors.New("unsupported model type")
	}
}

type ArtifactConfig struct {
	ModelPath  string
	ScalerPath string
}

// Artifacts is the immutable pair every prediction reads from.
type Artifacts struct {
	scaler     Scaler
	classifier Classifier
}

// NewArtifacts wraps already-constructed artifacts.
func NewArtifacts(scaler Scaler, classifier Classifier) *Artifacts {
	return &Artifacts{scaler: scaler, classifier: classifier}
}

// LoadArtifacts reads the scaler and classifier once. Both are attempted so
// a broken deployment reports every bad file at once.
func LoadArtifacts(cfg ArtifactConfig) (*Artifacts, error) {
	var errs error

	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("scaler %q: %w", cfg.ScalerPath, err))
	}
	classifier, err := LoadModel(cfg.ModelPath)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("model %q: %w", cfg.ModelPath, err))
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactLoad, errs)
	}
	return NewArtifacts(scaler, classifier), nil
}

func (a *Artifacts) Scaler() Scaler {
	return a.scaler
}

func (a *Artifacts) Classifier() Classifier {
	return a.classifier
}
