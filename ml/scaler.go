package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	ScalerStandard = "standard"
	ScalerMinMax   = "minmax"
)

// StandardScaler computes (x - mean) / scale per feature.
type StandardScaler struct {
	Mean  [FeatureCount]float64
	Scale [FeatureCount]float64
}

func (s *StandardScaler) Transform(vector FeatureVector) ScaledVector {
	var out ScaledVector
	for i, v := range vector {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out
}

// MinMaxScaler computes x*scale + min per feature, where min and scale are
// the fitted offsets rather than the observed data bounds.
type MinMaxScaler struct {
	Min   [FeatureCount]float64
	Scale [FeatureCount]float64
}

func (s *MinMaxScaler) Transform(vector FeatureVector) ScaledVector {
	var out ScaledVector
	for i, v := range vector {
		out[i] = v*s.Scale[i] + s.Min[i]
	}
	return out
}

type scalerFile struct {
	Kind  string    `json:"kind"`
	Mean  []float64 `json:"mean,omitempty"`
	Min   []float64 `json:"min,omitempty"`
	Scale []float64 `json:"scale"`
}

// LoadScaler reads fitted scaler parameters from a JSON artifact.
func LoadScaler(path string) (Scaler, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file scalerFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode scaler %s: %w", path, err)
	}

	scale, err := toFeatureArray("scale", file.Scale)
	if err != nil {
		return nil, err
	}
	for i, v := range scale {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("scale[%d] is not finite", i)
		}
	}

	switch file.Kind {
	case ScalerStandard:
		mean, err := toFeatureArray("mean", file.Mean)
		if err != nil {
			return nil, err
		}
		// a constant training column is stored with zero scale; treat it as 1
		for i := range scale {
			if scale[i] == 0 {
				scale[i] = 1
			}
		}
		return &StandardScaler{Mean: mean, Scale: scale}, nil
	case ScalerMinMax:
		offset, err := toFeatureArray("min", file.Min)
		if err != nil {
			return nil, err
		}
		return &MinMaxScaler{Min: offset, Scale: scale}, nil
	case "":
		return nil, errors.New("scaler kind is required")
	default:
		return nil, fmt.Errorf("unsupported scaler kind %q", file.Kind)
	}
}

func toFeatureArray(name string, values []float64) ([FeatureCount]float64, error) {
	var out [FeatureCount]float64
	if len(values) != FeatureCount {
		return out, fmt.Errorf("%s has %d values, expected %d", name, len(values), FeatureCount)
	}
	copy(out[:], values)
	return out, nil
}
