package model

import (
	"fmt"
)

// StandardScaler - зафиксированное аффинное преобразование (x - mean) / scale
type StandardScaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

func (s *StandardScaler) validate() error {
	n := len(s.FeatureNames)
	if len(s.Mean) != n || len(s.Scale) != n {
		return fmt.Errorf("%w: scaler has %d names, %d means, %d scales",
			ErrInvalidArtifact, n, len(s.Mean), len(s.Scale))
	}
	for i, scale := range s.Scale {
		if scale == 0 {
			return fmt.Errorf("%w: scaler scale for %q is zero", ErrInvalidArtifact, s.FeatureNames[i])
		}
	}
	return nil
}

// Transform масштабирует вектор. Длина x должна совпадать с числом признаков.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d values, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	for i, value := range x {
		out[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}
