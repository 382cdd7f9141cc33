package features

import (
	"errors"
	"fmt"
)

// ErrMissingFeature возвращается, если в векторе нет требуемого признака
var ErrMissingFeature = errors.New("missing feature")

// Vector - именованные значения признаков
type Vector map[string]float64

// Ordered раскладывает вектор в срез в заданном порядке.
// Отсутствующий признак - ошибка, а не молчаливый ноль.
func (v Vector) Ordered(names []string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		value, ok := v[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingFeature, name)
		}
		out[i] = value
	}
	return out, nil
}

// Get возвращает значение признака или 0
func (v Vector) Get(name string) float64 {
	return v[name]
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
