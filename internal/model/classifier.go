package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Виды классификаторов в classifier.json
const (
	KindRandomForest       = "random_forest"
	KindLogisticRegression = "logistic_regression"
)

// Classifier возвращает вероятность класса 1
type Classifier interface {
	PredictProba(x []float64) (float64, error)
	NumFeatures() int
}

type classifierFile struct {
	Kind      string         `json:"kind"`
	NFeatures int            `json:"n_features"`
	Trees     []DecisionTree `json:"trees,omitempty"`
	Coef      []float64      `json:"coef,omitempty"`
	Intercept float64        `json:"intercept,omitempty"`
}

func decodeClassifier(data []byte) (Classifier, error) {
	var file classifierFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: classifier: %v", ErrInvalidArtifact, err)
	}

	switch file.Kind {
	case KindRandomForest:
		return NewRandomForest(file.NFeatures, file.Trees)
	case KindLogisticRegression:
		return NewLogisticRegression(file.Coef, file.Intercept)
	}
	return nil, fmt.Errorf("%w: unknown classifier kind %q", ErrInvalidArtifact, file.Kind)
}

// DecisionTree - дерево в раскладке scikit-learn (tree_.children_left и т.д.).
// Лист помечается children_left == -1.
type DecisionTree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

const leafNode = -1

func (t *DecisionTree) validate(nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree arrays have different lengths")
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == leafNode {
			if len(t.Value[i]) < 2 {
				return fmt.Errorf("leaf %d has %d class values, want 2", i, len(t.Value[i]))
			}
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has children out of range", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d of %d", i, t.Feature[i], nFeatures)
		}
	}
	return nil
}

// leafProba проходит дерево и возвращает долю класса 1 в листе
func (t *DecisionTree) leafProba(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != leafNode {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	value := t.Value[node]
	total := 0.0
	for _, v := range value {
		total += v
	}
	if total == 0 {
		return 0
	}
	return value[1] / total
}

// RandomForest усредняет вероятности листьев по всем деревьям
type RandomForest struct {
	nFeatures int
	trees     []DecisionTree
}

// NewRandomForest проверяет деревья и создает лес
func NewRandomForest(nFeatures int, trees []DecisionTree) (*RandomForest, error) {
	if nFeatures <= 0 {
		return nil, fmt.Errorf("%w: random forest n_features must be positive", ErrInvalidArtifact)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: random forest has no trees", ErrInvalidArtifact)
	}
	for i := range trees {
		if err := trees[i].validate(nFeatures); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, i, err)
		}
	}
	return &RandomForest{nFeatures: nFeatures, trees: trees}, nil
}

func (f *RandomForest) NumFeatures() int {
	return f.nFeatures
}

func (f *RandomForest) PredictProba(x []float64) (float64, error) {
	if len(x) != f.nFeatures {
		return 0, fmt.Errorf("random forest expects %d features, got %d", f.nFeatures, len(x))
	}
	sum := 0.0
	for i := range f.trees {
		sum += f.trees[i].leafProba(x)
	}
	return clamp01(sum / float64(len(f.trees))), nil
}

// LogisticRegression - sigmoid(intercept + coef·x)
type LogisticRegression struct {
	coef      []float64
	intercept float64
}

// NewLogisticRegression создает логистическую регрессию
func NewLogisticRegression(coef []float64, intercept float64) (*LogisticRegression, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: logistic regression has no coefficients", ErrInvalidArtifact)
	}
	return &LogisticRegression{coef: coef, intercept: intercept}, nil
}

func (l *LogisticRegression) NumFeatures() int {
	return len(l.coef)
}

func (l *LogisticRegression) PredictProba(x []float64) (float64, error) {
	if len(x) != len(l.coef) {
		return 0, fmt.Errorf("logistic regression expects %d features, got %d", len(l.coef), len(x))
	}
	z := l.intercept
	for i, c := range l.coef {
		z += c * x[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

func clamp01(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
