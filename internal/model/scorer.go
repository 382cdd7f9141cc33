// Package model загружает обученные артефакты (scaler, классификатор, список признаков,
// метаданные) и считает вероятность кризиса для вектора признаков.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shenikar/food_insecurity_ews/internal/features"
)

// Имена файлов артефактов в каталоге модели
const (
	ScalerFile      = "scaler.json"
	ClassifierFile  = "classifier.json"
	TopFeaturesFile = "top_features.json"
	MetadataFile    = "model_metadata.json"
)

// DefaultThreshold - порог бинарного решения, если он не задан в метаданных
const DefaultThreshold = 0.45

// DefaultModelName используется, если имя модели не задано в метаданных
const DefaultModelName = "Random Forest (Tuned, Simplified)"

var (
	// ErrInvalidArtifact - артефакт не читается или внутренне противоречив
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrFeatureContract - артефакты не согласованы с порядком признаков сервиса
	ErrFeatureContract = errors.New("feature contract mismatch")
)

// Metadata - метрики и порог модели из model_metadata.json
type Metadata struct {
	ModelName string   `json:"model_name,omitempty"`
	Version   string   `json:"version,omitempty"`
	Recall    *float64 `json:"recall"`
	ROCAUC    *float64 `json:"roc_auc"`
	Threshold *float64 `json:"threshold"`
}

// DecisionThreshold возвращает порог из метаданных или 0.45
func (m Metadata) DecisionThreshold() float64 {
	if m.Threshold == nil {
		return DefaultThreshold
	}
	return *m.Threshold
}

// Name возвращает имя модели для ответа API
func (m Metadata) Name() string {
	if m.ModelName == "" {
		return DefaultModelName
	}
	return m.ModelName
}

// Scorer - scaler + проекция на топ-признаки + классификатор.
// Не изменяется после создания и безопасен для конкурентного использования.
type Scorer struct {
	scaler      *StandardScaler
	classifier  Classifier
	topFeatures []string
	topIndex    []int
	meta        Metadata
}

// Load читает артефакты из каталога и проверяет их согласованность
func Load(dir string) (*Scorer, error) {
	var scaler StandardScaler
	if err := readJSON(filepath.Join(dir, ScalerFile), &scaler); err != nil {
		return nil, err
	}

	var top []string
	if err := readJSON(filepath.Join(dir, TopFeaturesFile), &top); err != nil {
		return nil, err
	}

	var meta Metadata
	if err := readJSON(filepath.Join(dir, MetadataFile), &meta); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, ClassifierFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ClassifierFile, err)
	}
	classifier, err := decodeClassifier(data)
	if err != nil {
		return nil, err
	}

	return New(&scaler, classifier, top, meta)
}

// New проверяет контракт признаков:
//   - scaler обучен ровно на features.ScalerOrder() в том же порядке;
//   - каждый топ-признак есть в scaler и встречается один раз;
//   - классификатор ожидает столько входов, сколько топ-признаков.
func New(scaler *StandardScaler, classifier Classifier, topFeatures []string, meta Metadata) (*Scorer, error) {
	if err := scaler.validate(); err != nil {
		return nil, err
	}

	order := features.ScalerOrder()
	if len(scaler.FeatureNames) != len(order) {
		return nil, fmt.Errorf("%w: scaler has %d features, service builds %d",
			ErrFeatureContract, len(scaler.FeatureNames), len(order))
	}
	position := make(map[string]int, len(order))
	for i, name := range order {
		if scaler.FeatureNames[i] != name {
			return nil, fmt.Errorf("%w: scaler feature %d is %q, want %q",
				ErrFeatureContract, i, scaler.FeatureNames[i], name)
		}
		position[name] = i
	}

	if len(topFeatures) == 0 {
		return nil, fmt.Errorf("%w: top feature list is empty", ErrFeatureContract)
	}
	seen := make(map[string]bool, len(topFeatures))
	topIndex := make([]int, len(topFeatures))
	for i, name := range topFeatures {
		idx, ok := position[name]
		if !ok {
			return nil, fmt.Errorf("%w: top feature %q is not a scaler feature", ErrFeatureContract, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: top feature %q is listed twice", ErrFeatureContract, name)
		}
		seen[name] = true
		topIndex[i] = idx
	}

	if classifier.NumFeatures() != len(topFeatures) {
		return nil, fmt.Errorf("%w: classifier expects %d features, top list has %d",
			ErrFeatureContract, classifier.NumFeatures(), len(topFeatures))
	}

	if t := meta.DecisionThreshold(); t < 0 || t > 1 {
		return nil, fmt.Errorf("%w: threshold %.3f out of [0,1]", ErrInvalidArtifact, t)
	}

	return &Scorer{
		scaler:      scaler,
		classifier:  classifier,
		topFeatures: append([]string(nil), topFeatures...),
		topIndex:    topIndex,
		meta:        meta,
	}, nil
}

// Score масштабирует 28 признаков, оставляет топ-признаки и возвращает вероятность класса 1
func (s *Scorer) Score(v features.Vector) (float64, error) {
	full, err := v.Ordered(s.scaler.FeatureNames)
	if err != nil {
		return 0, err
	}

	scaled, err := s.scaler.Transform(full)
	if err != nil {
		return 0, err
	}

	x := make([]float64, len(s.topIndex))
	for i, idx := range s.topIndex {
		x[i] = scaled[idx]
	}

	p, err := s.classifier.PredictProba(x)
	if err != nil {
		return 0, fmt.Errorf("classifier: %w", err)
	}
	return p, nil
}

// Metadata возвращает метаданные модели
func (s *Scorer) Metadata() Metadata {
	return s.meta
}

// TopFeatures возвращает копию списка признаков классификатора
func (s *Scorer) TopFeatures() []string {
	return append([]string(nil), s.topFeatures...)
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, filepath.Base(path), err)
	}
	return nil
}
