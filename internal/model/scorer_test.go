package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shenikar/food_insecurity_ews/internal/features"
	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

func ptr(f float64) *float64 { return &f }

func loadTestScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := Load(testdataDir)
	require.NoError(t, err)
	return scorer
}

func baringoVector(t *testing.T, prev, basket string) features.Vector {
	t.Helper()
	county := models.County{
		Name:               "Baringo",
		Region:             models.RegionRiftValley,
		VulnerabilityScore: ptr(0.2),
		IsASAL:             true,
		PriceBands:         models.PriceBands{Affordable: 44, Moderate: 84, Elevated: 124, High: 164},
	}
	v, err := features.Build(models.PredictionRequest{
		County:             "Baringo",
		PreviousCrisis:     prev,
		RainfallLastMonth:  models.RainfallNormal,
		Rainfall3MonthsAgo: models.RainfallNormal,
		FoodBasketLevel:    basket,
		Month:              6,
	}, county)
	require.NoError(t, err)
	return v
}

func TestLoad_TestArtifacts(t *testing.T) {
	scorer := loadTestScorer(t)

	meta := scorer.Metadata()
	assert.Equal(t, 0.45, meta.DecisionThreshold())
	require.NotNil(t, meta.Recall)
	assert.Equal(t, 0.83, *meta.Recall)
	assert.Equal(t, "Random Forest (Tuned, Simplified)", meta.Name())
	assert.Len(t, scorer.TopFeatures(), 21)
}

func TestScore_KnownInputs(t *testing.T) {
	scorer := loadTestScorer(t)

	tests := []struct {
		name   string
		prev   string
		basket string
		want   float64
	}{
		{"no crisis, moderate prices", models.AnswerNo, models.BasketModerate, 0.31},
		{"previous crisis, moderate prices", models.AnswerYes, models.BasketModerate, 0.575},
		{"previous crisis, elevated prices", models.AnswerYes, models.BasketElevated, 0.725},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := scorer.Score(baringoVector(t, tt.prev, tt.basket))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, p, 1e-9)
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	scorer := loadTestScorer(t)
	v := baringoVector(t, models.AnswerNo, models.BasketModerate)

	first, err := scorer.Score(v)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = scorer.Score(v)
		}(i)
	}
	wg.Wait()

	for _, p := range results {
		assert.Equal(t, first, p)
	}
}

func TestScore_MissingFeatureIsError(t *testing.T) {
	scorer := loadTestScorer(t)
	v := baringoVector(t, models.AnswerNo, models.BasketModerate)
	delete(v, features.IsASAL)

	_, err := scorer.Score(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, features.ErrMissingFeature)
}

func TestMetadata_Defaults(t *testing.T) {
	var meta Metadata
	assert.Equal(t, DefaultThreshold, meta.DecisionThreshold())
	assert.Equal(t, DefaultModelName, meta.Name())

	meta.Threshold = ptr(0.5)
	meta.ModelName = "custom"
	assert.Equal(t, 0.5, meta.DecisionThreshold())
	assert.Equal(t, "custom", meta.Name())
}

func identityScaler() *StandardScaler {
	order := features.ScalerOrder()
	s := &StandardScaler{FeatureNames: order, Mean: make([]float64, len(order)), Scale: make([]float64, len(order))}
	for i := range s.Scale {
		s.Scale[i] = 1
	}
	return s
}

func TestNew_FeatureContract(t *testing.T) {
	clf, err := NewLogisticRegression([]float64{1, 1}, 0)
	require.NoError(t, err)
	top := []string{features.FoodInsecureLag1, features.VulnerabilityScore}

	t.Run("valid", func(t *testing.T) {
		_, err := New(identityScaler(), clf, top, Metadata{})
		require.NoError(t, err)
	})

	t.Run("swapped scaler order", func(t *testing.T) {
		s := identityScaler()
		s.FeatureNames[0], s.FeatureNames[1] = s.FeatureNames[1], s.FeatureNames[0]
		_, err := New(s, clf, top, Metadata{})
		assert.ErrorIs(t, err, ErrFeatureContract)
	})

	t.Run("short scaler", func(t *testing.T) {
		s := identityScaler()
		s.FeatureNames = s.FeatureNames[:27]
		s.Mean = s.Mean[:27]
		s.Scale = s.Scale[:27]
		_, err := New(s, clf, top, Metadata{})
		assert.ErrorIs(t, err, ErrFeatureContract)
	})

	t.Run("unknown top feature", func(t *testing.T) {
		_, err := New(identityScaler(), clf, []string{features.FoodInsecureLag1, "rainfall_lag2m"}, Metadata{})
		assert.ErrorIs(t, err, ErrFeatureContract)
	})

	t.Run("duplicate top feature", func(t *testing.T) {
		_, err := New(identityScaler(), clf, []string{features.IsASAL, features.IsASAL}, Metadata{})
		assert.ErrorIs(t, err, ErrFeatureContract)
	})

	t.Run("classifier width", func(t *testing.T) {
		_, err := New(identityScaler(), clf, []string{features.IsASAL}, Metadata{})
		assert.ErrorIs(t, err, ErrFeatureContract)
	})

	t.Run("zero scale", func(t *testing.T) {
		s := identityScaler()
		s.Scale[3] = 0
		_, err := New(s, clf, top, Metadata{})
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := New(identityScaler(), clf, top, Metadata{Threshold: ptr(1.5)})
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})
}

func TestScore_LogisticRegression(t *testing.T) {
	clf, err := NewLogisticRegression([]float64{2}, -1)
	require.NoError(t, err)
	scorer, err := New(identityScaler(), clf, []string{features.FoodInsecureLag1}, Metadata{})
	require.NoError(t, err)

	v := baringoVector(t, models.AnswerNo, models.BasketModerate)
	p, err := scorer.Score(v)
	require.NoError(t, err)
	assert.InDelta(t, 0.2689414213699951, p, 1e-12)

	v = baringoVector(t, models.AnswerYes, models.BasketModerate)
	p, err = scorer.Score(v)
	require.NoError(t, err)
	assert.InDelta(t, 0.7310585786300049, p, 1e-12)
}

func TestRandomForest_Validation(t *testing.T) {
	leaf := DecisionTree{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{-2},
		Value:         [][]float64{{3, 1}},
	}
	forest, err := NewRandomForest(1, []DecisionTree{leaf})
	require.NoError(t, err)
	p, err := forest.PredictProba([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 0.25, p)

	_, err = forest.PredictProba([]float64{1, 2})
	require.Error(t, err)

	tests := []struct {
		name string
		tree DecisionTree
	}{
		{"empty", DecisionTree{}},
		{"ragged", DecisionTree{ChildrenLeft: []int{-1}, ChildrenRight: []int{}, Feature: []int{0}, Threshold: []float64{0}, Value: [][]float64{{1, 1}}}},
		{"cycle", DecisionTree{ChildrenLeft: []int{0, -1}, ChildrenRight: []int{1, -1}, Feature: []int{0, -2}, Threshold: []float64{0, 0}, Value: [][]float64{{0, 0}, {1, 1}}}},
		{"feature out of range", DecisionTree{ChildrenLeft: []int{1, -1, -1}, ChildrenRight: []int{2, -1, -1}, Feature: []int{5, -2, -2}, Threshold: []float64{0, 0, 0}, Value: [][]float64{{0, 0}, {1, 0}, {0, 1}}}},
		{"single class leaf", DecisionTree{ChildrenLeft: []int{-1}, ChildrenRight: []int{-1}, Feature: []int{-2}, Threshold: []float64{0}, Value: [][]float64{{1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRandomForest(1, []DecisionTree{tt.tree})
			assert.ErrorIs(t, err, ErrInvalidArtifact)
		})
	}

	_, err = NewRandomForest(1, nil)
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}

func copyTestdata(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{ScalerFile, ClassifierFile, TopFeaturesFile, MetadataFile} {
		data, err := os.ReadFile(filepath.Join(testdataDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
	return dir
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		dir := copyTestdata(t)
		require.NoError(t, os.Remove(filepath.Join(dir, ScalerFile)))
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ScalerFile)
	})

	t.Run("broken json", func(t *testing.T) {
		dir := copyTestdata(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, TopFeaturesFile), []byte(`["a",`), 0o600))
		_, err := Load(dir)
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})

	t.Run("unknown classifier kind", func(t *testing.T) {
		dir := copyTestdata(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ClassifierFile), []byte(`{"kind":"svm"}`), 0o600))
		_, err := Load(dir)
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})

	t.Run("top features drift", func(t *testing.T) {
		dir := copyTestdata(t)
		var top []string
		data, err := os.ReadFile(filepath.Join(dir, TopFeaturesFile))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &top))
		top[0] = "food_insecure_lag2"
		data, err = json.Marshal(top)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, TopFeaturesFile), data, 0o600))

		_, err = Load(dir)
		assert.ErrorIs(t, err, ErrFeatureContract)
	})
}
