package reference

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/food_insecurity_ews/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllCounties(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 47, catalog.Len())

	asal := 0
	for _, county := range catalog.Counties() {
		require.NotNil(t, county.VulnerabilityScore, county.Name)
		assert.True(t, county.PriceBands.Ordered(), county.Name)
		if county.IsASAL {
			asal++
		}
	}
	assert.Equal(t, 20, asal)
}

func TestDefault_KnownRecords(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	baringo, ok := catalog.Lookup("Baringo")
	require.True(t, ok)
	assert.Equal(t, models.RegionRiftValley, baringo.Region)
	assert.InDelta(t, 0.200, baringo.Vulnerability(), 1e-9)
	assert.True(t, baringo.IsASAL)
	assert.Equal(t, models.PriceBands{Affordable: 44, Moderate: 84, Elevated: 124, High: 164}, baringo.PriceBands)
	assert.True(t, baringo.IPCHistory)

	muranga, ok := catalog.Lookup("Murang'a")
	require.True(t, ok)
	assert.Equal(t, models.RegionCentral, muranga.Region)

	lamu, ok := catalog.Lookup("Lamu")
	require.True(t, ok)
	assert.True(t, lamu.LimitedPriceData)
	assert.False(t, lamu.IPCHistory)

	_, ok = catalog.Lookup("Atlantis")
	assert.False(t, ok)
}

func TestCounties_ReturnsCopy(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	counties := catalog.Counties()
	assert.Equal(t, "Mombasa", counties[0].Name)
	assert.Equal(t, "Nairobi", counties[len(counties)-1].Name)

	counties[0].Name = "changed"
	again := catalog.Counties()
	assert.Equal(t, "Mombasa", again[0].Name)
}

func TestPriceBandsFor_FallsBackToNairobi(t *testing.T) {
	catalog, err := Default()
	require.NoError(t, err)

	nairobi, _ := catalog.Lookup(FallbackCounty)
	assert.Equal(t, nairobi.PriceBands, catalog.PriceBandsFor("Atlantis"))

	turkana, _ := catalog.Lookup("Turkana")
	assert.Equal(t, turkana.PriceBands, catalog.PriceBandsFor("Turkana"))
}

func TestNew_Validation(t *testing.T) {
	vuln := 0.2
	tooHigh := 1.5
	nairobi := models.County{Name: FallbackCounty, Region: models.RegionNairobi, PriceBands: models.PriceBands{Affordable: 1, Moderate: 2, Elevated: 3, High: 4}}

	tests := []struct {
		name     string
		counties []models.County
	}{
		{"empty name", []models.County{nairobi, {Region: models.RegionCoast}}},
		{"duplicate", []models.County{nairobi, nairobi}},
		{"unknown region", []models.County{nairobi, {Name: "X", Region: "Mars"}}},
		{"vulnerability out of range", []models.County{nairobi, {Name: "X", Region: models.RegionCoast, VulnerabilityScore: &tooHigh}}},
		{"bands not ordered", []models.County{nairobi, {Name: "X", Region: models.RegionCoast, VulnerabilityScore: &vuln, PriceBands: models.PriceBands{Affordable: 5, Moderate: 4}}}},
		{"missing fallback", []models.County{{Name: "X", Region: models.RegionCoast}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.counties)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counties.yaml")
	data := []byte(`counties:
  - name: "Nairobi"
    region: "Nairobi"
    lat: -1.29
    lng: 36.82
    price_bands: {affordable: 29, moderate: 55, elevated: 81, high: 107}
  - name: "Garissa"
    region: "North Eastern"
    is_asal: true
    lat: 0.46
    lng: 39.65
    price_bands: {affordable: 60, moderate: 100, elevated: 140, high: 179}
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	garissa, ok := catalog.Lookup("Garissa")
	require.True(t, ok)
	assert.Nil(t, garissa.VulnerabilityScore)
	assert.Equal(t, models.DefaultVulnerabilityScore, garissa.Vulnerability())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read reference file")
}

type staticSource struct {
	counties []models.County
	err      error
}

func (s staticSource) ListCounties(context.Context) ([]models.County, error) {
	return s.counties, s.err
}

func TestFromSource(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	catalog, err := FromSource(context.Background(), staticSource{counties: def.Counties()})
	require.NoError(t, err)
	assert.Equal(t, def.Counties(), catalog.Counties())

	sourceErr := errors.New("relation \"counties\" does not exist")
	_, err = FromSource(context.Background(), staticSource{err: sourceErr})
	assert.ErrorIs(t, err, sourceErr)

	_, err = FromSource(context.Background(), staticSource{})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
