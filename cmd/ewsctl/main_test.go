package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	v1 "github.com/shenikar/food_insecurity_ews/internal/handler/http/v1"
	"github.com/shenikar/food_insecurity_ews/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModelDir = "../../internal/model/testdata"

// execute запускает ewsctl с аргументами и возвращает stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--model-dir=" + testModelDir, "--reference-file=", "--database-url="}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestPredict(t *testing.T) {
	out, err := execute(t, "predict",
		"--county", "Turkana",
		"--previous-crisis", "Yes",
		"--rainfall-last-month", "Much Below Normal",
		"--rainfall-3months-ago", "Much Below Normal",
		"--food-basket", "High",
	)
	require.NoError(t, err)

	var resp v1.PredictResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Turkana", resp.County)
	assert.Equal(t, 0.875, resp.Probability)
	assert.Equal(t, "Severe Risk", resp.RiskLevel)
	assert.True(t, resp.IsInsecure)
}

func TestPredict_Defaults(t *testing.T) {
	out, err := execute(t, "predict", "--county", "Baringo")
	require.NoError(t, err)

	var resp v1.PredictResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0.31, resp.Probability)
}

func TestPredict_UnknownCounty(t *testing.T) {
	_, err := execute(t, "predict", "--county", "Atlantis")

	assert.True(t, errors.Is(err, service.ErrCountyNotFound))
}

func TestPredict_CountyRequired(t *testing.T) {
	_, err := execute(t, "predict")

	assert.ErrorContains(t, err, "county")
}

func TestCountyRisks_Table(t *testing.T) {
	out, err := execute(t, "county-risks")
	require.NoError(t, err)

	assert.Contains(t, out, "COUNTY")
	assert.Contains(t, out, "Turkana")
	assert.Contains(t, out, "total=47 insecure=20 secure=27 threshold=0.45")
}

func TestCountyRisks_JSON(t *testing.T) {
	out, err := execute(t, "county-risks", "--json")
	require.NoError(t, err)

	var resp v1.CountyRisksResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Counties, 47)
	assert.Equal(t, 0.725, resp.Counties["Mandera"].RiskScore)
	assert.Equal(t, 0.135, resp.Counties["Nairobi"].RiskScore)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)

	assert.Contains(t, out, "counties:  47")
	assert.Contains(t, out, "OK")
}

func TestValidate_BrokenArtifacts(t *testing.T) {
	// повторный флаг переопределяет --model-dir из execute
	out, err := execute(t, "validate", "--model-dir", t.TempDir())

	assert.ErrorIs(t, err, errValidation)
	assert.NotContains(t, out, "OK")
}

func TestSeed_RequiresDatabaseURL(t *testing.T) {
	_, err := execute(t, "seed")

	assert.ErrorContains(t, err, "DATABASE_URL is required")
}
