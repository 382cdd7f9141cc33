package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.Predictions.WithLabelValues("Low Risk").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Predictions.WithLabelValues("Low Risk")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Predictions.WithLabelValues("Low Risk")))
}

func TestMetrics_RegisterInFreshRegistry(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()

	require.NoError(t, reg.Register(m.Predictions))
	require.NoError(t, reg.Register(m.ScoringDuration))
	require.NoError(t, reg.Register(m.HTTPRequestDuration))

	m.ScoringDuration.Observe(0.0002)
	assert.Equal(t, 1, testutil.CollectAndCount(m.ScoringDuration))
}
