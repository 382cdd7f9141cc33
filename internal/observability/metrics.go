package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "food_ews"

// Metrics - счетчики и гистограммы сервиса прогнозов
type Metrics struct {
	Predictions      *prometheus.CounterVec // labels: risk_level
	PredictionErrors *prometheus.CounterVec // labels: reason={not_found,invalid_input,scoring}
	ScoringDuration  prometheus.Histogram

	// Алерты
	AlertsPublished    *prometheus.CounterVec // labels: outcome={success,error}
	WebhookDeliveries  *prometheus.CounterVec // labels: outcome={success,retry,dropped}
	AlertWorkerRunning prometheus.Gauge

	// HTTP
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route, status

	ReferenceCounties prometheus.Gauge
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      help("Predictions served by risk level."),
		}, []string{"risk_level"}),
		PredictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      help("Rejected or failed predictions by reason."),
		}, []string{"reason"}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      help("Time spent in scaler and classifier."),
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		AlertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_published_total",
			Help:      help("Risk alerts handed to the alert sink."),
		}, []string{"outcome"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      help("Webhook delivery attempts by outcome."),
		}, []string{"outcome"}),
		AlertWorkerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alert_worker_running",
			Help:      help("1 when the webhook worker is running, 0 otherwise."),
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      help("HTTP request duration by route and status."),
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ReferenceCounties: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reference_counties",
			Help:      help("Counties loaded into the reference catalog."),
		}),
	}
}

// NewMetrics создает метрики и регистрирует их в глобальном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.Predictions,
		m.PredictionErrors,
		m.ScoringDuration,
		m.AlertsPublished,
		m.WebhookDeliveries,
		m.AlertWorkerRunning,
		m.HTTPRequestDuration,
		m.ReferenceCounties,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации,
// чтобы тесты не падали с "already registered".
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

// NewUnregisteredMetrics создает метрики без регистрации для процессов без /metrics
func NewUnregisteredMetrics() *Metrics {
	return newMetrics(true)
}
