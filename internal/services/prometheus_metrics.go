package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	backendRequests     *prometheus.CounterVec
	backendDuration     prometheus.Histogram
	fetchesTotal        *prometheus.CounterVec
	fetchDuration       prometheus.Histogram
	fetchSuperseded     *prometheus.CounterVec
	mutationsTotal      *prometheus.CounterVec
	exportsTotal        *prometheus.CounterVec
	exportRows          prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	activeSessions      prometheus.Gauge
	authEventsTotal     *prometheus.CounterVec
}

// NewPrometheusMetrics registers the console collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_backend_requests_total",
				Help: "Total number of banking backend requests",
			},
			[]string{"operation", "status"},
		),
		backendDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "console_backend_request_duration_milliseconds",
				Help:    "Banking backend request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		fetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_fetches_total",
				Help: "Total number of console list fetches",
			},
			[]string{"entity", "status"},
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "console_fetch_duration_seconds",
				Help:    "Console list fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		fetchSuperseded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_fetches_superseded_total",
				Help: "Total number of fetches cancelled by a newer fetch",
			},
			[]string{"entity"},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_mutations_total",
				Help: "Total number of console mutations",
			},
			[]string{"action", "status"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_csv_exports_total",
				Help: "Total number of CSV exports",
			},
			[]string{"entity"},
		),
		exportRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "console_csv_export_rows",
				Help:    "Rows per CSV export",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "console_active_sessions",
				Help: "Current number of console sessions",
			},
		),
		authEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "backend_request":
		m.backendRequests.WithLabelValues(tags["operation"], status).Inc()
	case "console_fetch":
		m.fetchesTotal.WithLabelValues(tags["entity"], status).Inc()
	case "console_fetch_superseded":
		m.fetchSuperseded.WithLabelValues(tags["entity"]).Inc()
	case "console_mutation":
		m.mutationsTotal.WithLabelValues(tags["action"], status).Inc()
	case "csv_export":
		m.exportsTotal.WithLabelValues(tags["entity"]).Inc()
	case "session_created":
		m.activeSessions.Inc()
	case "session_deleted":
		m.activeSessions.Dec()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "backend_request":
		m.backendDuration.Observe(float64(duration.Milliseconds()))
	case "console_fetch":
		m.fetchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "csv_export_rows":
		m.exportRows.Observe(value)
	}
}
