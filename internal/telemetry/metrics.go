package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	ClassificationsTotal *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	NoMatchTotal         prometheus.Counter
}

// NewMetrics creates and registers Prometheus metrics. Call once per process;
// promauto registers on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		ClassificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carriertrack_classifications_total",
				Help: "Total classification requests by operation, carrier, and status",
			},
			[]string{"operation", "carrier", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "carriertrack_request_duration_seconds",
				Help:    "Request duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		NoMatchTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "carriertrack_no_match_total",
				Help: "Total candidates that validated for no carrier",
			},
		),
	}
}

// RecordClassification records a classification request metric.
func (m *Metrics) RecordClassification(operation, carrier, status string, duration float64) {
	m.ClassificationsTotal.WithLabelValues(operation, carrier, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordNoMatch counts a candidate that matched no carrier.
func (m *Metrics) RecordNoMatch() {
	m.NoMatchTotal.Inc()
}
