package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ValidationsTotal   *prometheus.CounterVec
	GeneratedTotal     prometheus.Counter
	RegistrationsTotal prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nric_gateway_validations_total",
			Help: "Total identifier validations, labeled by outcome.",
		}, []string{"outcome"}),
		GeneratedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nric_gateway_generated_total",
			Help: "Total identifiers generated.",
		}),
		RegistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nric_gateway_registrations_total",
			Help: "Total identifiers registered.",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nric_gateway_request_duration_seconds",
			Help:    "HTTP request latency by route and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveValidation records one validation by outcome
// (valid, bad_checksum, malformed).
func (m *Metrics) ObserveValidation(outcome string) {
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
}

// IncrementGenerated increments the generated-identifier counter by 1.
func (m *Metrics) IncrementGenerated() {
	m.GeneratedTotal.Inc()
}

// IncrementRegistrations increments the registration counter by 1.
func (m *Metrics) IncrementRegistrations() {
	m.RegistrationsTotal.Inc()
}
