package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered       prometheus.Counter
	RegistrationsRejected *prometheus.CounterVec
	PaymentsProcessed     prometheus.Counter
	PaymentsRejected      *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streaming_users_registered_total",
			Help: "Total number of users registered in the system",
		}),
		RegistrationsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streaming_registrations_rejected_total",
			Help: "Total number of rejected registrations by error code",
		}, []string{"code"}),
		PaymentsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streaming_payments_processed_total",
			Help: "Total number of payments accepted",
		}),
		PaymentsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streaming_payments_rejected_total",
			Help: "Total number of rejected payments by error code",
		}, []string{"code"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "streaming_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// IncrementUsersRegistered increments the registered-users counter by 1.
func (m *Metrics) IncrementUsersRegistered() {
	m.UsersRegistered.Inc()
}

// IncrementRegistrationsRejected counts a rejected registration by code.
func (m *Metrics) IncrementRegistrationsRejected(code string) {
	m.RegistrationsRejected.WithLabelValues(code).Inc()
}

// IncrementPaymentsProcessed increments the accepted-payments counter by 1.
func (m *Metrics) IncrementPaymentsProcessed() {
	m.PaymentsProcessed.Inc()
}

// IncrementPaymentsRejected counts a rejected payment by code.
func (m *Metrics) IncrementPaymentsRejected(code string) {
	m.PaymentsRejected.WithLabelValues(code).Inc()
}

// ObserveRequest records one request's latency.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(route, status).Observe(seconds)
}
