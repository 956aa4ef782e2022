// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service exposes.
// A single instance is created in main and shared via injection.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueriesTotal      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
	DBTxTotal           *prometheus.CounterVec
	DBPoolOpenConns     *prometheus.GaugeVec
	DBPoolInUseConns    *prometheus.GaugeVec
	DBPoolIdleConns     *prometheus.GaugeVec

	// Domain
	BookingsCreatedTotal   *prometheus.CounterVec
	BookingsCancelledTotal *prometheus.CounterVec
	WaitlistJoinsTotal     *prometheus.CounterVec
}

// IncBookingsCreated counts one booking-creation attempt by outcome.
func (m *Metrics) IncBookingsCreated(outcome string) {
	m.BookingsCreatedTotal.WithLabelValues(outcome).Inc()
}

// IncBookingsCancelled counts one cancellation attempt by outcome.
func (m *Metrics) IncBookingsCancelled(outcome string) {
	m.BookingsCancelledTotal.WithLabelValues(outcome).Inc()
}

// IncWaitlistJoins counts one waiting-list join attempt by outcome.
func (m *Metrics) IncWaitlistJoins(outcome string) {
	m.WaitlistJoinsTotal.WithLabelValues(outcome).Inc()
}

// Noop satisfies the per-usecase metrics interfaces when metrics are
// disabled in config.
type Noop struct{}

func (Noop) IncBookingsCreated(string)   {}
func (Noop) IncBookingsCancelled(string) {}
func (Noop) IncWaitlistJoins(string)     {}

// New registers all collectors on the default registry and returns them.
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBTxTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of database transactions by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		DBPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created, by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		BookingsCancelledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Bookings cancelled, by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		WaitlistJoinsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "waiting_list_joins_total",
			Help:        "Waiting list joins, by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}
