package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	usersRegisteredTotal      prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
	transactionsTotal         *prometheus.CounterVec
	transactionAmount         *prometheus.HistogramVec
	categoriesTotal           *prometheus.CounterVec
	dashboardRequestsTotal    *prometheus.CounterVec
	dashboardDuration         prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		usersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of users registered",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_total",
				Help: "Total number of transaction operations",
			},
			[]string{"operation", "status"},
		),
		transactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_amount",
				Help:    "Transaction amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"category_type"},
		),
		categoriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_total",
				Help: "Total number of category operations",
			},
			[]string{"operation", "status"},
		),
		dashboardRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard requests",
			},
			[]string{"status"},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_request_duration_seconds",
				Help:    "Dashboard aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "user_registered":
		m.usersRegisteredTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "transaction_operation":
		m.transactionsTotal.WithLabelValues(operation, status).Inc()
	case "category_operation":
		m.categoriesTotal.WithLabelValues(operation, status).Inc()
	case "dashboard_request":
		if status != "" {
			m.dashboardRequestsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_aggregation":
		m.dashboardDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction_amount":
		categoryType := tags["category_type"]
		m.transactionAmount.WithLabelValues(categoryType).Observe(value)
	}
}
