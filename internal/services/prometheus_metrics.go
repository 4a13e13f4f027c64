package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	syncConnectionsTotal   *prometheus.CounterVec
	syncConnectionDuration prometheus.Histogram
	connectionsLinkedTotal *prometheus.CounterVec
	dashboardDuration      prometheus.Histogram
	activeConnectionsTotal prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		syncConnectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_connections_total",
				Help: "Total number of connection sync attempts by provider and status",
			},
			[]string{"provider", "status"},
		),
		syncConnectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sync_connection_duration_milliseconds",
				Help:    "Duration of a single connection sync in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		connectionsLinkedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "connections_linked_total",
				Help: "Total number of financial connections linked by provider",
			},
			[]string{"provider"},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_summary_duration_milliseconds",
				Help:    "Dashboard summary aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		activeConnectionsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_connections_total",
				Help: "Current number of active financial connections",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	provider := tags["provider"]

	switch name {
	case "sync.connection.success":
		m.syncConnectionsTotal.WithLabelValues(provider, "success").Inc()
	case "sync.connection.failed":
		m.syncConnectionsTotal.WithLabelValues(provider, "failed").Inc()
	case "connection.linked":
		m.connectionsLinkedTotal.WithLabelValues(provider).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "sync.connection":
		m.syncConnectionDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard.summary":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "connections.active" {
		m.activeConnectionsTotal.Set(value)
	}
}
