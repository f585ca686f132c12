package agent

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for tool dispatch and bridge sessions.
type Metrics struct {
	registry *prometheus.Registry

	ToolCallsTotal   *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec

	SessionsActive prometheus.Gauge
	SessionsTotal  *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with a private registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "voiceagent"
	}

	registry := prometheus.NewRegistry()

	toolCallsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total number of tool invocations",
		},
		[]string{"agent", "tool", "status"},
	)

	toolCallDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Tool invocation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"agent", "tool"},
	)

	sessionsActive := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bridge_sessions_active",
			Help:      "Number of active bridge sessions",
		},
	)

	sessionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridge_sessions_total",
			Help:      "Total number of bridge sessions",
		},
		[]string{"status"},
	)

	registry.MustRegister(
		toolCallsTotal,
		toolCallDuration,
		sessionsActive,
		sessionsTotal,
	)

	return &Metrics{
		registry:         registry,
		ToolCallsTotal:   toolCallsTotal,
		ToolCallDuration: toolCallDuration,
		SessionsActive:   sessionsActive,
		SessionsTotal:    sessionsTotal,
	}
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordToolCall records a completed tool invocation.
func (m *Metrics) RecordToolCall(agentName, tool, status string, duration time.Duration) {
	m.ToolCallsTotal.WithLabelValues(agentName, tool, status).Inc()
	m.ToolCallDuration.WithLabelValues(agentName, tool).Observe(duration.Seconds())
}

// RecordSessionStart records a bridge session opening.
func (m *Metrics) RecordSessionStart() {
	m.SessionsActive.Inc()
}

// RecordSessionEnd records a bridge session closing.
func (m *Metrics) RecordSessionEnd(status string) {
	m.SessionsActive.Dec()
	m.SessionsTotal.WithLabelValues(status).Inc()
}
