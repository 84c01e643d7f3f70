package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientMetrics tracks gateway traffic and local view transitions. Exposure
// is opt-in: nothing listens unless the host wires Handler onto a server.
type ClientMetrics struct {
	registry *prometheus.Registry

	callTotal       *prometheus.CounterVec
	callDuration    *prometheus.HistogramVec
	viewTransitions *prometheus.CounterVec
}

func NewClientMetrics(service string) *ClientMetrics {
	registry := prometheus.NewRegistry()

	callTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexi",
			Subsystem: "client",
			Name:      "gateway_call_total",
			Help:      "Total backend gateway calls by operation and outcome.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation", "outcome"},
	)
	callDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lexi",
			Subsystem: "client",
			Name:      "gateway_call_duration_seconds",
			Help:      "Backend gateway call duration in seconds by operation and outcome.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"operation", "outcome"},
	)
	viewTransitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexi",
			Subsystem: "client",
			Name:      "view_transition_total",
			Help:      "Total workflow view transitions by destination view.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"view"},
	)

	registry.MustRegister(callTotal, callDuration, viewTransitions)

	return &ClientMetrics{
		registry:        registry,
		callTotal:       callTotal,
		callDuration:    callDuration,
		viewTransitions: viewTransitions,
	}
}

func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ClientMetrics) ObserveGatewayCall(operation string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.callTotal.WithLabelValues(operation, outcome).Inc()
	m.callDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

func (m *ClientMetrics) ObserveViewTransition(view string) {
	m.viewTransitions.WithLabelValues(view).Inc()
}
