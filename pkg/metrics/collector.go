// Package metrics exposes Prometheus collectors for the bot.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asha_webhook_events_total",
			Help: "Total number of webhook events received labeled by type and status",
		},
		[]string{"type", "status"},
	)
	eventDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asha_event_duration_seconds",
			Help:    "Duration of webhook event handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"type"},
	)
	payloadDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asha_payload_dispatch_total",
			Help: "Total number of dispatched payloads",
		},
		[]string{"payload"},
	)
	contextTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asha_context_transitions_total",
			Help: "Total number of conversation context transitions",
		},
		[]string{"from", "to"},
	)
	outboundRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asha_outbound_request_duration_seconds",
			Help:    "Duration of outbound platform API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api", "status"},
	)
	fallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asha_fallback_messages_total",
			Help: "Total number of could-not-understand fallback messages sent",
		},
	)
)

// RecordEvent counts a handled webhook event with its outcome and duration.
func RecordEvent(eventType, status string, duration time.Duration) {
	webhookEventsTotal.WithLabelValues(eventType, status).Inc()
	eventDurationSeconds.WithLabelValues(eventType).Observe(duration.Seconds())
}

// RecordDispatch counts a dispatched payload.
func RecordDispatch(payload string) {
	payloadDispatchTotal.WithLabelValues(payload).Inc()
}

// RecordTransition counts a conversation context transition.
func RecordTransition(from, to string) {
	contextTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordOutbound measures an outbound platform API call.
func RecordOutbound(api, status string, duration time.Duration) {
	outboundRequestDuration.WithLabelValues(api, status).Observe(duration.Seconds())
}

// RecordFallback counts a fallback message sent to a user.
func RecordFallback() {
	fallbacksTotal.Inc()
}
