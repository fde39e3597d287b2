// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fan-out outcome label values.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

var (
	// VotesTotal counts applied vote transitions by target type and transition.
	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sangha_votes_total",
		Help: "Total number of vote transitions by target type and transition",
	}, []string{"target_type", "transition"})

	// ReputationDeltaTotal sums applied reputation deltas by action.
	ReputationDeltaTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sangha_reputation_updates_total",
		Help: "Total number of reputation updates by action and undo flag",
	}, []string{"action", "undo"})

	// NotificationFanoutTotal counts fan-out notification rows by type and outcome.
	NotificationFanoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sangha_notification_fanout_total",
		Help: "Notification rows produced by fan-out, by type and outcome",
	}, []string{"type", "outcome"})

	// NotificationFanoutDuration records how long a fan-out run takes.
	NotificationFanoutDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sangha_notification_fanout_duration_seconds",
		Help:    "Notification fan-out duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})

	// FollowsTotal counts follow graph mutations.
	FollowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sangha_follows_total",
		Help: "Follow graph mutations by following type and operation",
	}, []string{"following_type", "operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sangha_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebSocketConnectionsTotal is the gauge of connected notification sockets.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sangha_websocket_connections",
		Help: "Number of active notification WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped because a client's send buffer was full.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sangha_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"reason"})
)

// RecordFanout adds a fan-out outcome to the metrics.
func RecordFanout(notificationType string, delivered, failed int, elapsed time.Duration) {
	NotificationFanoutTotal.WithLabelValues(notificationType, OutcomeDelivered).Add(float64(delivered))
	NotificationFanoutTotal.WithLabelValues(notificationType, OutcomeFailed).Add(float64(failed))
	NotificationFanoutDuration.WithLabelValues(notificationType).Observe(elapsed.Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
