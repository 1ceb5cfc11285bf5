// Package metrics defines and registers the custom Prometheus metrics of the
// inventory API. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default registry through promauto at package
// init, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - scope: account universe ("users", "user_registrations")
//   - result: "created", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by scope and result.",
	},
	[]string{"scope", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - scope: account universe
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by scope and result.",
	},
	[]string{"scope", "result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts persisted orders.
// Label:
//   - notification: "sent", "failed" or "skipped" (product missing)
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders persisted, by notification outcome.",
	},
	[]string{"notification"},
)

// OrdersReplayedTotal counts POST /orders requests answered from the idempotency store.
var OrdersReplayedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_replayed_total",
		Help:      "Total number of order submissions answered by idempotent replay.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts delivery attempts.
// Labels:
//   - driver: gateway name ("smtp", "kafka", "rabbitmq", "log")
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification delivery attempts, by driver and result.",
	},
	[]string{"driver", "result"},
)

// NotificationDuration measures a single gateway call.
var NotificationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of a single notification gateway call.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"driver"},
)

// NotificationRetryQueueDepth tracks items waiting in each retrier shard.
// Label:
//   - worker_id: numeric worker index
var NotificationRetryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_retry_queue_depth",
		Help:      "Current number of notifications pending in each retrier shard.",
	},
	[]string{"worker_id"},
)

// NotificationRetriesTotal counts retrier outcomes.
// Label:
//   - result: "delivered", "exhausted" or "dropped"
var NotificationRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_retries_total",
		Help:      "Total number of notifications handled by the retrier, by outcome.",
	},
	[]string{"result"},
)
