// Package metrics defines all custom Prometheus metrics for the back-office
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid", "inactive", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreWritesTotal counts resource-file write-backs.
// Labels:
//   - resource: file name without extension (e.g. "customers", "messages")
//   - result: "ok" or "error" (relaxed-mode swallowed failures count as error)
var StoreWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_writes_total",
		Help:      "Total number of resource file write-backs, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ── Message metrics ───────────────────────────────────────────────────────────

// MessageActionsTotal counts named status actions applied to messages.
// Label:
//   - action: "read", "reply", "resolve", "archive", or "read_all"
var MessageActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "message_actions_total",
		Help:      "Total number of message status actions applied.",
	},
	[]string{"action"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsFanoutTotal counts notifications produced by the background
// dispatcher.
// Label:
//   - result: "ok" or "error"
var NotificationsFanoutTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_fanout_total",
		Help:      "Total number of notifications written by the fan-out dispatcher.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks the events waiting in each dispatcher worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
