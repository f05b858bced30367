// Package metrics defines and registers all custom Prometheus metrics for
// the publishing API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "publishing"

// ── Live event metrics ────────────────────────────────────────────────────────

// LiveConnections tracks the number of currently registered live clients.
var LiveConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_connections",
		Help:      "Number of currently connected live event clients.",
	},
)

// EventsBroadcastTotal counts broadcast emissions.
// Label:
//   - event: the event name (e.g. "newComment")
var EventsBroadcastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_broadcast_total",
		Help:      "Total number of events broadcast to all clients.",
	},
	[]string{"event"},
)

// NotificationsSentTotal counts unicast notifications that reached at least
// one joined connection.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of per-user notifications delivered.",
	},
)

// NotificationsDroppedTotal counts unicast notifications dropped because no
// connection had joined the target room.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of per-user notifications dropped for lack of a listener.",
	},
)

// EventsDiscardedTotal counts events discarded because a client's mailbox
// was full at delivery time.
var EventsDiscardedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_discarded_total",
		Help:      "Total number of events discarded due to a full client buffer.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// CommentsCreatedTotal counts successfully persisted comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// RateLimitedTotal counts requests rejected by the auth-route rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
