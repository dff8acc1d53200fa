// Package metrics defines all custom Prometheus metrics for the portal API.
// It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eadmin"

// ── Directory metrics ─────────────────────────────────────────────────────────

// UsersRegisteredTotal counts account creations.
// Label:
//   - role: the portal role of the new account (e.g. "client", "agent")
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ClientsEnrolledTotal counts client accounts created by agents on behalf of clients.
var ClientsEnrolledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_enrolled_total",
		Help:      "Total number of client accounts enrolled by agents.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "bad_password", "suspended", "pending"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Request ledger metrics ────────────────────────────────────────────────────

// RequestsCreatedTotal counts filed service requests.
// Label:
//   - service_type: the administrative service requested
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of service requests filed, by service type.",
	},
	[]string{"service_type"},
)

// RequestTransitionsTotal counts administrative status changes on requests.
// Labels:
//   - from, to: the statuses involved in the transition
var RequestTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_transitions_total",
		Help:      "Total number of request status transitions applied.",
	},
	[]string{"from", "to"},
)

// ── Ad rotation metrics ───────────────────────────────────────────────────────

// AdPicksTotal counts rotation picks.
// Labels:
//   - placement: the slot the pick was made for
//   - pinned: "true" when a pinned campaign won the pick
var AdPicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ad_picks_total",
		Help:      "Total number of ad rotation picks, by placement and pin override.",
	},
	[]string{"placement", "pinned"},
)

// AdImpressionsTotal counts recorded campaign impressions.
var AdImpressionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ad_impressions_total",
		Help:      "Total number of campaign impressions recorded.",
	},
)

// AdClicksTotal counts recorded campaign clicks.
var AdClicksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ad_clicks_total",
		Help:      "Total number of campaign clicks recorded.",
	},
)

// ImpressionQueueDepth tracks events pending in each delivery worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ImpressionQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "impression_queue_depth",
		Help:      "Current number of delivery events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantCallsTotal counts calls through the generative-text boundary.
// Labels:
//   - kind: "chat" or "news"
//   - result: "ok" or "fallback"
var AssistantCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_calls_total",
		Help:      "Total number of assistant calls, by kind and outcome.",
	},
	[]string{"kind", "result"},
)

// NewsCacheTotal counts news cache lookups.
// Label:
//   - result: "hit" or "miss"
var NewsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_cache_total",
		Help:      "Total number of curated-news cache lookups, by result.",
	},
	[]string{"result"},
)
