// Package metrics defines and registers all custom Prometheus metrics for
// the taskdeck API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskdeck"

// ── Authorization metrics ─────────────────────────────────────────────────────

// DecisionsTotal counts policy-engine decisions.
// Labels:
//   - resource: "project", "task", "request", "comment"
//   - action: the policy action evaluated (e.g. "update", "assign")
//   - outcome: "allow" or "deny"
var DecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of policy-engine decisions, by resource, action and outcome.",
	},
	[]string{"resource", "action", "outcome"},
)

// GateDenialsTotal counts area & scope gate denials.
// Label:
//   - reason: "unauthenticated", "wrong_area", "missing_workspace", "not_a_member"
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_gate_denials_total",
		Help:      "Total number of requests rejected by the area & scope gate, by reason.",
	},
	[]string{"reason"},
)

// ── Membership cache metrics ──────────────────────────────────────────────────

// MembershipCacheTotal counts membership-cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to Mongo)
var MembershipCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "membership_cache_total",
		Help:      "Total number of membership cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the current number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events by persistence outcome.
// Label:
//   - result: "stored" or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed, labelled by result (stored/failed).",
	},
	[]string{"result"},
)

// ObserveDecision records one policy-engine decision.
func ObserveDecision(resource, action string, allowed bool) {
	outcome := "deny"
	if allowed {
		outcome = "allow"
	}
	DecisionsTotal.WithLabelValues(resource, action, outcome).Inc()
}
