// Package metrics defines and registers all custom Prometheus metrics for the
// realty API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package load; the
// echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty"

// AccessDecisionsTotal counts authorization decisions on property records.
// Label:
//   - outcome: "allowed", "unauthenticated", "unauthorized", or "not_found"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of property access decisions, by outcome.",
	},
	[]string{"outcome"},
)

// RateLimitRejectionsTotal counts requests rejected by the rate limiter.
// Label:
//   - policy: the limiter policy that rejected the request ("contact", "public")
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by the rate limiter, by policy.",
	},
	[]string{"policy"},
)

// SessionsIssuedTotal counts session credentials issued at login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session credentials issued.",
	},
)

// SessionsRevokedTotal counts explicit session revocations (logout or admin).
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session revocations.",
	},
)

// LeadsCapturedTotal counts stored contact-form submissions.
var LeadsCapturedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Total number of leads captured from the contact form.",
	},
)
