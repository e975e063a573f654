// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace gateway. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gateway"

// GuardDecisionsTotal counts terminal guard decisions per navigation.
// Labels:
//   - outcome: "allow" or "redirect"
//   - route_class: "public", "auth_redirect", "protected", "unclassified"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of guard decisions, by outcome and route class.",
	},
	[]string{"outcome", "route_class"},
)

// AdminValidationsTotal counts admin token validation round trips.
// Label:
//   - result: "valid", "invalid" (rejected by the admin API), or "error"
//     (network fault or timeout; treated as invalid)
var AdminValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_validations_total",
		Help:      "Total number of admin token validations, by result.",
	},
	[]string{"result"},
)

// AdminValidationDuration measures the admin token validation round trip.
var AdminValidationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "admin_validation_duration_seconds",
		Help:      "Duration of admin token validation calls against the admin API.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuthFailureSignalsTotal counts admin-auth-failure signals raised by API
// call sites that observed an unauthorized admin session.
var AuthFailureSignalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failure_signals_total",
		Help:      "Total number of admin authentication failure signals published.",
	},
)
