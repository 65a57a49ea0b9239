// Package metrics defines and registers the custom Prometheus metrics of the
// bdHub store API. Collectors are registered with the default registry at
// package init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bdhub"

// ── Authorization ─────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests stopped by an authorization gate.
// Label:
//   - reason: "missing_credential", "token_malformed", "token_expired",
//     "token_signature_invalid", "insufficient_role", "identity_not_bound"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by an authorization gate.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts tokens signed by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued.",
	},
)

// ── Carts ─────────────────────────────────────────────────────────────────────

// CartOperationsTotal counts cart operations.
// Labels:
//   - op: "add", "list", "remove"
//   - result: "ok", "not_found_or_forbidden", "error"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Catalog ───────────────────────────────────────────────────────────────────

// ProductMutationsTotal counts admin changes to the catalog.
// Label:
//   - op: "create", "update", "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of catalog mutations performed by admins.",
	},
	[]string{"op"},
)

// UsersRegisteredTotal counts registrations.
// Label:
//   - result: "created" or "existing"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registration requests, by outcome.",
	},
	[]string{"result"},
)
