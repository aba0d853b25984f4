// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto; request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logout calls, including repeated ones.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// AuthzDenialsTotal counts catalog mutations rejected by the role table.
// Label:
//   - action: "create", "update", or "delete"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of catalog mutations denied by role, by action.",
	},
	[]string{"action"},
)

// ProductMutationsTotal counts catalog mutations that completed upstream.
// Label:
//   - action: "create", "update", or "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of successful catalog mutations, by action.",
	},
	[]string{"action"},
)

// CatalogRefreshesTotal counts catalog snapshot refreshes.
// Label:
//   - result: "success" or "failure"
var CatalogRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_refreshes_total",
		Help:      "Total number of catalog snapshot refreshes, by result.",
	},
	[]string{"result"},
)

// CartOpsTotal counts cart ledger operations.
// Label:
//   - op: "add", "remove", or "checkout"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart operations, by op.",
	},
	[]string{"op"},
)
