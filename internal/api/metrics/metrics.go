// Package metrics defines the custom Prometheus metrics for the alumnos API.
// It is the single source of truth for metric names, labels, and help
// strings. All metrics register themselves with the default registry via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alumnos"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests short-circuited by the auth gate.
// Label:
//   - reason: "missing", "malformed_header", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// AlumnosCreatedTotal counts successfully created records.
var AlumnosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of alumno records created.",
	},
)

// AlumnosDeletedTotal counts successfully deleted records.
var AlumnosDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of alumno records deleted.",
	},
)

// StorageErrorsTotal counts repository failures surfaced as HTTP 500.
// Label:
//   - operation: "list", "get", "create", "update", or "delete"
var StorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of storage failures, by operation.",
	},
	[]string{"operation"},
)
