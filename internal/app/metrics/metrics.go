// Package metrics defines and registers the Prometheus metrics for the
// ticket-system core. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package load via promauto;
// the embedding host decides whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketapp"

// MutationsTotal counts ticket mutations that committed successfully.
// Label:
//   - operation: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of ticket mutations that committed successfully.",
	},
	[]string{"operation"},
)

// RollbacksTotal counts optimistic mutations that were rolled back after the
// backing call failed.
var RollbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rollbacks_total",
		Help:      "Total number of optimistic mutations rolled back on backing failure.",
	},
)

// NotificationsTotal counts messages sent through the notification sink.
// Label:
//   - channel: "polite" or "assertive"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications emitted, by channel.",
	},
	[]string{"channel"},
)

// GuardRedirectsTotal counts navigations to a protected page that were
// rewritten to the login page for lack of a session.
var GuardRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of session-guard redirects to the login page.",
	},
)

// TicketLoadsTotal counts ticket-list loads triggered by page entry.
// Label:
//   - result: "ok" or "error"
var TicketLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_loads_total",
		Help:      "Total number of ticket list loads, by result.",
	},
	[]string{"result"},
)
