// Package metrics defines and registers all custom Prometheus metrics for the
// memo board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "memoboard"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successful registrations (user + provisioned profile).
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// ProvisioningFailuresTotal counts registrations aborted because the profile
// could not be provisioned (e.g. default avatar asset unreadable).
var ProvisioningFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provisioning_failures_total",
		Help:      "Total number of registrations rolled back due to profile provisioning failures.",
	},
)

// ProfileUpdatesTotal counts successful account/profile updates.
var ProfileUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of successful profile updates.",
	},
)

// ── Note metrics ──────────────────────────────────────────────────────────────

// NotesCreatedTotal counts notes added to the board.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_created_total",
		Help:      "Total number of notes created.",
	},
)

// NotesUpdatedTotal counts successful note edits.
var NotesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_updated_total",
		Help:      "Total number of notes edited.",
	},
)

// NotesDeletedTotal counts notes removed from the board.
var NotesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_deleted_total",
		Help:      "Total number of notes deleted.",
	},
)

// ForbiddenAttemptsTotal counts mutations refused because the actor does not
// own the target note.
// Label:
//   - operation: "edit" or "delete"
var ForbiddenAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_attempts_total",
		Help:      "Total number of note mutations refused by the ownership check.",
	},
	[]string{"operation"},
)
