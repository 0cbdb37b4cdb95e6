// Package metrics defines and registers all custom Prometheus metrics for the
// MonsterMedia API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "monstermedia"

// VipRequestsSubmittedTotal counts new entries in the VIP request ledger.
var VipRequestsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vip_requests_submitted_total",
		Help:      "Total number of VIP requests submitted.",
	},
)

// VipRequestsDecidedTotal counts decided VIP requests.
// Label:
//   - decision: "approved" or "rejected"
var VipRequestsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vip_requests_decided_total",
		Help:      "Total number of VIP requests decided, by decision.",
	},
	[]string{"decision"},
)

// VipDecideConflictsTotal counts decide attempts that lost to an earlier
// decision (the request was already terminal).
var VipDecideConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vip_decide_conflicts_total",
		Help:      "Total number of decide calls rejected because the request was already decided.",
	},
)

// SessionsIssuedTotal counts sessions opened by register and login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued.",
	},
)

// DownloadsRecordedTotal counts download records.
var DownloadsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "downloads_recorded_total",
		Help:      "Total number of downloads recorded.",
	},
)
