// Package metrics defines and registers all custom Prometheus metrics for
// the feedback analytics API. It is the single source of truth for metric
// names, labels, and help strings. Metrics self-register with the default
// registry on first import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feedback"

// RegistrationsTotal counts created accounts.
// Label:
//   - role: "user" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SubmissionsTotal counts feedback records appended to the collection.
var SubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of feedback records submitted.",
	},
)

// AnalyticsRequestsTotal counts analytics runs by outcome.
// Label:
//   - result: "ok", "no_data", or "upstream_error"
var AnalyticsRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_requests_total",
		Help:      "Total number of analytics requests, by result.",
	},
	[]string{"result"},
)

// AnalyticsDuration measures the end-to-end analytics run, dominated by the
// language model call.
var AnalyticsDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_duration_seconds",
		Help:      "Duration of a full analytics run including the completion call.",
		Buckets:   prometheus.DefBuckets,
	},
)
