// Package metrics defines and registers all custom Prometheus metrics for
// the realty API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty"

// ── Session metrics ───────────────────────────────────────────────────────────

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

// SessionChecksTotal counts full session verifications.
// Label:
//   - result: "ok", "expired", "revoked", "invalid", "disabled"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session token verifications, by outcome.",
	},
	[]string{"result"},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// MediaRequestsTotal counts asset fetches.
// Labels:
//   - kind: "image" or "video"
//   - outcome: "full", "partial", "not_found", "bad_range"
var MediaRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_requests_total",
		Help:      "Total number of asset fetch requests, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// MediaBytesServedTotal counts payload bytes written for asset responses.
// Label:
//   - kind: "image" or "video"
var MediaBytesServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_bytes_served_total",
		Help:      "Total asset payload bytes served, by kind.",
	},
	[]string{"kind"},
)

// UploadBytes observes accepted upload sizes.
// Label:
//   - kind: "image" or "video"
var UploadBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_bytes",
		Help:      "Size distribution of accepted uploads.",
		Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 10), // 64 KiB … ~16 GiB
	},
	[]string{"kind"},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// InquiriesReceivedTotal counts leads submitted through the contact form.
var InquiriesReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_received_total",
		Help:      "Total number of inquiries received.",
	},
)

// NotifyQueueDepth tracks pending notifications per dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NotifyProcessedTotal counts notification deliveries.
// Label:
//   - result: "ok" or "error"
var NotifyProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_processed_total",
		Help:      "Total number of notification deliveries attempted, by result.",
	},
	[]string{"result"},
)
