// Package metrics holds the Prometheus collectors shared by the HTTP layer,
// the use cases and the publication scheduler. Collectors register with the
// default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts HTTP requests by method, route template and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by method, route template and status.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// HTTPInFlight tracks requests currently being served.
	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// AdRequests counts resolver calls by position and outcome (filled, empty).
	AdRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_ad_requests_total",
			Help: "Ad placement requests by position and outcome",
		},
		[]string{"position", "outcome"},
	)

	// AdEvents counts recorded impressions and clicks.
	AdEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_ad_events_total",
			Help: "Recorded advertisement events by kind",
		},
		[]string{"kind"},
	)

	// ArticlesPublished counts articles promoted by the sweep.
	ArticlesPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_articles_published_total",
			Help: "Scheduled articles promoted to published",
		},
	)

	// SweepDuration observes publication sweeps by result (ok, error, skipped).
	SweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsdesk_publish_sweep_duration_seconds",
			Help:    "Duration of scheduled publication sweeps",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)
