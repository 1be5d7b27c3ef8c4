// Package metrics exposes prometheus collectors for HTTP traffic and the
// ingest job.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factnet_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factnet_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ArticlesIngested counts articles stored by the RSS ingest job.
	ArticlesIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factnet_articles_ingested_total",
			Help: "Total number of new articles stored by the ingest job.",
		},
	)

	// VotesRecorded counts successful feedback votes by type.
	VotesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factnet_votes_recorded_total",
			Help: "Total number of feedback votes recorded.",
		},
		[]string{"vote"},
	)
)
