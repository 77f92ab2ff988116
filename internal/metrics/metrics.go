// Package metrics exposes Prometheus instrumentation for projection runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectionRequests counts projection computations by mode and status.
	ProjectionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buyvslease_projection_requests_total",
			Help: "Total number of projection computations",
		},
		[]string{"mode", "status"},
	)

	// ProjectionDuration observes wall-clock time spent computing projections.
	ProjectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "buyvslease_projection_duration_seconds",
			Help:    "Time spent computing projections",
			Buckets: prometheus.DefBuckets,
		},
	)
)
