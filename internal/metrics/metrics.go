package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts completed upstream HTTP calls by status.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "michrazim_upstream_requests_total",
			Help: "Total number of upstream HTTP requests",
		},
		[]string{"method", "status"},
	)

	// UpstreamErrors counts transport-level failures by kind.
	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "michrazim_upstream_errors_total",
			Help: "Total number of upstream transport errors",
		},
		[]string{"method", "kind"},
	)

	// UpstreamLatency tracks upstream call latency.
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "michrazim_upstream_latency_seconds",
			Help:    "Upstream HTTP call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// UpstreamRetries counts retry attempts scheduled by the retrier.
	UpstreamRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "michrazim_upstream_retries_total",
			Help: "Total number of upstream retry attempts",
		},
	)

	// CacheHits counts cache lookups served without recompute.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "michrazim_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"key"},
	)

	// CacheMisses counts lookups that invoked the compute function.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "michrazim_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"key"},
	)

	// ResolveOutcomes counts settlement resolutions by outcome
	// (exact, fuzzy, no_match).
	ResolveOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "michrazim_resolve_outcomes_total",
			Help: "Total number of settlement resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// SearchResults tracks the size of full upstream result sets before
	// client-side slicing.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "michrazim_search_result_set_size",
			Help:    "Number of records returned by the upstream per search",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)
)
