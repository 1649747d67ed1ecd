package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meapi_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meapi_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SearchQueries counts search requests by result bucket.
	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meapi_search_queries_total",
		Help: "Total number of search queries by result bucket",
	}, []string{"result"})

	// SeedRuns counts idempotent seed executions by outcome.
	SeedRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meapi_seed_runs_total",
		Help: "Total number of seed routine executions by outcome",
	}, []string{"routine", "outcome"})

	// AuthFailures counts rejected guard checks by guard type.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meapi_auth_failures_total",
		Help: "Total number of failed authorization checks by guard",
	}, []string{"guard"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
