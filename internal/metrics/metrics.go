package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// query cache lookups by family and outcome (hit, miss)
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safespot_cache_lookups_total",
			Help: "Query cache lookups by family and outcome",
		},
		[]string{"family", "outcome"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safespot_cache_invalidations_total",
			Help: "Cached query results marked stale, by family",
		},
		[]string{"family"},
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safespot_store_query_duration_seconds",
			Help:    "Store query execution time in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation", "status"},
	)

	ReviewsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "safespot_reviews_created_total",
			Help: "Reviews written together with their tags",
		},
	)

	HelpfulVotes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "safespot_helpful_votes_total",
			Help: "Helpful votes applied to reviews",
		},
	)
)

// ObserveQuery records the duration of one store operation. Use it as
//
//	defer metrics.ObserveQuery("places.list", time.Now(), &err)
func ObserveQuery(operation string, start time.Time, err *error) {
	status := "success"
	if err != nil && *err != nil {
		status = "error"
	}
	StoreQueryDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}
