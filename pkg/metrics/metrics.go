package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SalesQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_listing_queries_total",
			Help: "Total number of sales listing requests by result",
		},
		[]string{"status"},
	)

	// FacetFailuresTotal conta as leituras de facetas que degradaram para listas vazias
	FacetFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_facet_failures_total",
			Help: "Total number of facet reads that failed and degraded to empty facets",
		},
	)

	FacetCacheRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_facet_cache_refresh_total",
			Help: "Total number of facet cache refreshes by result",
		},
		[]string{"status"},
	)
)

// Handler expõe as métricas no formato do prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
