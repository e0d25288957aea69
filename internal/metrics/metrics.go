// Package metrics provides Prometheus metrics for the LinkNest backend.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linknest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linknest_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Market Gateway Metrics
	UpstreamFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linknest_upstream_fallbacks_total",
			Help: "Upstream failures converted to fallback responses, by resource",
		},
		[]string{"resource"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linknest_market_cache_hits_total",
			Help: "Market gateway cache hit count",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linknest_market_cache_misses_total",
			Help: "Market gateway cache miss count",
		},
	)

	// Store Metrics
	LinksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "linknest_links_total",
			Help: "Number of links on the link page",
		},
	)

	WatchlistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "linknest_watchlist_size",
			Help: "Number of assets on the watchlist",
		},
	)

	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linknest_store_writes_total",
			Help: "Store snapshot serializations by store name",
		},
		[]string{"store"},
	)

	StoreWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linknest_store_write_errors_total",
			Help: "Failed store snapshot serializations by store name",
		},
		[]string{"store"},
	)

	// Watchlist Refresh Metrics
	WatchlistRefreshTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linknest_watchlist_refreshes_total",
			Help: "Completed watchlist snapshot refresh passes",
		},
	)

	WatchlistRefreshUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linknest_watchlist_refresh_updated_total",
			Help: "Watchlist entries updated by the refresh worker",
		},
	)
)
