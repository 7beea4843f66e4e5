// Package metrics provides Prometheus metrics for the ROI analyzer.
// Scrape these at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roi_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Upstream catalog API metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roi_upstream_requests_total",
			Help: "Catalog API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roi_upstream_request_duration_seconds",
			Help:    "Catalog API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Analysis run metrics
	AnalysisRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
	)

	AnalysisRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roi_analysis_run_duration_seconds",
			Help:    "Time taken for a full analysis run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	AnalysisSetFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_analysis_set_failures_total",
			Help: "Sets skipped within a run due to upstream failures",
		},
	)

	ProductsAnalyzedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_products_analyzed_total",
			Help: "Total products that produced an analysis result",
		},
	)

	// Latest run gauges
	LastRunProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roi_last_run_products",
			Help: "Product count of the most recent analysis run",
		},
	)

	LastRunPositiveROI = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roi_last_run_positive_roi_products",
			Help: "Products with positive ROI in the most recent run",
		},
	)

	LastRunAverageROI = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roi_last_run_average_roi_percent",
			Help: "Mean ROI percentage of the most recent run",
		},
	)

	LastRunAverageRisk = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roi_last_run_average_risk",
			Help: "Mean risk score of the most recent run",
		},
	)

	// Resolver cache metrics
	ResolverCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_resolver_cache_hits_total",
			Help: "Set resolution cache hit count",
		},
	)

	ResolverCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_resolver_cache_misses_total",
			Help: "Set resolution cache miss count",
		},
	)

	// Snapshot metrics
	SnapshotsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roi_snapshots_recorded_total",
			Help: "Analysis snapshots persisted to the database",
		},
	)
)
