package prometheus

import (
	"time"

	"design-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Session metrics
	SessionsStartedCounter   prometheus.Counter
	SessionsRateLimitCounter prometheus.Counter
	ChatMessagesCounter      prometheus.Counter

	// Design generation metrics
	DesignGenerationsCounter   prometheus.CounterVec
	DesignGenerationDuration   prometheus.Histogram
	SynthesizedItemsCounter    prometheus.Counter
	BudgetUtilizationHistogram prometheus.Histogram
	TextGenerationFallbacks    prometheus.Counter
	ReportExportsCounter       prometheus.CounterVec

	// Catalog metrics
	ProductOperationsCounter prometheus.CounterVec
	CatalogQueryDuration     prometheus.Histogram
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SessionsStartedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sessions_started_total",
			Help: "Total number of user sessions created",
		},
	)

	SessionsRateLimitCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sessions_rate_limited_total",
			Help: "Total number of session starts answered from the rate-limit cache",
		},
	)

	ChatMessagesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_chat_messages_total",
			Help: "Total number of chat messages processed",
		},
	)

	DesignGenerationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_generations_total",
			Help: "Total number of design generation runs",
		},
		[]string{"status"},
	)

	DesignGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_generation_duration_seconds",
			Help:    "Duration of design generation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SynthesizedItemsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_synthesized_items_total",
			Help: "Total number of slots filled with synthesized placeholder items",
		},
	)

	BudgetUtilizationHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_budget_utilization_percent",
			Help:    "Budget utilization of assembled designs as a percentage",
			Buckets: []float64{50, 70, 85, 95, 98, 100, 102, 105, 110, 125},
		},
	)

	TextGenerationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_text_generation_fallbacks_total",
			Help: "Total number of narrative generations served by the static fallback",
		},
	)

	ReportExportsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_report_exports_total",
			Help: "Total number of report exports",
		},
		[]string{"format"},
	)

	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product catalog operations",
		},
		[]string{"operation"},
	)

	CatalogQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_catalog_query_duration_seconds",
			Help:    "Duration of catalog candidate queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordDesignGeneration records one design generation run's outcome and
// duration
func RecordDesignGeneration(status string, elapsed time.Duration) {
	DesignGenerationsCounter.WithLabelValues(status).Inc()
	DesignGenerationDuration.Observe(elapsed.Seconds())
}

// RecordReportExport increments the export counter for the given format
func RecordReportExport(format string) {
	ReportExportsCounter.WithLabelValues(format).Inc()
}
