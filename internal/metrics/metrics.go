// Package metrics provides Prometheus metrics collection for the rate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuoteEstimatesTotal tracks rate estimations by mode and outcome status.
	QuoteEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_estimates_total",
			Help: "Total number of quote estimations",
		},
		[]string{"mode", "status"},
	)

	// QuoteEstimateDuration tracks quote estimation duration.
	QuoteEstimateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_estimate_duration_seconds",
			Help:    "Quote estimation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// GeoResolutionsTotal tracks distance resolutions by strategy and result.
	GeoResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geo_resolutions_total",
			Help: "Total number of distance resolution attempts",
		},
		[]string{"source", "result"},
	)

	// DistanceCacheOperationsTotal tracks distance cache operations.
	DistanceCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "distance_cache_operations_total",
			Help: "Total number of distance cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuoteEstimate records metrics for a quote estimation.
func RecordQuoteEstimate(mode, status string, duration time.Duration) {
	if mode == "" {
		mode = "unresolved"
	}
	QuoteEstimateDuration.Observe(duration.Seconds())
	QuoteEstimatesTotal.WithLabelValues(mode, status).Inc()
}

// RecordGeoResolution records the outcome of a distance resolution strategy.
func RecordGeoResolution(source, result string) {
	GeoResolutionsTotal.WithLabelValues(source, result).Inc()
}

// RecordDistanceCacheOperation records metrics for a distance cache operation.
func RecordDistanceCacheOperation(operation, result string) {
	DistanceCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
