// Package metrics provides centralized Prometheus metrics registry for the projector.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scoreline"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Cache gauges
var (
	ProjectionCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "projection_cache_hit_ratio",
		Help:      "Hit ratio of the projection result cache",
	})
	ProjectionCacheItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "projection_cache_items",
		Help:      "Number of projections held in the result cache",
	})
)

// API metrics
var (
	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of API requests by status code",
	}, []string{"code"})
	APIRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Latency of API requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register projection metrics
		registry.MustRegister(ProjectionsTotal)
		registry.MustRegister(ProjectionDuration)
		registry.MustRegister(RootFallbacksTotal)
		registry.MustRegister(SkippedMarketsTotal)
		registry.MustRegister(DerivedMarketsEmittedTotal)

		// Register cache metrics
		registry.MustRegister(ProjectionCacheHitRatio)
		registry.MustRegister(ProjectionCacheItems)

		// Register API metrics
		registry.MustRegister(APIRequestsTotal)
		registry.MustRegister(APIRequestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// UpdateCacheStats publishes the result cache gauges.
func UpdateCacheStats(hitRatio float64, items int) {
	ProjectionCacheHitRatio.Set(hitRatio)
	ProjectionCacheItems.Set(float64(items))
}

// RecordAPIRequest records a served API request.
func RecordAPIRequest(statusCode int, durationSeconds float64) {
	APIRequestsTotal.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.Observe(durationSeconds)
}
