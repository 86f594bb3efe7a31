package metrics

import "github.com/prometheus/client_golang/prometheus"

// Projection counters
var (
	ProjectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projections_total",
		Help:      "Total number of projections by evidence path and status",
	}, []string{"path", "status"})

	RootFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "root_fallbacks_total",
		Help:      "Total number of unbracketed roots recovered by fallback",
	}, []string{"component"})

	SkippedMarketsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skipped_markets_total",
		Help:      "Total number of input markets skipped for unusable prices",
	}, []string{"market"})

	DerivedMarketsEmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "derived_markets_emitted_total",
		Help:      "Total number of fair-priced outcomes emitted by market type",
	}, []string{"market"})
)

// Projection histograms
var (
	ProjectionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "projection_duration_seconds",
		Help:      "Duration of a single projection in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})
)

// RecordProjection records a finished projection.
func RecordProjection(path, status string, durationSeconds float64) {
	ProjectionsTotal.WithLabelValues(path, status).Inc()
	ProjectionDuration.Observe(durationSeconds)
}

// RecordRootFallback records a recovered bracketing failure.
func RecordRootFallback(component string) {
	RootFallbacksTotal.WithLabelValues(component).Inc()
}

// RecordSkippedMarket records a skipped input market.
func RecordSkippedMarket(market string) {
	SkippedMarketsTotal.WithLabelValues(market).Inc()
}

// RecordDerivedMarkets records emitted outcomes for one market type.
func RecordDerivedMarkets(marketType string, count int) {
	if count <= 0 {
		return
	}
	DerivedMarketsEmittedTotal.WithLabelValues(marketType).Add(float64(count))
}
