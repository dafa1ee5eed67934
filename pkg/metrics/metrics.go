// Package metrics provides Prometheus metrics for the attribution engine.
//
// Metrics are registered on a custom registry by default so library
// consumers can mount exposition wherever they like (see Registry).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the attribution engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Single-journey engine metrics
	journeysAttributed *prometheus.CounterVec // by model type
	emptyResults       prometheus.Counter
	validationErrors   prometheus.Counter
	attributionLatency prometheus.Histogram
	weightSumDeviation prometheus.Histogram

	// External scorer metrics
	scorerLatency   prometheus.Histogram
	scorerFallbacks *prometheus.CounterVec // by reason

	// Batch operation metrics
	batchUnits       *prometheus.CounterVec // by operation
	batchUnitErrors  *prometheus.CounterVec // by operation
	batchDuration    *prometheus.HistogramVec
	batchConcurrency prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid polluting the default registerer.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "attrib",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.journeysAttributed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journeys_attributed_total",
		Help:      "Journeys successfully attributed, by model type",
	}, []string{"model_type"})

	m.emptyResults = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_results_total",
		Help:      "Empty results returned for non-converted journeys under require-conversion models",
	})

	m.validationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_errors_total",
		Help:      "Single-journey calculations rejected for contract violations",
	})

	m.attributionLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attribution_latency_milliseconds",
		Help:      "Histogram of single-journey attribution latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.weightSumDeviation = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weight_sum_deviation",
		Help:      "Absolute deviation of the weight sum from 1.0 per calculation",
		Buckets:   []float64{1e-12, 1e-9, 1e-6, 1e-3, 0.1, 0.5},
	})

	m.scorerLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scorer_latency_milliseconds",
		Help:      "Histogram of external scorer call latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scorerFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scorer_fallbacks_total",
		Help:      "Data-driven calculations that fell back to a deterministic strategy, by reason",
	}, []string{"reason"})

	m.batchUnits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_units_total",
		Help:      "Per-journey or per-model units processed by batch operations",
	}, []string{"operation"})

	m.batchUnitErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_unit_errors_total",
		Help:      "Batch units that failed and were substituted with empty results",
	}, []string{"operation"})

	m.batchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_duration_milliseconds",
		Help:      "Histogram of whole-batch durations in milliseconds, by operation",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.batchConcurrency = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_concurrency",
		Help:      "Configured maximum concurrency for batch fan-out",
	})
}

// Registry returns the custom registry the global manager records into.
// Callers can mount promhttp on it or Gather from it directly.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level record helpers on the global manager.

// RecordJourneyAttributed increments the attributed-journey counter.
func RecordJourneyAttributed(modelType string) {
	globalManager.journeysAttributed.WithLabelValues(modelType).Inc()
}

// RecordEmptyResult increments the empty-result counter.
func RecordEmptyResult() {
	globalManager.emptyResults.Inc()
}

// RecordValidationError increments the validation-error counter.
func RecordValidationError() {
	globalManager.validationErrors.Inc()
}

// RecordAttributionLatency records a single-journey latency in milliseconds.
func RecordAttributionLatency(ms float64) {
	globalManager.attributionLatency.Observe(ms)
}

// RecordWeightSumDeviation records |Σweight - 1| for one calculation.
func RecordWeightSumDeviation(dev float64) {
	globalManager.weightSumDeviation.Observe(dev)
}

// RecordScorerLatency records an external scorer call latency in milliseconds.
func RecordScorerLatency(ms float64) {
	globalManager.scorerLatency.Observe(ms)
}

// RecordScorerFallback increments the fallback counter for a reason
// ("no_scorer" or "scorer_error").
func RecordScorerFallback(reason string) {
	globalManager.scorerFallbacks.WithLabelValues(reason).Inc()
}

// RecordBatchUnit increments the processed-unit counter for an operation.
func RecordBatchUnit(operation string) {
	globalManager.batchUnits.WithLabelValues(operation).Inc()
}

// RecordBatchUnitError increments the failed-unit counter for an operation.
func RecordBatchUnitError(operation string) {
	globalManager.batchUnitErrors.WithLabelValues(operation).Inc()
}

// RecordBatchDuration records a whole-batch duration in milliseconds.
func RecordBatchDuration(operation string, ms float64) {
	globalManager.batchDuration.WithLabelValues(operation).Observe(ms)
}

// UpdateBatchConcurrency sets the configured batch concurrency gauge.
func UpdateBatchConcurrency(n int) {
	globalManager.batchConcurrency.Set(float64(n))
}
