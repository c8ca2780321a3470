// Package metrics provides Prometheus metrics for the derivation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Derivation metrics
	derivations        *prometheus.CounterVec
	derivationErrors   prometheus.Counter
	derivationDuration prometheus.Histogram

	// Intake metrics
	intakeAccepted    prometheus.Counter
	intakeRejected    prometheus.Counter
	intakeRateLimited prometheus.Counter

	// Store metrics
	storeReads  prometheus.Counter
	storeWrites prometheus.Counter
	storeErrors *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Batch pipeline metrics
	queueDepth prometheus.Gauge
	batchJobs  *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "agf",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.derivations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "derivations_total",
		Help:      "Total number of successful derivations, labeled by tier and risk level",
	}, []string{"tier", "risk"})

	m.derivationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "derivation_errors_total",
		Help:      "Total number of failed derivations",
	})

	m.derivationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "derivation_duration_seconds",
		Help:      "Histogram of end-to-end derivation time in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.intakeAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "intake_accepted_total",
		Help:      "Total number of accepted intake submissions",
	})

	m.intakeRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "intake_rejected_total",
		Help:      "Total number of intake submissions rejected by validation",
	})

	m.intakeRateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "intake_rate_limited_total",
		Help:      "Total number of intake submissions rejected by the daily cap",
	})

	m.storeReads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_reads_total",
		Help:      "Total number of athlete files read",
	})

	m.storeWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_writes_total",
		Help:      "Total number of athlete files written",
	})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of store failures, labeled by operation",
	}, []string{"op"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "Histogram of HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.queueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_queue_depth",
		Help:      "Current number of jobs waiting in the batch derivation queue",
	})

	m.batchJobs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_jobs_total",
		Help:      "Total number of batch derivation jobs processed, labeled by result",
	}, []string{"result"})
}

// RecordDerivation increments the derivation counter for a tier and risk level.
func RecordDerivation(tier, risk string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.derivations.WithLabelValues(tier, risk).Inc()
	}
}

// RecordDerivationError increments the failed-derivation counter.
func RecordDerivationError() {
	if globalManager != nil && globalManager.enabled {
		globalManager.derivationErrors.Inc()
	}
}

// ObserveDerivationDuration records the duration of one derivation in seconds.
func ObserveDerivationDuration(seconds float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.derivationDuration.Observe(seconds)
	}
}

// RecordIntakeAccepted increments the accepted-submission counter.
func RecordIntakeAccepted() {
	if globalManager != nil && globalManager.enabled {
		globalManager.intakeAccepted.Inc()
	}
}

// RecordIntakeRejected increments the rejected-submission counter.
func RecordIntakeRejected() {
	if globalManager != nil && globalManager.enabled {
		globalManager.intakeRejected.Inc()
	}
}

// RecordIntakeRateLimited increments the rate-limited-submission counter.
func RecordIntakeRateLimited() {
	if globalManager != nil && globalManager.enabled {
		globalManager.intakeRateLimited.Inc()
	}
}

// RecordStoreRead increments the store read counter.
func RecordStoreRead() {
	if globalManager != nil && globalManager.enabled {
		globalManager.storeReads.Inc()
	}
}

// RecordStoreWrite increments the store write counter.
func RecordStoreWrite() {
	if globalManager != nil && globalManager.enabled {
		globalManager.storeWrites.Inc()
	}
}

// RecordStoreError increments the store failure counter for an operation.
func RecordStoreError(op string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.storeErrors.WithLabelValues(op).Inc()
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration in seconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, seconds float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(seconds)
	}
}

// UpdateQueueDepth sets the batch queue depth gauge.
func UpdateQueueDepth(depth int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.queueDepth.Set(float64(depth))
	}
}

// RecordBatchJob increments the batch job counter for a result ("done" or "failed").
func RecordBatchJob(result string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.batchJobs.WithLabelValues(result).Inc()
	}
}

// GetRegistry returns the custom Prometheus registry for the metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
