// Package metrics provides Prometheus metrics for the race analytics service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Manager manages all Prometheus metrics of the analytics service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Run metrics
	runs            *prometheus.CounterVec
	runDuration     prometheus.Histogram
	recordsLoaded   *prometheus.GaugeVec
	recordsExcluded *prometheus.CounterVec
	participants    prometheus.Gauge
	editions        prometheus.Gauge

	// Source metrics
	sourceLoadLatency *prometheus.HistogramVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ayda",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_total",
		Help:        "Total number of analytics runs by outcome",
		ConstLabels: labels,
	}, []string{"status"})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "run_duration_seconds",
		Help:        "Duration of a full analytics run in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.recordsLoaded = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_loaded",
		Help:        "Number of result records loaded for an edition in the last run",
		ConstLabels: labels,
	}, []string{"year"})

	m.recordsExcluded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_excluded_total",
		Help:        "Records left out of an aggregate, by reason",
		ConstLabels: labels,
	}, []string{"reason"})

	m.participants = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "participants",
		Help:        "Number of resolved participants in the last run",
		ConstLabels: labels,
	})

	m.editions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "editions",
		Help:        "Number of editions analyzed in the last run",
		ConstLabels: labels,
	})

	m.sourceLoadLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "source_load_latency_milliseconds",
		Help:        "Latency of loading one edition from a dataset source",
		Buckets:     []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: labels,
	}, []string{"source"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Errors by component and type",
		ConstLabels: labels,
	}, []string{"component", "error_type"})
}

// RecordRun counts a finished run and observes its duration.
func (m *Manager) RecordRun(status string, seconds float64) {
	if !m.enabled {
		return
	}
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(seconds)
}

// SetRecordsLoaded sets the number of records loaded for year.
func (m *Manager) SetRecordsLoaded(year, count int) {
	if !m.enabled {
		return
	}
	m.recordsLoaded.WithLabelValues(strconv.Itoa(year)).Set(float64(count))
}

// AddRecordsExcluded adds n exclusions under reason. Zero is ignored.
func (m *Manager) AddRecordsExcluded(reason string, n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.recordsExcluded.WithLabelValues(reason).Add(float64(n))
}

// SetParticipants sets the resolved participant and edition counts.
func (m *Manager) SetParticipants(participants, editions int) {
	if !m.enabled {
		return
	}
	m.participants.Set(float64(participants))
	m.editions.Set(float64(editions))
}

// ObserveSourceLoad records how long a source took to load one edition.
func (m *Manager) ObserveSourceLoad(source string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.sourceLoadLatency.WithLabelValues(source).Observe(latencyMs)
}

// RecordHTTPRequest counts an HTTP request and observes its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordError counts an error by component and type.
func (m *Manager) RecordError(component, errorType string) {
	if !m.enabled {
		return
	}
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordRun counts a finished run on the global manager.
func RecordRun(status string, seconds float64) { globalManager.RecordRun(status, seconds) }

// SetRecordsLoaded sets the loaded record count of year on the global manager.
func SetRecordsLoaded(year, count int) { globalManager.SetRecordsLoaded(year, count) }

// AddRecordsExcluded adds exclusions on the global manager.
func AddRecordsExcluded(reason string, n int) { globalManager.AddRecordsExcluded(reason, n) }

// SetParticipants sets participant and edition counts on the global manager.
func SetParticipants(participants, editions int) {
	globalManager.SetParticipants(participants, editions)
}

// ObserveSourceLoad records source latency on the global manager.
func ObserveSourceLoad(source string, latencyMs float64) {
	globalManager.ObserveSourceLoad(source, latencyMs)
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordError counts an error on the global manager.
func RecordError(component, errorType string) { globalManager.RecordError(component, errorType) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
