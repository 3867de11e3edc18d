// Package metrics provides Prometheus metrics for the racechart service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector racechart exports.
type Manager struct {
	namespace        string
	subsystem        string
	fetchBuckets  []float64
	renderBuckets []float64
	httpBuckets   []float64
	enabled       bool
	constLabels   map[string]string
	registry      prometheus.Registerer

	// Dataset loading
	datasetFetches      *prometheus.CounterVec
	datasetFetchLatency prometheus.Histogram
	datasetBytes        prometheus.Gauge
	recordsLoaded       prometheus.Gauge
	recordsRejected     prometheus.Counter

	// Rendering
	renders       prometheus.Counter
	renderLatency prometheus.Histogram
	marksRendered *prometheus.GaugeVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRateLimited     *prometheus.CounterVec

	// Errors
	errorsByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "racechart",
		subsystem:        "chart",
		fetchBuckets:  []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		renderBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		httpBuckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
		enabled:       true,
		constLabels:   map[string]string{},
		registry:      prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per collector
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.datasetFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_fetches_total",
		Help:        "Dataset fetch attempts by outcome",
		ConstLabels: labels,
	}, []string{"outcome"})

	m.datasetFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_fetch_latency_milliseconds",
		Help:        "Latency of the dataset fetch in milliseconds",
		Buckets:     m.fetchBuckets,
		ConstLabels: labels,
	})

	m.datasetBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_bytes",
		Help:        "Size of the last fetched dataset body in bytes",
		ConstLabels: labels,
	})

	m.recordsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_loaded",
		Help:        "Number of normalized records backing the chart",
		ConstLabels: labels,
	})

	m.recordsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_rejected_total",
		Help:        "Records rejected during normalization",
		ConstLabels: labels,
	})

	m.renders = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "renders_total",
		Help:        "Completed chart renders",
		ConstLabels: labels,
	})

	m.renderLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "render_latency_milliseconds",
		Help:        "Time spent laying out and drawing the chart in milliseconds",
		Buckets:     m.renderBuckets,
		ConstLabels: labels,
	})

	m.marksRendered = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "marks_rendered",
		Help:        "Marks drawn in the current chart by color category",
		ConstLabels: labels,
	}, []string{"category"})

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
		Buckets:     m.httpBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRateLimited = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_rate_limited_total",
		Help:        "Requests rejected by the rate limiter",
		ConstLabels: labels,
	}, []string{"endpoint"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Errors by component and type",
		ConstLabels: labels,
	}, []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})
}

// RecordDatasetFetch records one fetch attempt with its outcome and latency.
func (m *Manager) RecordDatasetFetch(outcome string, latencyMs float64, bytes int) {
	if !m.enabled {
		return
	}
	m.datasetFetches.WithLabelValues(outcome).Inc()
	m.datasetFetchLatency.Observe(latencyMs)
	if bytes > 0 {
		m.datasetBytes.Set(float64(bytes))
	}
}

// UpdateRecordsLoaded sets the number of records backing the chart.
func (m *Manager) UpdateRecordsLoaded(count int) {
	if !m.enabled {
		return
	}
	m.recordsLoaded.Set(float64(count))
}

// RecordRecordRejected counts a record that failed normalization.
func (m *Manager) RecordRecordRejected() {
	if !m.enabled {
		return
	}
	m.recordsRejected.Inc()
}

// RecordRender records a completed render and its latency.
func (m *Manager) RecordRender(latencyMs float64) {
	if !m.enabled {
		return
	}
	m.renders.Inc()
	m.renderLatency.Observe(latencyMs)
}

// UpdateMarksRendered sets the mark count for a color category.
func (m *Manager) UpdateMarksRendered(category string, count int) {
	if !m.enabled {
		return
	}
	m.marksRendered.WithLabelValues(category).Set(float64(count))
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordRateLimited counts a request rejected by the limiter.
func (m *Manager) RecordRateLimited(endpoint string) {
	if !m.enabled {
		return
	}
	m.httpRateLimited.WithLabelValues(endpoint).Inc()
}

// RecordError counts an error for a component.
func (m *Manager) RecordError(component, errorType string) {
	if !m.enabled {
		return
	}
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystem sets memory and goroutine gauges.
func (m *Manager) UpdateSystem(memoryBytes uint64, goroutines int) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(memoryBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
}

// Default returns the process-wide manager registered on GetRegistry.
func Default() *Manager {
	return globalManager
}

// RecordDatasetFetch records a fetch on the global manager.
func RecordDatasetFetch(outcome string, latencyMs float64, bytes int) {
	globalManager.RecordDatasetFetch(outcome, latencyMs, bytes)
}

// UpdateRecordsLoaded sets the loaded record gauge on the global manager.
func UpdateRecordsLoaded(count int) {
	globalManager.UpdateRecordsLoaded(count)
}

// RecordRecordRejected counts a rejected record on the global manager.
func RecordRecordRejected() {
	globalManager.RecordRecordRejected()
}

// RecordRender records a render on the global manager.
func RecordRender(latencyMs float64) {
	globalManager.RecordRender(latencyMs)
}

// UpdateMarksRendered sets the mark gauge on the global manager.
func UpdateMarksRendered(category string, count int) {
	globalManager.UpdateMarksRendered(category, count)
}

// RecordHTTPRequest records a request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordRateLimited counts a limited request on the global manager.
func RecordRateLimited(endpoint string) {
	globalManager.RecordRateLimited(endpoint)
}

// RecordError counts an error on the global manager.
func RecordError(component, errorType string) {
	globalManager.RecordError(component, errorType)
}

// UpdateSystem sets system gauges on the global manager.
func UpdateSystem(memoryBytes uint64, goroutines int) {
	globalManager.UpdateSystem(memoryBytes, goroutines)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
