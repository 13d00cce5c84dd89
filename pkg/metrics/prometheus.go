// Package metrics provides Prometheus metrics for the DraftSensei service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the DraftSensei service.
type Manager struct {
	namespace        string
	subsystem        string
	latencyBuckets   []float64
	candidateBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Recommendation engine
	recommendations       *prometheus.CounterVec
	recommendationLatency prometheus.Histogram
	emptyRecommendations  prometheus.Counter
	candidatesScored      prometheus.Histogram
	laneSelected          *prometheus.CounterVec
	banSuggestions        prometheus.Counter
	analyses              prometheus.Counter

	// Catalog and sessions
	catalogHeroes   prometheus.Gauge
	catalogRejected prometheus.Gauge
	catalogReloads  *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	sessionsEvicted prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRateLimited     prometheus.Counter

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry the
// metrics register on the Prometheus default registerer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "draftsensei",
		subsystem:        "engine",
		latencyBuckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		candidateBuckets: []float64{0, 10, 25, 50, 75, 100, 125, 150},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.latencyBuckets,
		ConstLabels: m.constLabels,
	}, labels)
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	m.recommendations = m.counterVec("recommendations_total",
		"Total number of pick recommendations by lane selection mode", "mode")
	m.recommendationLatency = m.histogram("recommendation_latency_milliseconds",
		"Recommendation latency in milliseconds", m.latencyBuckets)
	m.emptyRecommendations = m.counter("empty_recommendations_total",
		"Recommendations that found no available hero")
	m.candidatesScored = m.histogram("candidates_scored",
		"Number of candidate heroes scored per recommendation", m.candidateBuckets)
	m.laneSelected = m.counterVec("lane_selected_total",
		"Target lanes chosen for recommendations", "lane")
	m.banSuggestions = m.counter("ban_suggestions_total",
		"Total number of ban suggestion requests")
	m.analyses = m.counter("analyses_total",
		"Total number of draft analyses")

	m.catalogHeroes = m.gauge("catalog_heroes",
		"Number of heroes in the active catalog")
	m.catalogRejected = m.gauge("catalog_rejected",
		"Number of hero records rejected while building the active catalog")
	m.catalogReloads = m.counterVec("catalog_reloads_total",
		"Catalog reload attempts by result", "result")
	m.activeSessions = m.gauge("active_sessions",
		"Number of tracked diversity sessions")
	m.sessionsEvicted = m.counter("sessions_evicted_total",
		"Diversity sessions removed by expiry or capacity")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method",
		"endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds",
		"endpoint", "method", "status_code")
	m.httpRateLimited = m.counter("http_rate_limited_total",
		"Requests rejected by the rate limiter")

	m.errorRateByComponent = m.counterVec("errors_by_component_total",
		"Total number of errors by component", "component", "error_type")
	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Total number of errors by type", "error_type", "severity")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")
	m.errorLatency = m.histogramVec("error_latency_milliseconds",
		"Latency of operations that resulted in errors", "component", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes",
		"System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count",
		"Number of goroutines")
	m.systemGCPauseTime = m.histogram("system_gc_pause_time_milliseconds",
		"GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
}

// RecordRecommendation records one pick recommendation. mode is "auto" or "explicit".
func RecordRecommendation(mode, lane string, candidates int, latencyMs float64) {
	globalManager.recommendations.WithLabelValues(mode).Inc()
	globalManager.laneSelected.WithLabelValues(lane).Inc()
	globalManager.candidatesScored.Observe(float64(candidates))
	globalManager.recommendationLatency.Observe(latencyMs)
}

// RecordEmptyRecommendation increments the empty recommendations counter.
func RecordEmptyRecommendation() {
	globalManager.emptyRecommendations.Inc()
}

// RecordBanSuggestion increments the ban suggestions counter.
func RecordBanSuggestion() {
	globalManager.banSuggestions.Inc()
}

// RecordAnalysis increments the analyses counter.
func RecordAnalysis() {
	globalManager.analyses.Inc()
}

// UpdateCatalog sets the catalog size gauges.
func UpdateCatalog(heroes, rejected int) {
	globalManager.catalogHeroes.Set(float64(heroes))
	globalManager.catalogRejected.Set(float64(rejected))
}

// RecordCatalogReload counts a reload attempt. result is "ok" or "error".
func RecordCatalogReload(result string) {
	globalManager.catalogReloads.WithLabelValues(result).Inc()
}

// UpdateActiveSessions sets the tracked session gauge.
func UpdateActiveSessions(count int) {
	globalManager.activeSessions.Set(float64(count))
}

// RecordSessionsEvicted adds n evicted sessions.
func RecordSessionsEvicted(n int) {
	globalManager.sessionsEvicted.Add(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordRateLimited increments the rate limited counter.
func RecordRateLimited() {
	globalManager.httpRateLimited.Inc()
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
