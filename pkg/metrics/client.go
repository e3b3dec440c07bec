package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records the API client's traffic and cache behavior.
type RequestMetrics struct {
	duration      *prometheus.HistogramVec
	errors        *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewRequestMetrics registers the client metrics on the provided registerer.
// A nil registerer yields a no-op collector, which keeps the SDK usable in
// short-lived tools that do not expose /metrics.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	if reg == nil {
		return &RequestMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of platform API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})
	errors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_errors_total",
		Help: "Failed platform API requests.",
	}, []string{"resource", "method"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_cache_hits_total",
		Help: "Reads served from the tagged response cache.",
	}, []string{"resource"})
	cacheMisses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_cache_misses_total",
		Help: "Reads that had to go to the platform API.",
	}, []string{"resource"})
	invalidations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_cache_invalidations_total",
		Help: "Cache entries dropped after a mutation on their tag.",
	}, []string{"resource"})
	reg.MustRegister(duration, errors, cacheHits, cacheMisses, invalidations)
	return &RequestMetrics{
		duration:      duration,
		errors:        errors,
		cacheHits:     cacheHits,
		cacheMisses:   cacheMisses,
		invalidations: invalidations,
	}
}

// ObserveRequest records one round trip against the named resource.
func (m *RequestMetrics) ObserveRequest(resource, method string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(resource), method).Observe(duration.Seconds())
}

// IncError counts a failed request.
func (m *RequestMetrics) IncError(resource, method string) {
	if m == nil || m.errors == nil {
		return
	}
	m.errors.WithLabelValues(normalizeLabel(resource), method).Inc()
}

// IncCacheHit counts a read served locally.
func (m *RequestMetrics) IncCacheHit(resource string) {
	if m == nil || m.cacheHits == nil {
		return
	}
	m.cacheHits.WithLabelValues(normalizeLabel(resource)).Inc()
}

// IncCacheMiss counts a read that went to the network.
func (m *RequestMetrics) IncCacheMiss(resource string) {
	if m == nil || m.cacheMisses == nil {
		return
	}
	m.cacheMisses.WithLabelValues(normalizeLabel(resource)).Inc()
}

// AddInvalidations counts entries dropped for a resource tag.
func (m *RequestMetrics) AddInvalidations(resource string, count int) {
	if m == nil || m.invalidations == nil || count <= 0 {
		return
	}
	m.invalidations.WithLabelValues(normalizeLabel(resource)).Add(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
