package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RefreshJobMetrics records metadata for the agent's background sync jobs.
type RefreshJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewRefreshJobMetrics registers the refresh job metrics on the provided registerer.
func NewRefreshJobMetrics(reg prometheus.Registerer) *RefreshJobMetrics {
	if reg == nil {
		return &RefreshJobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "refresh_job_duration_seconds",
		Help:    "Duration of background refresh jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "refresh_job_success_total",
		Help: "Successful refresh job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "refresh_job_failure_total",
		Help: "Failed refresh job executions.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure)
	return &RefreshJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named job.
func (m *RefreshJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (m *RefreshJobMetrics) IncSuccess(job string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (m *RefreshJobMetrics) IncFailure(job string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(job)).Inc()
}
