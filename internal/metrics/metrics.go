// Package metrics exposes Prometheus collectors for exposure sweeps and the
// HTTP front end. Collectors live on a private registry so the process
// exports only what the calculator records.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sweep outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var defaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Manager owns the calculator's collectors.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	sweeps         *prometheus.CounterVec
	samples        *prometheus.CounterVec
	saturated      *prometheus.CounterVec
	sweepDuration  *prometheus.HistogramVec
	sweepsInFlight prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "etc",
		subsystem: "snr",
		buckets:   defaultBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sweeps = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sweeps_total",
		Help:      "Exposure sweeps run, by operation and outcome",
	}, []string{"operation", "status"})

	m.samples = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "samples_total",
		Help:      "Exposure-time samples evaluated",
	}, []string{"operation"})

	m.saturated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saturated_samples_total",
		Help:      "Exposure-time samples that reached the well depth",
	}, []string{"operation"})

	m.sweepDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sweep_duration_seconds",
		Help:      "Wall time of a sweep including preparation",
		Buckets:   m.buckets,
	}, []string{"operation"})

	m.sweepsInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sweeps_in_flight",
		Help:      "Sweeps currently running",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method", "status_code"})
}

// Registry returns the registry the collectors are registered on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// SweepStarted marks a sweep as running.
func (m *Manager) SweepStarted(string) { m.sweepsInFlight.Inc() }

// SweepFinished records the outcome of a sweep.
func (m *Manager) SweepFinished(operation string, samples, saturated int, elapsed time.Duration, err error) {
	m.sweepsInFlight.Dec()

	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.sweeps.WithLabelValues(operation, status).Inc()
	m.sweepDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	m.samples.WithLabelValues(operation).Add(float64(samples))
	m.saturated.WithLabelValues(operation).Add(float64(saturated))
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(elapsed.Seconds())
}
