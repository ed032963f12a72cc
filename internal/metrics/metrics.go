// Package metrics wires Prometheus instrumentation for the serve mode.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder captures upstream request and HTTP handler observations. A nil
// Recorder is valid and records nothing, so the one-shot CLI path can run
// without a registry.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewRecorder registers the collectors on the given registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mlbscores_upstream_requests_total",
			Help: "Requests issued against the MLB Stats API, by endpoint and outcome.",
		}, []string{"endpoint", "status", "outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mlbscores_upstream_request_duration_seconds",
			Help:    "Latency of MLB Stats API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mlbscores_http_requests_total",
			Help: "Requests served by the HTTP surface, by path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mlbscores_http_request_duration_seconds",
			Help:    "Latency of served HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

// RecordUpstreamRequest records one call against the upstream API.
func (r *Recorder) RecordUpstreamRequest(endpoint string, statusCode int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode), outcome).Inc()
	r.upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordHTTPRequest records one served HTTP request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(path).Observe(duration.Seconds())
}
