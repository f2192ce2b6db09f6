package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records static server traffic using Prometheus
type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	preflights      prometheus.Counter
	requestDuration *prometheus.HistogramVec
	responseBytes   prometheus.Counter
}

// NewCollector creates a collector backed by its own registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rapidtriage_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "code"},
		),
		preflights: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rapidtriage_http_preflight_requests_total",
				Help: "Total number of CORS preflight requests answered",
			},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rapidtriage_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method"},
		),
		responseBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rapidtriage_http_response_bytes_total",
				Help: "Total number of response body bytes written",
			},
		),
	}
}

// RecordRequest records a completed request
func (c *Collector) RecordRequest(method string, code int, duration time.Duration, bytes int) {
	c.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	c.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
	if bytes > 0 {
		c.responseBytes.Add(float64(bytes))
	}
	if method == http.MethodOptions {
		c.preflights.Inc()
	}
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler serving the collected metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
