// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "college_directory"

// Fallback reasons
const (
	ReasonStoreFailure = "store_failure"
	ReasonEmptyStore   = "empty_store"
	ReasonEmptyResult  = "empty_result"
)

// Metrics holds the collectors and the registry they are registered on
type Metrics struct {
	registry      *prometheus.Registry
	fallbackTotal *prometheus.CounterVec
	storeUp       *prometheus.GaugeVec
	requestsTotal *prometheus.CounterVec
	requestTime   *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry together with the Go runtime and
// process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_total",
			Help:      "Requests answered from the fallback dataset.",
		}, []string{"entity", "operation", "reason"}),
		storeUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_up",
			Help:      "1 when the last call to the store for the entity succeeded.",
		}, []string{"entity"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		requestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.fallbackTotal,
		m.storeUp,
		m.requestsTotal,
		m.requestTime,
	)
	return m
}

// Fallback counts a request answered from the fallback dataset
func (m *Metrics) Fallback(entity, operation, reason string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(entity, operation, reason).Inc()
}

// StoreUp records whether the last store call for entity succeeded
func (m *Metrics) StoreUp(entity string, up bool) {
	if m == nil {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	m.storeUp.WithLabelValues(entity).Set(v)
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestTime.WithLabelValues(method, route).Observe(seconds)
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
