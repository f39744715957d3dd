package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "opai_member"

// Metrics owns a private registry so independent servers never collide.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pageRenders     *prometheus.CounterVec
	payIntents      *prometheus.CounterVec
	copies          *prometheus.CounterVec
	shares          *prometheus.CounterVec
}

// NewMetrics registers the dashboard collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Rendered dashboard pages by section.",
		}, []string{"section"}),
		payIntents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pay_intents_total",
			Help:      "Pay intents by flow and outcome.",
		}, []string{"flow", "outcome"}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "copy_actions_total",
			Help:      "Copy-to-clipboard interactions by outcome.",
		}, []string{"outcome"}),
		shares: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "share_actions_total",
			Help:      "Share interactions by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.pageRenders,
		m.payIntents,
		m.copies,
		m.shares,
	)
	return m
}

// Handler serves the Prometheus exposition for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(latency.Seconds())
}

// ObservePageRender counts a rendered section page.
func (m *Metrics) ObservePageRender(section string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(section).Inc()
}

// ObservePayIntent counts a pay-intent submission.
func (m *Metrics) ObservePayIntent(flow string, accepted bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.payIntents.WithLabelValues(flow, outcome).Inc()
}

// ObserveCopy counts a copy interaction.
func (m *Metrics) ObserveCopy(outcome string) {
	if m == nil {
		return
	}
	m.copies.WithLabelValues(outcome).Inc()
}

// ObserveShare counts a share interaction.
func (m *Metrics) ObserveShare(outcome string) {
	if m == nil {
		return
	}
	m.shares.WithLabelValues(outcome).Inc()
}
