package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests         *prometheus.CounterVec
	Latency          *prometheus.HistogramVec
	GuestbookEntries *prometheus.CounterVec
	RSVPResponses    *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry so several servers
// can live in one process (tests) without duplicate registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "invite_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "invite_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		GuestbookEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "invite_guestbook_entries_total",
			Help: "Guestbook entries written or deleted through the API",
		}, []string{"op"}),
		RSVPResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "invite_rsvp_responses_total",
			Help: "RSVP responses submitted through the API",
		}, []string{"attending"}),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
