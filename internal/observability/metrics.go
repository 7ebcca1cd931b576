package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics - private registry with go and process collectors, the HTTP metrics
// and whatever collectors the caller passes in.
func NewMetrics(collectorsToRegister ...prometheus.Collector) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tictactoe_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(metrics.RequestsTotal)
	registry.MustRegister(metrics.RequestDuration)
	registry.MustRegister(collectorsToRegister...)

	return metrics
}

func (that *Metrics) Registry() *prometheus.Registry {
	return that.registry
}

// Handler - serves the registry in the prometheus exposition format.
func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
