// Package metrics exposes Prometheus collectors for the site server.
package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "cisto"

// Registry wraps a Prometheus registry with the site's own collectors.
type Registry struct {
	registry *prometheus.Registry

	pageSessions   prometheus.Gauge
	sessionsClosed *prometheus.CounterVec
	navTransitions *prometheus.CounterVec
	pagesRendered  prometheus.Counter
}

// NewRegistry creates a registry preloaded with the Go and process collectors
// and the site collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		registry: reg,
		pageSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "page_sessions_active",
			Help:      "Page sessions currently holding a live navigation bar.",
		}),
		sessionsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_sessions_closed_total",
			Help:      "Page sessions torn down, by reason.",
		}, []string{"reason"}),
		navTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nav_transitions_total",
			Help:      "Navigation bar events applied, by kind.",
		}, []string{"kind"}),
		pagesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_rendered_total",
			Help:      "Full pages rendered.",
		}),
	}
	reg.MustRegister(r.pageSessions, r.sessionsClosed, r.navTransitions, r.pagesRendered)
	return r
}

// Prometheus returns the underlying registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Middleware records request counts and latencies into this registry.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  namespace,
		Subsystem:  "http",
		Registerer: r.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: r.registry})
}

// SessionOpened and SessionClosed track the page-session gauge.
func (r *Registry) SessionOpened() {
	r.pageSessions.Inc()
}

func (r *Registry) SessionClosed(reason string) {
	r.pageSessions.Dec()
	r.sessionsClosed.WithLabelValues(reason).Inc()
}

// NavEvent counts one applied navigation event ("scroll", "menu", "select").
func (r *Registry) NavEvent(kind string) {
	r.navTransitions.WithLabelValues(kind).Inc()
}

// PageRendered counts one full page render.
func (r *Registry) PageRendered() {
	r.pagesRendered.Inc()
}
