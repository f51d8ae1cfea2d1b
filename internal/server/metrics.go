package server

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	metricsPath      = "/metrics"
	metricsSubsystem = "hlabs"
)

// newMetricsRegistry returns a registry private to one server, so several
// servers in one process (tests) never collide on metric names.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// metricsMiddleware records request counts, latencies and sizes per route.
// Static assets and the scrape endpoint itself are not recorded.
func metricsMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 metricsSubsystem,
		Registerer:                reg,
		DoNotUseRequestPathFor404: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == metricsPath || strings.HasPrefix(p, "/static/")
		},
	})
}

// registerDiagnostics mounts /metrics and, when enabled, /debug/pprof.
func (s *Server) registerDiagnostics() {
	if s.Metrics != nil {
		s.E.GET(metricsPath, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: s.Metrics,
		}))
	}
	if s.Cfg.Pprof {
		pprof.Register(s.E)
	}
}
