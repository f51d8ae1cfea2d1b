package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hlabs/hlabs-web/internal/app"
	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/handlers"
	appmiddleware "github.com/hlabs/hlabs-web/internal/middleware"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Injector *do.RootScope
	// Metrics is nil when metrics are disabled.
	Metrics *prometheus.Registry
	mounts  []app.Mount
}

// New builds the server: core services are provided to the injector, modules
// register their own services, and middleware is installed. Routes are added
// by RegisterRoutes.
func New(cfg *config.Config) (*Server, error) {
	i := do.New()
	do.ProvideValue(i, cfg)
	if err := provideServices(i, cfg); err != nil {
		return nil, err
	}
	// The content store is loaded eagerly so broken bundles fail at startup.
	if _, err := do.Invoke[*content.Store](i); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	mounts := app.NewModules(app.Dependencies{Config: cfg})
	for _, m := range mounts {
		if err := m.Module.Register(i); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Module.Name(), err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = do.MustInvoke[*rendering.UniversalRenderer](i)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger(slog.Default()))
	e.Use(middleware.Recover())

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = newMetricsRegistry()
		do.ProvideValue(i, reg)
		e.Use(metricsMiddleware(reg))
	}
	setupErrorHandling(e)

	return &Server{E: e, Cfg: cfg, Injector: i, Metrics: reg, mounts: mounts}, nil
}

// Shutdown stops the HTTP server, then the modules, then the injected services.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := s.E.Shutdown(ctx); err != nil {
		firstErr = err
	}
	for _, m := range s.mounts {
		if err := m.Module.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Module.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if report := s.Injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		slog.Error("Service shutdown failed", "error", report.Error())
		if firstErr == nil {
			firstErr = report
		}
	}
	return firstErr
}
