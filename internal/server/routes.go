package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hlabs/hlabs-web/internal/handlers"
	"github.com/hlabs/hlabs-web/web"
)

// RegisterRoutes sets up the shared routes and boots every module under its
// mount prefix.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.GET("/health", handlers.HealthGet)
	s.E.StaticFS("/static", web.Static())
	s.registerDiagnostics()

	for _, m := range s.mounts {
		slog.Debug("Booting module", "module", m.Module.Name(), "prefix", m.Prefix)
		if err := m.Module.Boot(ctx, s.E.Group(m.Prefix), s.Injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Module.Name(), err)
		}
	}
	return nil
}
