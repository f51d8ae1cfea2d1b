package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/logos"
	"github.com/samber/do/v2"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is done or an interrupt or terminate
// signal arrives, then shuts it down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.Cfg.LogoProbe {
		go s.warmLogos(ctx)
	}

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case runErr = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// warmLogos probes every partner domain so the first page render can drop
// logos that are known to be unavailable.
func (s *Server) warmLogos(ctx context.Context) {
	store := do.MustInvoke[*content.Store](s.Injector)
	resolver := do.MustInvoke[*logos.Resolver](s.Injector)

	var domains []string
	for _, p := range slices.Concat(store.StrategicPartners(), store.MediaPartners()) {
		domains = append(domains, p.Domain)
	}
	start := time.Now()
	if err := resolver.Warm(ctx, domains); err != nil {
		slog.Warn("Logo warm-up interrupted", "error", err)
		return
	}
	slog.Info("Logo warm-up finished", "domains", len(domains), "took", time.Since(start))
}
