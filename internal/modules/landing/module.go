package landing

import (
	"context"
	"log/slog"

	"github.com/hlabs/hlabs-web/internal/middleware"
	"github.com/hlabs/hlabs-web/internal/module"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// LandingModule serves the marketing page, the language and view toggles,
// the contact redirect and the read-only content API.
type LandingModule struct {
	module.BaseModule
	rateLimit float64
}

// Dependencies holds the settings the module needs outside the injector.
type Dependencies struct {
	// RateLimit caps state posts per client in requests per second; zero
	// disables limiting.
	RateLimit float64
}

// New creates a new instance of the LandingModule.
func New(deps Dependencies) *LandingModule {
	return &LandingModule{rateLimit: deps.RateLimit}
}

// Name returns the unique name for the module.
func (m *LandingModule) Name() string {
	return "landing"
}

// Register provides the landing Handler.
func (m *LandingModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		deps, err := do.Invoke[views.Deps](i)
		if err != nil {
			return nil, err
		}
		renderer, err := do.Invoke[rendering.Renderer](i)
		if err != nil {
			return nil, err
		}
		return NewHandler(deps, renderer), nil
	})
	return nil
}

// Boot mounts the routes. The server mounts this module at the site root.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting LandingModule: Setting up routes...")
	handler, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	limiter := middleware.RateLimiter(m.rateLimit)

	g.GET("/", handler.PageGet)
	g.POST("/ui/language", handler.LanguagePost, limiter)
	g.POST("/ui/view", handler.ViewPost, limiter)
	g.GET("/contact", handler.ContactGet)
	g.GET("/api/content/:lang", handler.ContentGet)
	return nil
}
