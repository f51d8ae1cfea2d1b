package terminalos

import (
	"context"
	"log/slog"

	"github.com/hlabs/hlabs-web/internal/module"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// TerminalModule serves the Terminal OS panel fragments.
type TerminalModule struct {
	module.BaseModule
}

// New creates a new instance of the TerminalModule.
func New() *TerminalModule {
	return &TerminalModule{}
}

// Name returns the unique name for the module.
func (m *TerminalModule) Name() string {
	return "terminal"
}

// Register provides the Terminal OS Handler.
func (m *TerminalModule) Register(i do.Injector) error {
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

// Boot mounts the panel route. The server mounts this module under /terminal.
func (m *TerminalModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting TerminalModule: Setting up routes...")
	handler, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	g.GET("/panels/:page", handler.PanelGet)
	return nil
}
