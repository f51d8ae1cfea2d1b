package terminalos

import (
	"net/http"

	"github.com/hlabs/hlabs-web/internal/handlers"
	"github.com/hlabs/hlabs-web/internal/middleware"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/labstack/echo/v4"
)

// Handler serves Terminal OS panel fragments.
type Handler struct {
	views    views.Deps
	renderer rendering.Renderer
}

// NewHandler creates a Terminal OS handler.
func NewHandler(deps views.Deps, r rendering.Renderer) *Handler {
	return &Handler{views: deps, renderer: r}
}

// PanelGet renders the selected panel and an out-of-band sidebar. Every
// request builds a new panel, so nothing carries over between tabs.
func (h *Handler) PanelGet(c echo.Context) error {
	var req handlers.PanelRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	term, err := req.Terminal()
	if err != nil {
		return handlers.BadRequest(err)
	}

	logger := middleware.FromContext(c.Request().Context())
	logger.Debug("terminal page selected", "page", term.Active)

	d := h.views
	d.Logger = logger
	rendering.NoStore(c)
	return h.renderer.RenderPage(c, http.StatusOK, views.PanelFragment(d, term))
}
