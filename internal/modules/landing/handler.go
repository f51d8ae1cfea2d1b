package landing

import (
	"net/http"

	"github.com/hlabs/hlabs-web/internal/handlers"
	"github.com/hlabs/hlabs-web/internal/middleware"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/ui"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/labstack/echo/v4"
)

// Handler serves the landing page and the root composer transitions.
type Handler struct {
	views    views.Deps
	renderer rendering.Renderer
}

// NewHandler creates a landing handler.
func NewHandler(deps views.Deps, r rendering.Renderer) *Handler {
	return &Handler{views: deps, renderer: r}
}

// deps binds the view dependencies to the request-scoped logger.
func (h *Handler) deps(c echo.Context) views.Deps {
	d := h.views
	d.Logger = middleware.FromContext(c.Request().Context())
	return d
}

// PageGet renders a fresh page. State is never restored from a previous
// visit, so this always shows the default language and the landing view.
func (h *Handler) PageGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, views.Page(h.deps(c), ui.NewRoot()))
}

// LanguagePost re-renders the app root in the posted language.
func (h *Handler) LanguagePost(c echo.Context) error {
	root, err := h.bindState(c)
	if err != nil {
		return err
	}
	middleware.FromContext(c.Request().Context()).Debug("language changed", "lang", root.Language, "view", root.View)
	return h.renderRoot(c, root)
}

// ViewPost swaps the app root between the landing page and the Terminal OS.
func (h *Handler) ViewPost(c echo.Context) error {
	root, err := h.bindState(c)
	if err != nil {
		return err
	}
	middleware.FromContext(c.Request().Context()).Debug("view changed", "lang", root.Language, "view", root.View)
	return h.renderRoot(c, root)
}

func (h *Handler) bindState(c echo.Context) (ui.Root, error) {
	var req handlers.StateRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return ui.Root{}, err
	}
	root, err := req.Root()
	if err != nil {
		return ui.Root{}, handlers.BadRequest(err)
	}
	return root, nil
}

// renderRoot answers htmx with the #app fragment and plain form posts with
// the whole document.
func (h *Handler) renderRoot(c echo.Context, root ui.Root) error {
	rendering.NoStore(c)
	if rendering.IsHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, views.App(h.deps(c), root))
	}
	return h.renderer.RenderPage(c, http.StatusOK, views.Page(h.deps(c), root))
}

// ContactGet redirects to the chat link.
func (h *Handler) ContactGet(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.views.ContactLink())
}

// ContentGet returns one language's bundle as JSON.
func (h *Handler) ContentGet(c echo.Context) error {
	var req handlers.LanguageRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	lang, err := req.Language()
	if err != nil {
		return handlers.NotFound(err)
	}
	c.Response().Header().Set("Content-Language", lang.Tag().String())
	return c.JSON(http.StatusOK, h.views.Store.Bundle(lang))
}
