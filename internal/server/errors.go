package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/hlabs/hlabs-web/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. Errors raised with
// echo.NewHTTPError are answered as-is; anything else is logged with a stack
// trace and answered with a bare 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				logger.Debug("Request rejected", "status", he.Code, "error", he.Internal)
			}
			e.DefaultHTTPErrorHandler(he, c)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError), c)
	}
}
