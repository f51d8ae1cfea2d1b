package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hlabs/hlabs-web/internal/handlers"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the default logger into a buffer for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	logs := captureLogs(t)

	e := echo.New()
	setupErrorHandling(e)
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "deliberate", "internal errors must not leak to clients")

	out := logs.String()
	assert.Contains(t, out, "Internal Server Error (Unhandled)")
	assert.Contains(t, out, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, out, "stack_trace=")
	// A real stack trace runs through the debug package and back into this file.
	assert.Contains(t, out, "runtime/debug/stack.go")
	assert.Contains(t, out, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_HTTPErrorPassesThrough(t *testing.T) {
	logs := captureLogs(t)

	e := echo.New()
	setupErrorHandling(e)
	e.GET("/bad", func(c echo.Context) error {
		return handlers.BadRequest(errors.New("lang: unknown language"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeBadRequest, resp.Code)
	assert.Equal(t, "lang: unknown language", resp.Message)

	assert.Contains(t, logs.String(), "Request rejected")
	assert.NotContains(t, logs.String(), "stack_trace=")
}
