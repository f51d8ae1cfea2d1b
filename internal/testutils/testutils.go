package testutils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/rendering"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// ConfigForTests loads the .env.test file into the test's environment and
// returns the resulting config.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	// Find the project root by looking for go.mod.
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		t.Fatalf("invalid .env.test: %v", err)
	}
	return cfg
}

// NewInjector returns an injector holding the embedded content and a
// renderer, enough for a module to Register and Boot.
func NewInjector(t *testing.T, deps views.Deps) do.Injector {
	t.Helper()
	if deps.Store == nil {
		deps.Store = content.Default()
	}
	i := do.New()
	do.ProvideValue(i, deps)
	do.ProvideValue[rendering.Renderer](i, rendering.NewUniversalRenderer())
	return i
}

// HTMX marks req as an htmx request and returns it.
func HTMX(req *http.Request) *http.Request {
	req.Header.Set(rendering.HeaderHXRequest, "true")
	return req
}

// Serve runs req through e and returns the recorded response.
func Serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
