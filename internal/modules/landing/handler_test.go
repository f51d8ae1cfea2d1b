package landing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/handlers"
	"github.com/hlabs/hlabs-web/internal/testutils"
	"github.com/hlabs/hlabs-web/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, deps Dependencies) *echo.Echo {
	t.Helper()
	i := testutils.NewInjector(t, views.Deps{ContactURL: "https://t.me/example"})

	m := New(deps)
	require.NoError(t, m.Register(i))

	e := echo.New()
	e.Validator = handlers.NewValidator()
	require.NoError(t, m.Boot(context.Background(), e.Group(""), i))
	return e
}

func post(e *echo.Echo, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req = testutils.HTMX(req)
	}
	return testutils.Serve(e, req)
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	return testutils.Serve(e, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestPageGet_Defaults(t *testing.T) {
	e := newTestServer(t, Dependencies{})
	rec := get(e, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lang="zh-CN"`)
	assert.Contains(t, body, "关于 H")
	assert.Contains(t, body, `data-view="landing"`)
}

func TestLanguagePost(t *testing.T) {
	e := newTestServer(t, Dependencies{})

	t.Run("htmx gets the app fragment", func(t *testing.T) {
		rec := post(e, "/ui/language", url.Values{"lang": {"en"}, "view": {"landing"}}, true)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<div id="app"`))
		assert.Contains(t, body, "About H")
		assert.NotContains(t, body, "关于 H")
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("plain form post gets the document", func(t *testing.T) {
		rec := post(e, "/ui/language", url.Values{"lang": {"en"}, "view": {"landing"}}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en"`)
	})

	t.Run("round trip restores chinese", func(t *testing.T) {
		first := post(e, "/ui/language", url.Values{"lang": {"cn"}, "view": {"landing"}}, true).Body.String()
		post(e, "/ui/language", url.Values{"lang": {"en"}, "view": {"landing"}}, true)
		again := post(e, "/ui/language", url.Values{"lang": {"cn"}, "view": {"landing"}}, true).Body.String()
		assert.Equal(t, first, again)
	})
}

func TestLanguagePost_RejectsInvalidState(t *testing.T) {
	e := newTestServer(t, Dependencies{})

	for _, form := range []url.Values{
		{"lang": {"fr"}, "view": {"landing"}},
		{"lang": {"en"}, "view": {"dashboard"}},
		{"lang": {"en"}},
	} {
		rec := post(e, "/ui/language", form, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "form %v", form)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, handlers.CodeInvalid, resp.Code)
	}
}

func TestViewPost(t *testing.T) {
	e := newTestServer(t, Dependencies{})

	rec := post(e, "/ui/view", url.Values{"lang": {"cn"}, "view": {"terminal"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-panel="dashboard"`)
	assert.NotContains(t, body, `id="about"`)

	rec = post(e, "/ui/view", url.Values{"lang": {"cn"}, "view": {"landing"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, `id="about"`)
	assert.NotContains(t, body, "data-panel=")
}

func TestContactGet(t *testing.T) {
	e := newTestServer(t, Dependencies{})
	rec := get(e, "/contact")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://t.me/example", rec.Header().Get(echo.HeaderLocation))
}

func TestContentGet(t *testing.T) {
	e := newTestServer(t, Dependencies{})

	rec := get(e, "/api/content/en")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))

	var b content.Bundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "About H", b.Nav[0].Label)

	rec = get(e, "/api/content/zh-CN")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "关于 H", b.Nav[0].Label)

	rec = get(e, "/api/content/xx")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatePosts_RateLimited(t *testing.T) {
	e := newTestServer(t, Dependencies{RateLimit: 1})
	form := url.Values{"lang": {"en"}, "view": {"landing"}}

	assert.Equal(t, http.StatusOK, post(e, "/ui/language", form, true).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(e, "/ui/view", form, true).Code)
	assert.Equal(t, http.StatusOK, get(e, "/").Code)
}
