package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	ctx := context.Background()

	out, err := r.RenderComponent(ctx, g.P(g.Class("x"), g.Span()))
	require.NoError(t, err)
	assert.Equal(t, `<p class="x"><span></span></p>`, string(out))

	tc := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<b>templ</b>")
		return err
	})
	out, err = r.RenderComponent(ctx, tc)
	require.NoError(t, err)
	assert.Equal(t, "<b>templ</b>", string(out))

	_, err = r.RenderComponent(ctx, 42)
	assert.ErrorContains(t, err, "unsupported component type: int")
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewUniversalRenderer().RenderPage(c, http.StatusAccepted, g.Div(g.ID("app"))))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `<div id="app"></div>`, rec.Body.String())
}

func TestRenderPage_FailureWritesNothing(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := NewUniversalRenderer().RenderPage(c, http.StatusOK, struct{}{})
	require.Error(t, err)
	assert.False(t, c.Response().Committed)
}

func TestEchoRenderer(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", g.Span(cmp.Text("hi")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<span>hi</span>", rec.Body.String())
}

func TestIsHTMX(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.False(t, IsHTMX(c))

	req.Header.Set(HeaderHXRequest, "true")
	assert.True(t, IsHTMX(c))
}
