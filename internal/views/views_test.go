package views

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/logos"
	"github.com/hlabs/hlabs-web/internal/terminal"
	"github.com/hlabs/hlabs-web/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

type stubCharts struct {
	err      error
	rendered []string
}

func (s *stubCharts) Render(spec charts.Spec) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.rendered = append(s.rendered, spec.ID)
	return "<p>" + spec.ID + "</p>", nil
}

type stubLogos map[string]logos.Status

func (s stubLogos) URL(domain string) string { return "https://logos.test/" + domain }

func (s stubLogos) Status(domain string) logos.Status { return s[domain] }

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func testDeps() Deps {
	return Deps{
		Store: content.Default(),
		Now:   func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) },
	}
}

func TestPage_Defaults(t *testing.T) {
	out := render(t, Page(testDeps(), ui.NewRoot()))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `lang="zh-CN"`)
	assert.Contains(t, out, `id="app"`)
	assert.Contains(t, out, `data-view="landing"`)
	assert.Contains(t, out, "关于 H")
	assert.NotContains(t, out, "data-panel=")
	assert.Contains(t, out, `data-scroll-offset="80"`)
	assert.Contains(t, out, `href="#top"`)
}

func TestApp_LanguageToggle(t *testing.T) {
	d := testDeps()
	root := ui.NewRoot()

	cn := render(t, App(d, root))
	assert.Contains(t, cn, "关于 H")
	assert.Contains(t, cn, `hx-vals="{&#34;lang&#34;:&#34;en&#34;,&#34;view&#34;:&#34;landing&#34;}"`)

	en := render(t, App(d, root.SetLanguage(root.Language.Toggle())))
	assert.Contains(t, en, "About H")
	assert.NotContains(t, en, "关于 H")
	assert.Contains(t, en, `data-html-lang="en"`)

	back := render(t, App(d, root.SetLanguage(content.English).SetLanguage(content.Chinese)))
	assert.Equal(t, cn, back)
}

func TestApp_SectionsAndAnchors(t *testing.T) {
	out := render(t, App(testDeps(), ui.NewRoot()))
	b := content.Default().Bundle(content.Chinese)
	for _, link := range b.Nav {
		id := strings.TrimPrefix(link.Href, "#")
		assert.Contains(t, out, `id="`+id+`"`, "anchor target for %s", link.Key)
	}
	for _, id := range []string{"hero", "competencies", "testimonials", "cta"} {
		assert.Contains(t, out, `id="`+id+`"`)
	}
}

func TestApp_TerminalReplacesLanding(t *testing.T) {
	root := ui.NewRoot().SetLanguage(content.English).SetViewMode(ui.ViewTerminal)
	out := render(t, App(testDeps(), root))

	assert.Contains(t, out, `data-view="terminal"`)
	assert.Equal(t, 1, strings.Count(out, "data-panel="))
	assert.Contains(t, out, `data-panel="dashboard"`)
	assert.Contains(t, out, "H-LABS INTEGRATED OS v2.0")
	assert.Contains(t, out, "返回官網")
	assert.Contains(t, out, "@GROWTH_ARCHITECT")
	assert.NotContains(t, out, `id="about"`)
	assert.NotContains(t, out, "About H")
	assert.Contains(t, out, `hx-vals="{&#34;lang&#34;:&#34;en&#34;,&#34;view&#34;:&#34;landing&#34;}"`)

	for _, p := range terminal.Pages() {
		assert.Contains(t, out, `hx-get="`+PanelPath(p)+`"`)
	}
}

func TestApp_EveryViewModeRendersOneSubtree(t *testing.T) {
	d := testDeps()
	for _, tt := range []struct {
		view ui.ViewMode
		want string
		not  string
	}{
		{view: ui.ViewLanding, want: `id="top"`, not: `id="terminal"`},
		{view: ui.ViewTerminal, want: `id="terminal"`, not: `id="top"`},
	} {
		t.Run(tt.view.String(), func(t *testing.T) {
			out := render(t, App(d, ui.NewRoot().SetViewMode(tt.view)))
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, tt.not)
		})
	}
}

func TestApp_BackToLandingStartsFresh(t *testing.T) {
	d := testDeps()
	root := ui.NewRoot()

	landing := render(t, App(d, root))
	again := render(t, App(d, root.SetViewMode(ui.ViewTerminal).SetViewMode(ui.ViewLanding)))
	assert.Equal(t, landing, again)

	reopened := render(t, App(d, root.SetViewMode(ui.ViewTerminal)))
	assert.Contains(t, reopened, `data-panel="dashboard"`)
}

func TestPanelFragment(t *testing.T) {
	term := ui.NewTerminal().SetActivePage(terminal.Assets)
	out := render(t, PanelFragment(testDeps(), term))

	assert.Equal(t, 1, strings.Count(out, "data-panel="))
	assert.Contains(t, out, `data-panel="assets"`)
	for _, row := range []string{"CORNERSTONE", "ALPHA", "HEDGE"} {
		assert.Contains(t, out, row)
	}
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	assert.Contains(t, out, `data-page="assets" aria-current="page"`)
}

func TestLogo(t *testing.T) {
	p := content.Partner{Name: "Ondo Finance", Domain: "ondo.finance"}

	tests := []struct {
		name    string
		status  logos.Status
		wantImg bool
	}{
		{name: "unknown", status: logos.StatusUnknown, wantImg: true},
		{name: "available", status: logos.StatusAvailable, wantImg: true},
		{name: "unavailable", status: logos.StatusUnavailable, wantImg: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, Logo(p, "https://logos.test/ondo.finance", tt.status))
			assert.Contains(t, out, `<span class="partner-name"`)
			assert.Contains(t, out, ">Ondo Finance</span>")
			if tt.wantImg {
				assert.Contains(t, out, `<img src="https://logos.test/ondo.finance"`)
				assert.Contains(t, out, `onerror="`+logoFallbackScript+`"`)
				assert.Contains(t, out, `alt="Ondo Finance"`)
				assert.Contains(t, logoFallbackScript, "this.remove()", "a broken logo leaves only the name")
				assert.NotContains(t, logoFallbackScript, "this.hidden=true")
				assert.Contains(t, out, `<span class="partner-name" hidden>Ondo Finance</span>`)
			} else {
				assert.NotContains(t, out, "<img")
			}
		})
	}
}

func TestLanding_PartnerMarquee(t *testing.T) {
	d := testDeps()
	d.Logos = stubLogos{"binance.com": logos.StatusUnavailable}
	out := render(t, Landing(d, ui.NewRoot()))

	assert.NotContains(t, out, `src="https://logos.test/binance.com"`)
	assert.Equal(t, 2, strings.Count(out, ">Binance</span>"), "looped twice as text")
	assert.Equal(t, 2, strings.Count(out, `src="https://logos.test/ondo.finance"`))
	assert.Equal(t, 2, strings.Count(out, `src="https://logos.test/coindesk.com"`))
	assert.Equal(t, 2, strings.Count(out, `class="marquee marquee-left"`))
	assert.Equal(t, 1, strings.Count(out, `class="marquee marquee-right"`))
}

func TestLanding_ContactLinks(t *testing.T) {
	d := testDeps()
	d.ContactURL = "https://t.me/example"
	out := render(t, Landing(d, ui.NewRoot()))

	assert.Contains(t, out, `href="https://t.me/example" target="_blank"`)
	assert.NotContains(t, out, DefaultContactURL)
}

func TestLanding_Charts(t *testing.T) {
	d := testDeps()
	stub := &stubCharts{}
	d.Charts = stub
	out := render(t, Landing(d, ui.NewRoot()))

	assert.ElementsMatch(t, []string{"media-traffic", "kol-growth", "brand-compare", "fund-allocation"}, stub.rendered)
	assert.Contains(t, out, `id="chart-fund-allocation"`)
	assert.Contains(t, out, `data-allocation="主流资产 (BTC/ETH/RWA)"`)
}

func TestLanding_ChartFailureKeepsCopy(t *testing.T) {
	d := testDeps()
	d.Charts = &stubCharts{err: errors.New("boom")}
	out := render(t, Landing(d, ui.NewRoot()))

	assert.NotContains(t, out, "chart-frame")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, `id="capital"`)
}

func TestAllocationChart(t *testing.T) {
	fund := content.Default().Bundle(content.English).Capital.Fund
	spec := AllocationChart(fund)

	require.Len(t, spec.Slices, len(fund.Allocation))
	var total float64
	for i, s := range spec.Slices {
		assert.Equal(t, fund.Allocation[i].Name, s.Name)
		assert.Equal(t, fund.Allocation[i].Color, s.Color)
		total += s.Value
	}
	assert.Equal(t, float64(100), total)
	assert.Equal(t, charts.KindPie, spec.Kind)
}
