package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestPages_SidebarOrder(t *testing.T) {
	want := []string{"dashboard", "academy", "bounty", "delivery", "media", "assets", "intelligence"}
	pages := Pages()
	require.Len(t, pages, len(want))
	for i, p := range pages {
		assert.Equal(t, want[i], p.String())
		assert.NotEmpty(t, p.Label())
	}
	assert.Equal(t, "资管引擎", Assets.Label())
	assert.Equal(t, Dashboard, DefaultPage)
}

func TestParsePage(t *testing.T) {
	for _, p := range Pages() {
		got, err := ParsePage(strings.ToUpper(p.String()))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePage("settings")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestPanelFor_RendersExactlyOnePanel(t *testing.T) {
	for _, p := range Pages() {
		t.Run(p.String(), func(t *testing.T) {
			panel := PanelFor(p)
			assert.Equal(t, p, panel.Page())

			out := render(t, panel.Render(Env{}))
			assert.Equal(t, 1, strings.Count(out, `data-panel=`), "panel markers")
			assert.Contains(t, out, `data-panel="`+p.String()+`"`)
		})
	}
}

func TestPanelFor_ReturnsFreshData(t *testing.T) {
	first := PanelFor(Dashboard).(*DashboardPanel)
	first.Logs = first.Logs[:1]

	second := PanelFor(Dashboard).(*DashboardPanel)
	assert.Len(t, second.Logs, 7)
}

func TestAssetsPanel_AllocationTable(t *testing.T) {
	out := render(t, PanelFor(Assets).Render(Env{}))

	for _, row := range []struct {
		name    string
		percent string
	}{
		{"CORNERSTONE", "80% ALLOCATION"},
		{"ALPHA", "10% ALLOCATION"},
		{"HEDGE", "10% ALLOCATION"},
	} {
		assert.Contains(t, out, `data-allocation="`+row.name+`"`)
		assert.Contains(t, out, row.percent)
	}
	assert.NotContains(t, out, "<iframe", "charts are disabled without a renderer")
}

type stubCharts struct {
	specs []charts.Spec
	err   error
}

func (s *stubCharts) Render(spec charts.Spec) (string, error) {
	s.specs = append(s.specs, spec)
	if s.err != nil {
		return "", s.err
	}
	return "<html>chart</html>", nil
}

func TestAssetsPanel_EmbedsChart(t *testing.T) {
	stub := &stubCharts{}
	out := render(t, PanelFor(Assets).Render(Env{Charts: stub}))

	require.Len(t, stub.specs, 1)
	assert.Equal(t, charts.KindHBar, stub.specs[0].Kind)
	assert.Len(t, stub.specs[0].Slices, 3)
	assert.Contains(t, out, `<iframe id="chart-terminal-allocation"`)
}

func TestAssetsPanel_ChartFailureKeepsTable(t *testing.T) {
	stub := &stubCharts{err: errors.New("boom")}
	out := render(t, PanelFor(Assets).Render(Env{Charts: stub}))

	assert.NotContains(t, out, "<iframe")
	assert.Contains(t, out, "CORNERSTONE")
}

func TestDashboardPanel_FormatsNumbersAndClock(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 5, 7, 0, time.UTC)
	out := render(t, PanelFor(Dashboard).Render(Env{Now: now}))

	assert.Contains(t, out, "12,450")
	assert.Contains(t, out, "+1,200 今日连续积分")
	assert.Contains(t, out, "[09:05:07]")
	assert.Equal(t, 7, strings.Count(out, `class="flex gap-3 log-line"`))
}

func TestBountyPanel_Pool(t *testing.T) {
	out := render(t, PanelFor(Bounty).Render(Env{}))
	assert.Contains(t, out, "$1,240,500")
	assert.Contains(t, out, "CLAIMED: 12/50")
}
