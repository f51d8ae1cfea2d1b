package terminal

import (
	"github.com/hlabs/hlabs-web/internal/charts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AllocationRow is one sleeve of the 80/10/10 strategy.
type AllocationRow struct {
	Name    string
	Percent int
	Color   string
}

// Figure is a labeled headline number.
type Figure struct {
	Label string
	Value string
	Color string
}

// Principle is one entry of the investment philosophy.
type Principle struct {
	Title string
	Body  string
}

// AssetsPanel is the asset-management engine view.
type AssetsPanel struct {
	Allocation []AllocationRow
	Figures    []Figure
	Principles []Principle
}

func newAssetsPanel() *AssetsPanel {
	return &AssetsPanel{
		Allocation: []AllocationRow{
			{Name: "CORNERSTONE", Percent: 80, Color: neon},
			{Name: "ALPHA", Percent: 10, Color: "#3b82f6"},
			{Name: "HEDGE", Percent: 10, Color: "#6b7280"},
		},
		Figures: []Figure{
			{Label: "TOTAL TVL", Value: "$125.4M", Color: "white"},
			{Label: "NET ROI (YTD)", Value: "+18.42%", Color: neon},
			{Label: "SHARPE", Value: "2.41", Color: "white"},
			{Label: "PHYSICAL BACKING", Value: "100%", Color: "#3b82f6"},
		},
		Principles: []Principle{
			{Title: "物理底層 / PHYSICAL HUB", Body: "利用基础资产如RWA (RWA 协议)、黄金 Web3 存产证..."},
			{Title: "技术57/ TECH CONTROL", Body: "通过 AI-Tech 交互核心检验..."},
			{Title: "流量回环 / GROWTH LOOP", Body: "VOL 协同牛市动力及合规量直接转注..."},
		},
	}
}

func (*AssetsPanel) Page() Page { return Assets }
func (*AssetsPanel) sealed()    {}

// ChartSpec returns the horizontal allocation bar for this panel.
func (a *AssetsPanel) ChartSpec() charts.Spec {
	spec := charts.Spec{ID: "terminal-allocation", Kind: charts.KindHBar, Height: "300px"}
	for _, row := range a.Allocation {
		spec.Slices = append(spec.Slices, charts.Slice{Name: row.Name, Value: float64(row.Percent), Color: row.Color})
	}
	return spec
}

func (a *AssetsPanel) Render(env Env) cmp.Node {
	return panelRoot(Assets,
		pageHeader("ALPHA STRATEGY / 资管引擎", "基于智慧信用与技术驱动的冲防榜揭",
			g.Span(g.Class("text-xs font-mono text-gray-400 border border-gray-700 px-3 py-1 rounded"), cmp.Text("STRATEGY 80/10/10 DYNAMIC")),
		),
		g.Div(
			g.Class("grid lg:grid-cols-3 gap-8"),
			g.Div(
				g.Class("lg:col-span-2 bg-[#1a1a1a] border border-gray-800 rounded-xl p-8"),
				g.Div(
					g.Class("grid grid-cols-2 md:grid-cols-4 gap-6 mb-8 border-b border-gray-800 pb-8"),
					cmp.Map(a.Figures, func(f Figure) cmp.Node {
						return g.Div(
							g.Div(g.Class("text-xs text-gray-500 font-mono mb-1"), cmp.Text(f.Label)),
							g.Div(g.Class("text-2xl font-bold"), colorStyle(f.Color), cmp.Text(f.Value)),
						)
					}),
				),
				env.chart(a.ChartSpec()),
				g.Table(
					g.Class("allocation-table w-full text-sm"),
					g.TBody(
						cmp.Map(a.Allocation, func(row AllocationRow) cmp.Node {
							return g.Tr(
								g.Data("allocation", row.Name),
								g.Td(g.Class("font-bold text-white"), cmp.Text(row.Name)),
								g.Td(g.Class("text-right font-mono"), colorStyle(row.Color), cmp.Textf("%d%% ALLOCATION", row.Percent)),
							)
						}),
					),
				),
			),
			g.Div(
				g.Class("bg-gray-100 text-black rounded-xl p-8 flex flex-col"),
				g.H3(g.Class("font-bold tracking-tight mb-8"), cmp.Text("INVESTMENT PHILOSOPHY")),
				g.Div(
					g.Class("space-y-6 flex-grow"),
					cmp.Map(a.Principles, func(p Principle) cmp.Node {
						return g.Div(
							g.H4(g.Class("font-bold text-sm mb-1"), cmp.Text(p.Title)),
							g.P(g.Class("text-xs text-gray-600 leading-relaxed"), cmp.Text(p.Body)),
						)
					}),
				),
				g.Button(g.Type("button"), g.Class("w-full mt-8 py-3 font-bold text-sm rounded"), g.Style("background-color: "+neon), cmp.Text("查看資产透明报告")),
			),
		),
	)
}
