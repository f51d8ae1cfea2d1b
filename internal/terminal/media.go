package terminal

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// MediaCategory is one outlet group of the PR hub.
type MediaCategory struct {
	Title        string
	MonthlyReach string
	Outlets      []string
}

// MediaPanel shows the press distribution matrix.
type MediaPanel struct {
	Categories []MediaCategory
}

func newMediaPanel() *MediaPanel {
	return &MediaPanel{
		Categories: []MediaCategory{
			{Title: "GLOBAL WEB3", MonthlyReach: "45K+", Outlets: []string{"CoinDesk", "Cointelegraph", "The Block", "Decrypt"}},
			{Title: "华语核心", MonthlyReach: "28K+", Outlets: []string{"Odaily 星球日报", "Foresight News", "PANews", "金色财经"}},
			{Title: "MAINSTREAM", MonthlyReach: "180K+", Outlets: []string{"Bloomberg", "Forbes", "TechCrunch", "Yahoo Finance"}},
		},
	}
}

func (*MediaPanel) Page() Page { return Media }
func (*MediaPanel) sealed()    {}

func (m *MediaPanel) Render(Env) cmp.Node {
	return panelRoot(Media,
		pageHeader("GLOBAL PR HUB / 宣发矩阵", "",
			g.Button(g.Type("button"), g.Class("text-xs text-[#99E5F8] border border-[#99E5F8] px-4 py-2 rounded"), cmp.Text("申请稿发全案")),
		),
		g.Div(
			g.Class("grid md:grid-cols-3 gap-8"),
			cmp.Map(m.Categories, func(c MediaCategory) cmp.Node {
				return g.Div(
					g.Class("media-category bg-[#1a1a1a] border border-gray-800 rounded-xl overflow-hidden"),
					g.Div(
						g.Class("p-8 text-center border-b border-gray-800 bg-gray-900/50"),
						g.H3(g.Class("text-xl font-bold text-white mb-2"), cmp.Text(c.Title)),
						g.P(g.Class("text-[10px] font-mono text-gray-400 tracking-widest"), cmp.Textf("%s MONTHLY REACH", c.MonthlyReach)),
					),
					g.Ul(
						g.Class("p-6 space-y-4"),
						cmp.Map(c.Outlets, func(o string) cmp.Node {
							return g.Li(g.Class("flex items-center gap-3 text-sm text-gray-300"), cmp.Text(o))
						}),
					),
				)
			}),
		),
	)
}
