package terminal

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Sentiment is the community mood attached to a trend.
type Sentiment string

const (
	Bullish Sentiment = "BULLISH"
	Neutral Sentiment = "NEUTRAL"
)

func (s Sentiment) color() string {
	if s == Bullish {
		return neon
	}
	return "#fbbf24"
}

// Trend is one tracked hashtag on X.
type Trend struct {
	Tag       string
	KOLs      int
	Volume    string
	Sentiment Sentiment
}

// AlphaFeed is a summarized Telegram channel.
type AlphaFeed struct {
	Source  string
	Summary string
	Color   string
}

// IntelligencePanel tracks social trends and channel summaries.
type IntelligencePanel struct {
	Trends []Trend
	Feeds  []AlphaFeed
}

func newIntelligencePanel() *IntelligencePanel {
	return &IntelligencePanel{
		Trends: []Trend{
			{Tag: "#NexusL2", KOLs: 82, Volume: "125.4K", Sentiment: Bullish},
			{Tag: "#RWA_Summer", KOLs: 45, Volume: "84.2K", Sentiment: Neutral},
			{Tag: "#BondingCurve", KOLs: 29, Volume: "62.1K", Sentiment: Bullish},
		},
		Feeds: []AlphaFeed{
			{Source: "ALPHA WHALE ELITE", Summary: "大户们正在讨论 Nexus L2 的活动/激励，情绪很强。", Color: neon},
			{Source: "DEV CORE LAB", Summary: "关于 SwapX 路由算法优化与反夹手机制的技术讨论占白皮书。", Color: "#8b5cf6"},
		},
	}
}

func (*IntelligencePanel) Page() Page { return Intelligence }
func (*IntelligencePanel) sealed()    {}

func (in *IntelligencePanel) Render(Env) cmp.Node {
	return panelRoot(Intelligence,
		pageHeader("GROWTH INTELLIGENCE / 情报追踪", "实时追踪 Web3 趋势与社区洞察", nil),
		g.Div(
			g.Class("grid lg:grid-cols-2 gap-8"),
			g.Div(
				g.Class("bg-[#1a1a1a] border border-gray-800 rounded-xl p-6"),
				g.H3(g.Class("text-lg font-bold text-white uppercase tracking-wide mb-6"), cmp.Text("X TREND RADAR")),
				g.Div(
					g.Class("space-y-4"),
					cmp.Map(in.Trends, func(t Trend) cmp.Node {
						return g.Div(
							g.Class("trend bg-black/40 border border-gray-800 rounded-lg p-4"),
							g.Div(
								g.Class("flex items-center justify-between mb-2"),
								g.H4(g.Class("text-white font-bold text-lg"), cmp.Text(t.Tag)),
								g.Span(g.Class("text-xs font-bold px-2 py-1 rounded"), colorStyle(t.Sentiment.color()), cmp.Text(string(t.Sentiment))),
							),
							g.Div(
								g.Class("flex items-center justify-between text-sm"),
								g.Span(g.Class("text-gray-500 font-mono"), cmp.Textf("KOLs: %d", t.KOLs)),
								g.Span(g.Class("font-bold"), colorStyle(t.Sentiment.color()), cmp.Text(t.Volume)),
							),
						)
					}),
				),
			),
			g.Div(
				g.Class("bg-[#1a1a1a] border border-gray-800 rounded-xl p-6"),
				g.H3(g.Class("text-lg font-bold text-white uppercase tracking-wide mb-6"), cmp.Text("TG ALPHA SUMMARIZER")),
				g.Div(
					g.Class("space-y-6"),
					cmp.Map(in.Feeds, func(f AlphaFeed) cmp.Node {
						return g.Div(
							g.Class("border-l-4 pl-4 py-2"),
							g.Style("border-color: "+f.Color),
							g.Div(g.Class("text-xs font-bold uppercase mb-2 tracking-wider"), colorStyle(f.Color), cmp.Text(f.Source)),
							g.P(g.Class("text-sm text-gray-300 leading-relaxed"), cmp.Text(f.Summary)),
						)
					}),
				),
			),
		),
	)
}
