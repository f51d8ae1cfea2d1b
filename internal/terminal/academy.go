package terminal

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Course is one lesson card of the academy curriculum.
type Course struct {
	Title    string
	Duration string
	Points   int
	Summary  string
}

// Stage groups courses of one curriculum level.
type Stage struct {
	Number  int
	Title   string
	Tagline string
	Accent  string
	Courses []Course
}

// AcademyPanel lists the Web2 to Web3 curriculum.
type AcademyPanel struct {
	Progress float64
	Stages   []Stage
}

func newAcademyPanel() *AcademyPanel {
	return &AcademyPanel{
		Progress: 24.5,
		Stages: []Stage{
			{
				Number:  1,
				Title:   "资产安全与入门",
				Tagline: "核安第一課程",
				Accent:  neon,
				Courses: []Course{
					{Title: "三分钟创建你的首个 Web3 钱包", Duration: "2M", Points: 56, Summary: "安全配置第一步骤..."},
					{Title: "H-Shield 安全课程: 防钓鱼攻破", Duration: "3M", Points: 88, Summary: "安全培训课程..."},
					{Title: "Gas Fee 到底是什么?", Duration: "2M", Points: 48, Summary: "理解区块链交易成本..."},
				},
			},
			{
				Number:  2,
				Title:   "交互与收益增长",
				Tagline: "从基层到导师",
				Accent:  "#eab308",
				Courses: []Course{
					{Title: "DEX 与 SwapX: 首次链上交易", Duration: "5M", Points: 120},
					{Title: "Staking 与质押: 资产自动增值", Duration: "4M", Points: 100},
				},
			},
		},
	}
}

func (*AcademyPanel) Page() Page { return Academy }
func (*AcademyPanel) sealed()    {}

func (a *AcademyPanel) Render(env Env) cmp.Node {
	p := env.printer()
	return panelRoot(Academy,
		pageHeader("H-ACADEMY CURRICULUM", "WEB2 → WEB3 全套後駭培養路徑",
			g.Div(
				g.Class("text-right"),
				g.Div(g.Class("text-sm font-mono text-gray-400 mb-1"), cmp.Text("当前学习进度")),
				g.Div(g.Class("text-xl font-bold"), colorStyle(neon), cmp.Text(p.Sprintf("%.1f%%", a.Progress))),
			),
		),
		cmp.Map(a.Stages, func(s Stage) cmp.Node {
			return g.Div(
				g.Class("academy-stage"),
				g.Div(
					g.Class("flex items-center gap-4 mb-6"),
					g.Span(g.Class("bg-gray-800 text-white px-3 py-1 text-xs font-bold rounded"), cmp.Textf("STAGE %02d", s.Number)),
					g.H3(g.Class("text-xl font-bold text-white"), cmp.Text(s.Title)),
					g.Span(g.Class("text-sm font-mono"), colorStyle(s.Accent), cmp.Text(s.Tagline)),
				),
				g.Div(
					g.Class("grid md:grid-cols-3 gap-6"),
					cmp.Map(s.Courses, func(c Course) cmp.Node { return courseCard(c, s.Accent) }),
				),
			)
		}),
	)
}

func courseCard(c Course, accent string) cmp.Node {
	return g.Div(
		g.Class("course bg-[#1a1a1a] border border-gray-800 p-6 rounded-xl"),
		g.Div(
			g.Class("flex justify-between items-start mb-4"),
			g.Span(g.Class("text-xs bg-gray-900 text-gray-400 px-2 py-1 rounded"), cmp.Text(c.Duration)),
			g.Span(g.Class("text-xs font-bold"), colorStyle(accent), cmp.Textf("+%d PTS", c.Points)),
		),
		g.H4(g.Class("text-lg font-bold text-white mb-2"), cmp.Text(c.Title)),
		cmp.If(c.Summary != "", g.P(g.Class("text-sm text-gray-500 mb-6"), cmp.Text(c.Summary))),
		g.Button(g.Type("button"), g.Class("w-full border py-2 text-xs font-bold uppercase rounded-sm"), cmp.Text("START")),
	)
}
