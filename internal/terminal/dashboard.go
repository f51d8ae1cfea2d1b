package terminal

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// LogLevel classifies a growth feed entry.
type LogLevel string

const (
	LogInfo    LogLevel = "INFO"
	LogSuccess LogLevel = "SUCCESS"
	LogWarn    LogLevel = "WARN"
)

func (l LogLevel) color() string {
	switch l {
	case LogSuccess:
		return neon
	case LogWarn:
		return "#fbbf24"
	default:
		return "gray"
	}
}

// LogEntry is one line of the simulated growth feed.
type LogEntry struct {
	Time    string
	Level   LogLevel
	Message string
}

// StatCard is a headline figure on the dashboard.
type StatCard struct {
	Label string
	Value string
	Note  string
	// Progress is a 0..100 bar width; zero hides the bar.
	Progress int
}

// DashboardPanel shows the ecosystem overview and the growth feed.
type DashboardPanel struct {
	Points      int
	PointsToday int
	Cards       []StatCard
	Logs        []LogEntry
}

func newDashboardPanel() *DashboardPanel {
	return &DashboardPanel{
		Points:      12450,
		PointsToday: 1200,
		Cards: []StatCard{
			{Label: "WEB3 等级勋章", Value: "Lv.2", Note: "140/200 PTS TO UPGRADE", Progress: 70},
			{Label: "RWA 资产组合收益", Value: "+$420", Note: "金叉的K线操盘开仓建议"},
		},
		Logs: []LogEntry{
			{Time: "14:20:03", Level: LogSuccess, Message: "理财 0h-shield 安全确认..."},
			{Time: "14:20:03", Level: LogInfo, Message: "H-Alpha 盈利預測模型更新"},
			{Time: "14:19:55", Level: LogWarn, Message: "XOne 跨链桥节点同步延迟 12ms"},
			{Time: "14:18:22", Level: LogInfo, Message: "SwapX 流动性池注入 $500,000"},
			{Time: "14:17:10", Level: LogSuccess, Message: "NEXUS 赏金任务发放完毕"},
			{Time: "14:15:00", Level: LogInfo, Message: "系统自检完成: 所有模块正常"},
			{Time: "14:14:45", Level: LogWarn, Message: "检测到高频访问 IP (Rate Limit)"},
		},
	}
}

func (*DashboardPanel) Page() Page { return Dashboard }
func (*DashboardPanel) sealed()    {}

func (d *DashboardPanel) Render(env Env) cmp.Node {
	p := env.printer()
	points := StatCard{
		Label: "H-POINTS 生态积分",
		Value: p.Sprintf("%d", d.Points),
		Note:  p.Sprintf("+%d 今日连续积分", d.PointsToday),
	}
	cards := append([]StatCard{points}, d.Cards...)

	return panelRoot(Dashboard,
		g.Div(
			g.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
			cmp.Map(cards, statCard),
		),
		g.Div(
			g.Class("bg-black border border-gray-800 rounded-xl overflow-hidden flex flex-col"),
			g.Div(
				g.Class("bg-gray-900 px-4 py-2 border-b border-gray-800"),
				g.Span(g.Class("text-xs font-mono text-gray-400 uppercase"), cmp.Text("SYSTEM GROWTH FEED / 实时日志")),
			),
			g.Div(
				g.Class("p-4 font-mono text-sm space-y-2"),
				g.ID("growth-feed"),
				cmp.Map(d.Logs, logLine),
				// Rendered once per fragment; the clock does not tick server-side.
				g.Div(
					g.Class("flex gap-3 animate-pulse"),
					g.Span(g.Class("text-gray-600"), cmp.Textf("[%s]", env.now().Format("15:04:05"))),
					g.Span(colorStyle(neon), cmp.Text("_")),
				),
			),
		),
	)
}

func statCard(c StatCard) cmp.Node {
	return g.Div(
		g.Class("bg-[#1f1f1f] border border-gray-800 p-6 rounded-xl"),
		g.Div(g.Class("text-gray-500 text-xs font-mono uppercase mb-2"), cmp.Text(c.Label)),
		g.Div(g.Class("text-4xl font-bold text-white mb-2"), cmp.Text(c.Value)),
		cmp.If(c.Progress > 0,
			g.Div(
				g.Class("w-full bg-gray-800 h-1.5 rounded-full overflow-hidden"),
				g.Div(g.Class("h-full bg-[#99E5F8]"), g.Style(fmt.Sprintf("width: %d%%", c.Progress))),
			),
		),
		g.Div(g.Class("text-xs font-mono mt-2"), colorStyle(neon), cmp.Text(c.Note)),
	)
}

func logLine(l LogEntry) cmp.Node {
	msgColor := "white"
	if l.Level != LogInfo {
		msgColor = l.Level.color()
	}
	return g.Div(
		g.Class("flex gap-3 log-line"),
		g.Data("level", string(l.Level)),
		g.Span(g.Class("text-gray-600 shrink-0"), cmp.Textf("[%s]", l.Time)),
		g.Span(g.Class("uppercase shrink-0 w-16"), colorStyle(l.Level.color()), cmp.Textf("%s:", l.Level)),
		g.Span(colorStyle(msgColor), cmp.Text(l.Message)),
	)
}
