package terminal

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// BountyTask is one open creator task in the bounty hall.
type BountyTask struct {
	Platform string
	Title    string
	MinLevel string
	Reward   string
	Claimed  int
	Slots    int
}

// BountyPanel lists creator tasks and the reward pool.
type BountyPanel struct {
	Pool  int
	Tasks []BountyTask
}

func newBountyPanel() *BountyPanel {
	return &BountyPanel{
		Pool: 1240500,
		Tasks: []BountyTask{
			{Platform: "TikTok", Title: "NEXUS L2 主网启动短视频挑战赛", MinLevel: "LV.2+", Reward: "200 USDT + 500 H-POINTS", Claimed: 12, Slots: 50},
			{Platform: "Twitter", Title: "SWAPX 交易引擎机制深度推文组", MinLevel: "LV.1+", Reward: "100 USDT + 2% TOKEN BONUS", Claimed: 45, Slots: 100},
			{Platform: "Instagram", Title: "H-SHIELD 摇杆极速测评 (REELS)", MinLevel: "LV.2+", Reward: "150 USDT + 300 H-POINTS", Claimed: 8, Slots: 30},
			{Platform: "YouTube", Title: "RWA 实物资产上链流程长视频", MinLevel: "LV.4", Reward: "500 USDT + 1200 H-POINTS", Claimed: 2, Slots: 5},
		},
	}
}

func (*BountyPanel) Page() Page { return Bounty }
func (*BountyPanel) sealed()    {}

func (b *BountyPanel) Render(env Env) cmp.Node {
	p := env.printer()
	return panelRoot(Bounty,
		pageHeader("BOUNTY HALL / 赏金大厅", "完最价值的即时务赏中报",
			g.Div(
				g.Class("px-4 py-2 bg-gray-900 border border-gray-800 rounded text-sm text-gray-300"),
				cmp.Text("赏计奖励池金额: "),
				g.Span(g.Class("font-bold text-white"), cmp.Text(p.Sprintf("$%d", b.Pool))),
			),
		),
		g.Div(
			g.Class("grid gap-4"),
			cmp.Map(b.Tasks, bountyRow),
		),
	)
}

func bountyRow(t BountyTask) cmp.Node {
	return g.Div(
		g.Class("bounty bg-[#1a1a1a] border border-gray-800 p-6 rounded-xl flex flex-col md:flex-row items-center gap-6"),
		g.Div(
			g.Class("flex-grow"),
			g.H4(g.Class("text-lg font-bold text-white mb-1"), cmp.Text(t.Title)),
			g.Div(
				g.Class("flex items-center gap-4 text-xs font-mono text-gray-500"),
				g.Span(cmp.Text(t.Platform)),
				g.Span(g.Class("px-1.5 py-0.5 border border-gray-700 rounded"), cmp.Textf("MIN LEVEL: %s", t.MinLevel)),
			),
		),
		g.Div(
			g.Class("min-w-[200px] md:text-right"),
			g.Div(g.Class("text-sm font-bold mb-1"), colorStyle(neon), cmp.Text(t.Reward)),
			g.Div(g.Class("text-xs text-gray-600 font-mono"), cmp.Textf("CLAIMED: %d/%d", t.Claimed, t.Slots)),
		),
		g.Button(g.Type("button"), g.Class("px-6 py-2 bg-[#99E5F8] text-black font-bold text-sm rounded"), cmp.Text("领取")),
	)
}
