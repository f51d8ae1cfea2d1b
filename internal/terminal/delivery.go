package terminal

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Project is one shipped engineering engagement.
type Project struct {
	Name     string
	Stack    string
	Metric   string
	Tags     []string
	LeadTime string
}

// DeliveryPanel is the engineering case archive.
type DeliveryPanel struct {
	SuccessRate int
	Projects    []Project
}

func newDeliveryPanel() *DeliveryPanel {
	return &DeliveryPanel{
		SuccessRate: 100,
		Projects: []Project{
			{Name: "XONE", Stack: "CROSS-CHAIN / RUST/IBC", Metric: "TVL $210M+", Tags: []string{"L0 BRIDGE", "SETTLEMENT"}, LeadTime: "3 MONTHS"},
			{Name: "SWAPX", Stack: "DEFI ENGINE / SOLIDITY/GO", Metric: "Vol $1.2B+", Tags: []string{"BONDING CURVE", "MEV-RESIST"}, LeadTime: "4 MONTHS"},
			{Name: "RAINLINK", Stack: "ORACLE / MPC/OCR", Metric: "Latency <1s", Tags: []string{"REAL-TIME DATA", "RWA ORACLE"}, LeadTime: "2 MONTHS"},
			{Name: "算盘 (SUANPAN)", Stack: "SETTLEMENT / ZK-PROOFS", Metric: "Daily 50k tx", Tags: []string{"ACCOUNTING", "TRANSPARENCY"}, LeadTime: "5 MONTHS"},
			{Name: "WOPAY", Stack: "PAYMENT / AA WALLET", Metric: "40+ Fiats", Tags: []string{"FIAT GATEWAY", "CONSUMER APP"}, LeadTime: "4 MONTHS"},
			{Name: "AAVE INT.", Stack: "LENDING / SMART CONTRACT", Metric: "Extra Yield +4.2%", Tags: []string{"LIQUIDITY", "DEFI"}, LeadTime: "ONGOING"},
		},
	}
}

func (*DeliveryPanel) Page() Page { return Delivery }
func (*DeliveryPanel) sealed()    {}

func (d *DeliveryPanel) Render(Env) cmp.Node {
	return panelRoot(Delivery,
		pageHeader("DELIVERY SHOWCASE / 工程档案", "",
			g.Span(
				g.Class("px-3 py-1 bg-green-900/30 text-green-400 text-xs font-mono border border-green-900 rounded"),
				cmp.Textf("SUCCESS RATE: %d%%", d.SuccessRate),
			),
		),
		g.Div(
			g.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
			cmp.Map(d.Projects, projectCard),
		),
	)
}

func projectCard(p Project) cmp.Node {
	return g.Div(
		g.Class("project bg-[#1a1a1a] border border-gray-800 p-6 rounded-xl flex flex-col"),
		g.H3(g.Class("text-2xl font-black text-white mb-1"), cmp.Text(p.Name)),
		g.Div(g.Class("text-[10px] text-gray-500 font-mono uppercase mb-4"), cmp.Text(p.Stack)),
		g.Div(g.Class("text-white font-serif italic border-l-2 border-[#99E5F8] pl-3 mb-6"), cmp.Text(p.Metric)),
		g.Div(
			g.Class("mt-auto flex flex-wrap gap-2 mb-4"),
			cmp.Map(p.Tags, func(tag string) cmp.Node {
				return g.Span(g.Class("text-[9px] bg-gray-900 text-gray-400 px-2 py-1 rounded border border-gray-800"), cmp.Text(tag))
			}),
		),
		g.Div(
			g.Class("pt-4 border-t border-gray-800 text-[10px] text-gray-500 font-mono flex justify-between"),
			g.Span(cmp.Text("LEAD TIME")),
			g.Span(g.Class("text-white"), cmp.Text(p.LeadTime)),
		),
	)
}
