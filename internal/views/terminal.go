package views

import (
	"github.com/hlabs/hlabs-web/internal/terminal"
	"github.com/hlabs/hlabs-web/internal/ui"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	// PanelID is the DOM id of the element that holds the active panel.
	PanelID   = "terminal-panel"
	sidebarID = "terminal-sidebar"
)

// PanelPath is the fragment URL that renders page p.
func PanelPath(p terminal.Page) string {
	return "/terminal/panels/" + p.String()
}

// TerminalShell renders the Terminal OS with term's active panel. root is
// carried so the back button restores the language the visitor came from.
func TerminalShell(d Deps, root ui.Root, term ui.Terminal) cmp.Node {
	return g.Div(g.ID("terminal"), g.Class("flex h-screen bg-[#050505] text-gray-200 font-sans"),
		g.Aside(g.Class("w-64 border-r border-gray-800 flex flex-col bg-[#0a0a0a]"),
			g.Div(g.Class("h-16 flex items-center px-6 border-b border-gray-800"),
				g.Span(g.Class("font-black tracking-tighter"), cmp.Text("H-LABS OS")),
			),
			sidebar(term, false),
			userBadge(),
		),
		g.Div(g.Class("flex-grow flex flex-col h-screen overflow-hidden"),
			g.Header(g.Class("h-16 border-b border-gray-800 flex items-center justify-between px-8"),
				g.Div(g.Class("text-xs font-mono text-gray-500 tracking-widest uppercase"),
					cmp.Text("H-LABS INTEGRATED OS v2.0"),
				),
				g.Button(
					g.Type("button"),
					g.Class("terminal-back px-4 py-1.5 bg-white text-black text-xs font-bold rounded"),
					hx.Post("/ui/view"),
					hx.Vals(stateVals(root.SetViewMode(ui.ViewLanding))),
					hx.Target("#"+AppID),
					hx.Swap("outerHTML"),
					cmp.Text("返回官網"),
				),
			),
			g.Main(g.ID(PanelID), g.Class("flex-grow overflow-y-auto p-8 terminal-scrollbar"),
				term.Panel().Render(d.terminalEnv()),
			),
		),
	)
}

// PanelFragment is the response to a sidebar click: the selected panel plus
// an out-of-band sidebar so the active highlight follows the selection.
func PanelFragment(d Deps, term ui.Terminal) cmp.Node {
	return cmp.Group{
		term.Panel().Render(d.terminalEnv()),
		sidebar(term, true),
	}
}

func sidebar(term ui.Terminal, oob bool) cmp.Node {
	return g.Nav(
		g.ID(sidebarID),
		g.Class("flex-grow p-4 space-y-2"),
		cmp.If(oob, hx.SwapOOB("true")),
		cmp.Map(terminal.Pages(), func(p terminal.Page) cmp.Node {
			active := p == term.Active
			class := "sidebar-item w-full flex items-center gap-3 px-4 py-3 rounded-lg text-sm text-gray-500"
			if active {
				class = "sidebar-item w-full flex items-center gap-3 px-4 py-3 rounded-lg text-sm active"
			}
			return g.Button(
				g.Type("button"),
				g.Class(class),
				g.Data("page", p.String()),
				cmp.If(active, g.Aria("current", "page")),
				hx.Get(PanelPath(p)),
				hx.Target("#"+PanelID),
				hx.Swap("innerHTML"),
				g.Span(g.Class("font-medium"), cmp.Text(p.Label())),
			)
		}),
	)
}

func userBadge() cmp.Node {
	return g.Div(g.Class("p-4 border-t border-gray-800"),
		g.Div(g.Class("flex items-center gap-3 p-2 rounded-lg bg-[#050505] border border-gray-800"),
			g.Div(g.Class("overflow-hidden"),
				g.Div(g.Class("text-xs font-bold text-white truncate"), cmp.Text("@GROWTH_ARCHITECT")),
				g.Div(g.Class("text-[10px] uppercase font-bold"), g.Style("color: #99E5F8"), cmp.Text("GROWTH ELITE")),
			),
		),
	)
}
