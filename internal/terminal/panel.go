package terminal

import (
	"log/slog"
	"time"

	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/hlabs/hlabs-web/internal/view"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ChartRenderer produces standalone chart documents.
type ChartRenderer interface {
	Render(spec charts.Spec) (string, error)
}

// Env carries the render-time collaborators of a panel. The zero value is
// usable: charts are omitted and numbers are formatted for English.
type Env struct {
	Charts  ChartRenderer
	Now     time.Time
	Printer *message.Printer
	Logger  *slog.Logger
}

func (e Env) printer() *message.Printer {
	if e.Printer != nil {
		return e.Printer
	}
	return message.NewPrinter(language.English)
}

func (e Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func (e Env) now() time.Time {
	if e.Now.IsZero() {
		return time.Now()
	}
	return e.Now
}

// chart renders spec inside an iframe, or nothing when charts are disabled or
// rendering fails.
func (e Env) chart(spec charts.Spec) cmp.Node {
	if e.Charts == nil {
		return nil
	}
	html, err := e.Charts.Render(spec)
	if err != nil {
		e.logger().Warn("chart render failed", "chart", spec.ID, "error", err)
		return nil
	}
	return view.Templ(charts.Component(spec.ID, html, spec.Height))
}

// Panel is one Terminal OS page body. The set of implementations is closed:
// every Page maps to exactly one panel type declared in this package.
type Panel interface {
	Page() Page
	Render(env Env) cmp.Node
	sealed()
}

var panelConstructors = [pageCount]func() Panel{
	Dashboard:    func() Panel { return newDashboardPanel() },
	Academy:      func() Panel { return newAcademyPanel() },
	Bounty:       func() Panel { return newBountyPanel() },
	Delivery:     func() Panel { return newDeliveryPanel() },
	Media:        func() Panel { return newMediaPanel() },
	Assets:       func() Panel { return newAssetsPanel() },
	Intelligence: func() Panel { return newIntelligencePanel() },
}

// PanelFor builds a fresh panel for p. Panel data is never shared between
// calls, so switching pages always starts from the initial mock data.
func PanelFor(p Page) Panel {
	return panelConstructors[p]()
}

const neon = "#99E5F8"

// panelRoot wraps a panel body with the marker used to locate the rendered
// panel in the page.
func panelRoot(p Page, children ...cmp.Node) cmp.Node {
	return g.Section(
		g.Class("terminal-panel space-y-8"),
		g.Data("panel", p.String()),
		cmp.Group(children),
	)
}

func pageHeader(title, subtitle string, right cmp.Node) cmp.Node {
	return g.Div(
		g.Class("flex justify-between items-end border-b border-gray-800 pb-6 mb-8"),
		g.Div(
			g.H2(g.Class("text-3xl font-bold text-white uppercase tracking-tight"), cmp.Text(title)),
			cmp.If(subtitle != "", g.P(g.Class("text-gray-500 font-mono text-sm mt-2"), cmp.Text(subtitle))),
		),
		right,
	)
}

func colorStyle(color string) cmp.Node {
	return g.Style("color: " + color)
}
