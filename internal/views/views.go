// Package views renders the landing page and the Terminal OS shell with
// gomponents. Every function here is a pure function of composer state and
// content: the same inputs always produce the same markup.
package views

import (
	"log/slog"
	"time"

	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/logos"
	"github.com/hlabs/hlabs-web/internal/terminal"
	"github.com/hlabs/hlabs-web/internal/ui"
	"github.com/hlabs/hlabs-web/internal/view"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	cmp "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// AppID is the DOM id of the element swapped on language and view changes.
const AppID = "app"

// DefaultContactURL is the chat link opened by every call to action.
const DefaultContactURL = "https://t.me/hlabs_ai"

// LogoSource resolves partner logo URLs and reports cached probe outcomes.
type LogoSource interface {
	URL(domain string) string
	Status(domain string) logos.Status
}

// Deps holds everything a view needs besides composer state. Only Store is
// required; the rest fall back to defaults.
type Deps struct {
	Store      *content.Store
	Charts     terminal.ChartRenderer
	Logos      LogoSource
	ContactURL string
	Logger     *slog.Logger
	Now        func() time.Time
}

// ContactLink returns the chat link, defaulting to DefaultContactURL.
func (d Deps) ContactLink() string {
	if d.ContactURL == "" {
		return DefaultContactURL
	}
	return d.ContactURL
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d Deps) logoURL(domain string) string {
	if d.Logos == nil {
		return logos.URL(logos.DefaultBaseURL, domain)
	}
	return d.Logos.URL(domain)
}

func (d Deps) logoStatus(domain string) logos.Status {
	if d.Logos == nil {
		return logos.StatusUnknown
	}
	return d.Logos.Status(domain)
}

// terminalEnv builds the panel environment. Terminal copy is not translated,
// so numbers are always formatted the English way.
func (d Deps) terminalEnv() terminal.Env {
	env := terminal.Env{
		Charts:  d.Charts,
		Printer: message.NewPrinter(language.English),
		Logger:  d.logger(),
	}
	if d.Now != nil {
		env.Now = d.Now()
	}
	return env
}

func (d Deps) chart(spec charts.Spec) cmp.Node {
	if d.Charts == nil {
		return nil
	}
	html, err := d.Charts.Render(spec)
	if err != nil {
		d.logger().Warn("chart render failed", "chart", spec.ID, "error", err)
		return nil
	}
	return view.Templ(charts.Component(spec.ID, html, spec.Height))
}

// Page renders the full HTML document for root.
func Page(d Deps, root ui.Root) cmp.Node {
	return components.HTML5(components.HTML5Props{
		Title:       "H Labs",
		Description: d.Store.Bundle(root.Language).Hero.Headline,
		Language:    root.Language.Tag().String(),
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			g.Script(g.Src("https://unpkg.com/htmx.org@2.0.4"), g.Defer()),
			g.Script(g.Src("/static/app.js"), g.Defer()),
		},
		Body: []cmp.Node{
			g.Class("bg-brand-dark text-white"),
			App(d, root),
		},
	})
}

// App renders the swappable application root. Exactly one of the landing page
// or the Terminal OS is present in the output.
func App(d Deps, root ui.Root) cmp.Node {
	var body cmp.Node
	switch root.View {
	case ui.ViewLanding:
		body = Landing(d, root)
	case ui.ViewTerminal:
		body = TerminalShell(d, root, ui.NewTerminal())
	}
	return g.Div(
		g.ID(AppID),
		g.Data("lang", root.Language.String()),
		g.Data("html-lang", root.Language.Tag().String()),
		g.Data("view", root.View.String()),
		body,
	)
}

// stateVals encodes root as the hx-vals payload posted by a toggle.
func stateVals(root ui.Root) string {
	return `{"lang":"` + root.Language.String() + `","view":"` + root.View.String() + `"}`
}
