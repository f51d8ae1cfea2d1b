package views

import (
	"strconv"
	"strings"

	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/scroll"
	"github.com/hlabs/hlabs-web/internal/ui"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Landing renders the marketing page for root.Language.
func Landing(d Deps, root ui.Root) cmp.Node {
	b := d.Store.Bundle(root.Language)
	return g.Div(
		g.ID(scroll.TopAnchor),
		g.Class("landing"),
		navbar(b, root),
		g.Main(
			hero(d, b),
			about(b),
			incubation(b),
			caseStudies(d, b),
			mediaEcosystem(d, b),
			capital(d, b),
			competencies(b),
			testimonials(b),
			ctaBar(d, b),
		),
		footer(b),
	)
}

func navbar(b *content.Bundle, root ui.Root) cmp.Node {
	return g.Nav(
		g.ID("navbar"),
		g.Class("fixed w-full z-50"),
		g.Data("scroll-offset", strconv.Itoa(scroll.HeaderOffset)),
		g.Div(g.Class("max-w-7xl mx-auto px-4 md:px-8 flex justify-between items-center"),
			g.A(g.Href("#"+scroll.TopAnchor), g.Class("nav-logo flex items-center gap-2"),
				g.Span(g.Class("logo-mark"), cmp.Text("H")),
				g.Span(g.Class("font-bold text-xl tracking-tighter"), cmp.Text("LABS")),
			),
			g.Div(g.Class("nav-links hidden md:flex items-center gap-8"),
				cmp.Map(b.Nav, func(link content.NavLink) cmp.Node {
					return g.A(
						g.Href(link.Href),
						g.Class("nav-link"),
						g.Data("nav", link.Key),
						cmp.Text(link.Label),
					)
				}),
			),
			g.Div(g.Class("flex items-center gap-4"),
				g.Button(
					g.Type("button"),
					g.Class("lang-toggle"),
					hx.Post("/ui/language"),
					hx.Vals(stateVals(root.SetLanguage(root.Language.Toggle()))),
					hx.Target("#"+AppID),
					hx.Swap("outerHTML"),
					cmp.Text(strings.ToUpper(root.Language.String())),
				),
				terminalButton(root, "CONNECT"),
			),
		),
	)
}

// terminalButton swaps the app root to the Terminal OS.
func terminalButton(root ui.Root, label string) cmp.Node {
	return g.Button(
		g.Type("button"),
		g.Class("terminal-open"),
		hx.Post("/ui/view"),
		hx.Vals(stateVals(root.SetViewMode(ui.ViewTerminal))),
		hx.Target("#"+AppID),
		hx.Swap("outerHTML"),
		cmp.Text(label),
	)
}

func hero(d Deps, b *content.Bundle) cmp.Node {
	return g.Header(g.ID("hero"), g.Class("hero relative min-h-screen flex items-center"),
		g.Div(g.Class("max-w-7xl mx-auto px-4 md:px-8"),
			g.H1(g.Class("text-5xl md:text-7xl font-black"), cmp.Text(b.Hero.Headline)),
			g.P(g.Class("text-xl text-gray-300"), cmp.Text(b.Hero.SubHeadline)),
			g.P(g.Class("font-mono text-brand-cyan"), cmp.Text(b.Hero.Slogan)),
			g.Div(g.Class("flex gap-4 mt-8"),
				contactLink(d, "btn-primary", b.Hero.CTAPrimary),
				g.A(g.Href("#media"), g.Class("btn-secondary"), cmp.Text(b.Hero.CTASecondary)),
			),
			g.Div(g.Class("metrics grid grid-cols-2 md:grid-cols-4 gap-8 mt-16"),
				cmp.Map(b.Metrics, func(m content.Metric) cmp.Node {
					return g.Div(g.Class("metric"),
						g.Div(g.Class("flex items-baseline gap-1"),
							cmp.If(m.Prefix != "", g.Span(cmp.Text(m.Prefix))),
							g.Span(g.Class("text-4xl font-black"), cmp.Text(m.Value)),
							cmp.If(m.Suffix != "", g.Span(g.Class("text-brand-cyan"), cmp.Text(m.Suffix))),
						),
						g.Div(g.Class("uppercase text-xs"), cmp.Text(m.Label)),
						cmp.If(m.Description != "", g.Div(g.Class("text-gray-500 text-xs"), cmp.Text(m.Description))),
					)
				}),
			),
		),
	)
}

// contactLink opens the chat link in a new tab.
func contactLink(d Deps, class, label string) cmp.Node {
	return g.A(
		g.Href(d.ContactLink()),
		g.Target("_blank"),
		g.Rel("noopener noreferrer"),
		g.Class(class),
		cmp.Text(label),
	)
}

func section(id, class string, children ...cmp.Node) cmp.Node {
	return g.Section(g.ID(id), g.Class(class),
		g.Div(append([]cmp.Node{g.Class("max-w-7xl mx-auto px-4 md:px-8")}, children...)...),
	)
}

func sectionHeading(title, subtitle string) cmp.Node {
	return g.Div(g.Class("section-heading mb-16"),
		g.H2(g.Class("text-4xl md:text-5xl font-bold"), cmp.Text(title)),
		cmp.If(subtitle != "", g.P(g.Class("text-gray-400"), cmp.Text(subtitle))),
	)
}

func icon(name string) cmp.Node {
	return g.Span(g.Class("icon"), g.Data("icon", name), g.Aria("hidden", "true"))
}

func about(b *content.Bundle) cmp.Node {
	a := b.About
	return section("about", "py-32 bg-black",
		sectionHeading(a.Title, a.Description),
		g.P(g.Class("font-mono text-xs text-gray-500"), cmp.Text(a.History)),
		g.Div(g.Class("bento grid md:grid-cols-3 gap-6"),
			cmp.Map(a.Items, func(item content.BentoItem) cmp.Node {
				return g.Div(g.Class("bento-item"),
					icon(item.Icon),
					g.H3(cmp.Text(item.Title)),
					g.P(cmp.Text(item.Description)),
					cmp.If(item.Details != "", g.Span(g.Class("bento-details"), cmp.Text(item.Details))),
				)
			}),
		),
	)
}

func incubation(b *content.Bundle) cmp.Node {
	in := b.Incubation
	return section("incubation", "py-32 bg-brand-dark",
		sectionHeading(in.Title, in.Subtitle),
		g.Ol(g.Class("steps grid md:grid-cols-4 gap-6"),
			cmp.Map(in.Steps, func(s content.Step) cmp.Node {
				return g.Li(g.Class("step"), g.Data("step", s.ID),
					g.Span(g.Class("step-id font-mono"), cmp.Text(s.ID)),
					g.H3(cmp.Text(s.Title)),
					textList("step-tasks", s.Tasks),
					textList("step-deliverables", s.Deliverables),
				)
			}),
		),
		g.H3(g.Class("text-2xl font-bold mt-24"), cmp.Text(in.TechTitle)),
		g.Div(g.Class("tech-stack grid md:grid-cols-3 gap-6"),
			cmp.Map(in.TechStack, func(tc content.TechCategory) cmp.Node {
				return g.Div(g.Class("tech-category"),
					icon(tc.Icon),
					g.H4(cmp.Text(tc.Title)),
					textList("tech-items", tc.Items),
				)
			}),
		),
	)
}

func textList(class string, items []string) cmp.Node {
	return g.Ul(g.Class(class),
		cmp.Map(items, func(s string) cmp.Node { return g.Li(cmp.Text(s)) }),
	)
}

func caseStudies(d Deps, b *content.Bundle) cmp.Node {
	cs := b.CaseStudies
	return section("cases", "py-32 bg-black",
		sectionHeading(cs.Title, cs.Subtitle),
		g.Div(g.Class("grid md:grid-cols-3 gap-8"),
			cmp.Map(cs.Items, func(c content.CaseStudy) cmp.Node {
				return g.Article(g.Class("case-study"),
					g.Span(g.Class("case-tag"), cmp.Text(c.Tag)),
					g.H3(cmp.Text(c.Title)),
					g.Div(g.Class("case-stats text-4xl font-black"), cmp.Text(c.Stats)),
					g.Div(g.Class("text-xs uppercase"), cmp.Text(c.StatsLabel)),
					g.P(cmp.Text(c.Desc)),
				)
			}),
		),
		partnerWall(d, b.Partners),
	)
}

func competencies(b *content.Bundle) cmp.Node {
	c := b.Competencies
	return section("competencies", "py-32 bg-brand-dark",
		sectionHeading(c.Title, ""),
		g.Div(g.Class("grid md:grid-cols-3 gap-6"),
			cmp.Map(c.Items, func(item content.CompetencyItem) cmp.Node {
				return g.Div(g.Class("competency"),
					g.H3(cmp.Text(item.Title)),
					g.P(cmp.Text(item.Desc)),
				)
			}),
		),
	)
}

func testimonials(b *content.Bundle) cmp.Node {
	t := b.Testimonials
	return section("testimonials", "py-32 bg-black",
		sectionHeading(t.Title, ""),
		g.Div(g.Class("grid md:grid-cols-3 gap-6"),
			cmp.Map(t.Items, func(item content.Testimonial) cmp.Node {
				return g.Figure(g.Class("testimonial"),
					g.BlockQuote(cmp.Text(item.Content)),
					g.FigCaption(
						cmp.If(item.Avatar != "", g.Img(g.Src(item.Avatar), g.Alt(item.Author), g.Class("avatar"))),
						g.Strong(cmp.Text(item.Author)),
						g.Span(g.Class("role"), cmp.Text(item.Role)),
					),
				)
			}),
		),
	)
}

func ctaBar(d Deps, b *content.Bundle) cmp.Node {
	return g.Section(g.ID("cta"), g.Class("py-20 bg-brand-cyan text-black"),
		g.Div(g.Class("max-w-4xl mx-auto px-4 text-center"),
			g.H2(g.Class("text-3xl md:text-5xl font-black uppercase"), cmp.Text(b.CTA.Headline)),
			contactLink(d, "btn-dark", b.Footer.CTA),
		),
	)
}

func footer(b *content.Bundle) cmp.Node {
	return g.Footer(g.Class("bg-black border-t border-gray-900 pt-20 pb-10"),
		g.Div(g.Class("max-w-7xl mx-auto px-4 md:px-8"),
			g.H2(g.Class("text-4xl font-bold"), cmp.Text("H LABS")),
			g.P(g.Class("text-gray-400 font-mono text-sm"), cmp.Text(b.Footer.Slogan)),
			g.P(g.Class("text-xs text-gray-600 font-mono"), cmp.Text(b.Footer.Copyright)),
		),
	)
}
