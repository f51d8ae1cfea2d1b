package views

import (
	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/logos"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// logoFallbackScript reveals the name label next to a broken logo and removes
// the image element.
const logoFallbackScript = "this.nextElementSibling.hidden=false;this.remove()"

// Logo renders one partner tile. A logo that is known to be unavailable is
// rendered as its name only; otherwise the image carries an onerror handler
// that swaps in the same name label.
func Logo(p content.Partner, src string, status logos.Status) cmp.Node {
	label := g.Span(g.Class("partner-name"), cmp.Text(p.Name))
	if status == logos.StatusUnavailable {
		return g.Div(g.Class("partner"), g.Data("domain", p.Domain), g.Data("logo", status.String()),
			label,
		)
	}
	return g.Div(g.Class("partner"), g.Data("domain", p.Domain), g.Data("logo", status.String()),
		g.Img(
			g.Src(src),
			g.Alt(p.Name),
			cmp.Attr("loading", "lazy"),
			g.Class("partner-logo"),
			cmp.Attr("onerror", logoFallbackScript),
		),
		g.Span(g.Class("partner-name"), cmp.Attr("hidden"), cmp.Text(p.Name)),
	)
}

// marqueeRow repeats the tiles twice so the CSS animation can loop without a gap.
func marqueeRow(d Deps, class string, partners []content.Partner) cmp.Node {
	return g.Div(g.Class("marquee "+class),
		g.Div(g.Class("marquee-track"),
			cmp.Map(content.Loop(partners), func(p content.Partner) cmp.Node {
				return Logo(p, d.logoURL(p.Domain), d.logoStatus(p.Domain))
			}),
		),
	)
}

func partnerWall(d Deps, pc content.PartnersCopy) cmp.Node {
	top, bottom := content.SplitRows(d.Store.StrategicPartners())
	return g.Div(g.ID("partners"), g.Class("partners mt-32"),
		g.Span(g.Class("font-mono text-brand-cyan text-xs uppercase"), cmp.Text(pc.TopTitle)),
		g.H3(g.Class("text-3xl font-bold"), cmp.Text(pc.Title)),
		g.P(g.Class("text-gray-400"), cmp.Text(pc.Description)),
		marqueeRow(d, "marquee-left", top),
		cmp.If(len(bottom) > 0, marqueeRow(d, "marquee-right", bottom)),
	)
}

func mediaPartners(d Deps, title string) cmp.Node {
	return g.Div(g.Class("media-partners"),
		g.H4(g.Class("text-xs uppercase tracking-widest text-gray-500"), cmp.Text(title)),
		marqueeRow(d, "marquee-left", d.Store.MediaPartners()),
	)
}
