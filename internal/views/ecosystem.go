package views

import (
	"github.com/hlabs/hlabs-web/internal/charts"
	"github.com/hlabs/hlabs-web/internal/content"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Chart data shown beside the media and capital copy. It is illustrative and
// not translated.
var (
	growthMonths = []string{"M1", "M2", "M3", "M4", "M5", "M6"}
	growthFans   = []float64{2000, 4500, 8000, 15000, 25000, 45000}

	trafficMix = []charts.Slice{
		{Name: "Own Media", Value: 30, Color: "#00f0ff"},
		{Name: "Partners", Value: 40, Color: "#3b82f6"},
		{Name: "Community", Value: 30, Color: "#ffd700"},
	}

	compareLabels      = []string{"Cost", "Reach", "Conv."}
	compareTraditional = []float64{100, 40, 30}
	compareHLabs       = []float64{50, 100, 85}
)

// GrowthChart is the KOL fan growth curve.
func GrowthChart() charts.Spec {
	return charts.Spec{
		ID:     "kol-growth",
		Kind:   charts.KindLine,
		Height: "240px",
		Labels: growthMonths,
		Series: []charts.Series{{Name: "Fans", Values: growthFans, Color: "#ffd700"}},
	}
}

// TrafficChart is the media factory traffic mix.
func TrafficChart() charts.Spec {
	return charts.Spec{
		ID:     "media-traffic",
		Kind:   charts.KindPie,
		Height: "260px",
		Slices: trafficMix,
	}
}

// CompareChart compares traditional agencies with H Labs brand operations.
func CompareChart() charts.Spec {
	return charts.Spec{
		ID:     "brand-compare",
		Kind:   charts.KindBar,
		Height: "220px",
		Labels: compareLabels,
		Series: []charts.Series{
			{Name: "Traditional", Values: compareTraditional, Color: "#333333"},
			{Name: "H Labs", Values: compareHLabs, Color: "#00f0ff"},
		},
	}
}

// AllocationChart is the fund allocation pie for one language's fund copy.
func AllocationChart(f content.Fund) charts.Spec {
	slices := make([]charts.Slice, 0, len(f.Allocation))
	for _, a := range f.Allocation {
		slices = append(slices, charts.Slice{Name: a.Name, Value: float64(a.Value), Color: a.Color})
	}
	return charts.Spec{
		ID:     "fund-allocation",
		Kind:   charts.KindPie,
		Title:  f.ModelName,
		Height: "320px",
		Slices: slices,
	}
}

func mediaEcosystem(d Deps, b *content.Bundle) cmp.Node {
	m := b.Media
	return section("media", "py-32 bg-brand-dark",
		sectionHeading(m.Title, m.Subtitle),
		factory(d, m.Factory, b.Partners.MediaTitle),
		g.Div(g.Class("grid lg:grid-cols-2 gap-8"),
			kolAcademy(d, m.KOL),
			brandOps(d, m.Brand),
		),
	)
}

func factory(d Deps, f content.MediaFactory, partnerTitle string) cmp.Node {
	return g.Div(g.Class("media-factory mb-32"),
		g.Div(g.Class("grid lg:grid-cols-2 gap-12 items-center"),
			g.Div(
				g.H3(g.Class("text-3xl font-bold"), cmp.Text(f.Title)),
				g.P(g.Class("text-gray-400"), cmp.Text(f.Desc)),
				g.Div(g.Class("grid grid-cols-2 gap-4"),
					cmp.Map(f.Stats, func(s content.Stat) cmp.Node {
						return g.Div(g.Class("stat"),
							g.Div(g.Class("text-2xl font-black"), cmp.Text(s.Value)),
							g.Div(g.Class("text-[10px] uppercase"), cmp.Text(s.Label)),
						)
					}),
				),
				g.P(g.Class("marketing-point"), cmp.Text(f.MarketingPoint)),
			),
			g.Div(g.Class("chart"), d.chart(TrafficChart())),
		),
		mediaPartners(d, partnerTitle),
	)
}

func kolAcademy(d Deps, k content.KOLAcademy) cmp.Node {
	return g.Div(g.ID("kol"), g.Class("kol-academy"),
		g.H3(g.Class("text-3xl font-bold"), cmp.Text(k.Title)),
		g.P(g.Class("text-brand-gold font-mono text-sm"), cmp.Text(k.Subtitle)),
		features(k.Features),
		counters(k.Metrics),
		g.Div(g.Class("chart"), d.chart(GrowthChart())),
		contactLink(d, "btn-gold", k.CTA),
	)
}

func brandOps(d Deps, b content.BrandOps) cmp.Node {
	return g.Div(g.ID("brand"), g.Class("brand-ops"),
		g.H3(g.Class("text-3xl font-bold"), cmp.Text(b.Title)),
		g.P(g.Class("text-gray-400 font-mono text-sm"), cmp.Text(b.Subtitle)),
		features(b.Features),
		g.Div(g.Class("chart"), d.chart(CompareChart())),
		counters(b.Metrics),
	)
}

func features(fs []content.MediaFeature) cmp.Node {
	return g.Ul(g.Class("features space-y-4"),
		cmp.Map(fs, func(f content.MediaFeature) cmp.Node {
			return g.Li(
				g.H4(g.Class("font-bold"), cmp.Text(f.Title)),
				g.P(g.Class("text-sm text-gray-400"), cmp.Text(f.Desc)),
			)
		}),
	)
}

func counters(ms []content.SpecificMetric) cmp.Node {
	return g.Div(g.Class("counters grid grid-cols-3 gap-4"),
		cmp.Map(ms, func(m content.SpecificMetric) cmp.Node {
			return g.Div(g.Class("counter"),
				g.Div(g.Class("text-2xl font-black"), cmp.Textf("%d%s", m.Value, m.Suffix)),
				g.Div(g.Class("text-[9px] uppercase font-bold"), cmp.Text(m.Label)),
			)
		}),
	)
}

func capital(d Deps, b *content.Bundle) cmp.Node {
	c := b.Capital
	return section("capital", "py-32 bg-black",
		sectionHeading(c.Title, ""),
		g.Div(g.Class("fund grid lg:grid-cols-2 gap-12 items-center"),
			g.Div(
				g.H3(g.Class("text-3xl font-bold"), cmp.Text(c.Fund.Title)),
				g.P(g.Class("text-gray-400"), cmp.Text(c.Fund.Desc)),
				g.Div(g.Class("font-mono text-xs uppercase"), cmp.Text(c.Fund.ModelName)),
				g.Ul(g.Class("allocation space-y-3"),
					cmp.Map(c.Fund.Allocation, func(a content.FundAllocation) cmp.Node {
						return g.Li(g.Data("allocation", a.Name),
							g.Span(g.Class("swatch"), g.Style("background:"+a.Color)),
							g.Strong(cmp.Text(a.Name)),
							g.Span(g.Class("font-mono"), cmp.Textf("%d%%", a.Value)),
							g.P(g.Class("text-xs text-gray-500"), cmp.Text(a.Desc)),
						)
					}),
				),
			),
			g.Div(g.Class("chart"), d.chart(AllocationChart(c.Fund))),
		),
		g.Div(g.ID("nexus"), g.Class("nexus mt-32"),
			g.H3(g.Class("text-3xl font-bold"), cmp.Text(c.Nexus.Title)),
			g.P(g.Class("text-gray-400"), cmp.Text(c.Nexus.Desc)),
			g.Div(g.Class("grid md:grid-cols-3 gap-6"),
				cmp.Map(c.Nexus.Tiers, func(t content.MembershipTier) cmp.Node {
					return g.Div(g.Class("tier tier-"+t.Color), g.Data("tier", t.Color),
						g.H4(g.Class("text-2xl font-black"), cmp.Text(t.Name)),
						g.Div(g.Class("text-xs uppercase"), cmp.Text(t.SubName)),
						g.P(g.Class("text-sm"), cmp.Text(t.Audience)),
						textList("tier-features", t.Features),
					)
				}),
			),
		),
	)
}
