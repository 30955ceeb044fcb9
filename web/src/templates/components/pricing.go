package components

import (
	"net/url"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PricingPanel lists the perks and the featured price rows.
func PricingPanel(site *catalog.Site) g.Node {
	p := site.Pricing

	perks := make([]g.Node, 0, len(p.Perks))
	for _, perk := range p.Perks {
		perks = append(perks, h.Li(h.Class("flex items-center gap-3 text-gray-700"),
			Icon("check-circle-2", "w-5 h-5 text-brand-accent shrink-0"),
			g.Text(perk),
		))
	}

	rows := make([]g.Node, 0, len(p.Items))
	for _, row := range p.Items {
		rows = append(rows, h.Div(h.Class("flex justify-between items-center py-4 border-b border-white/10 last:border-0"),
			h.Div(
				h.P(h.Class("font-semibold"), g.Text(row.Name)),
				g.If(row.Note != "", h.P(h.Class("text-sm text-white/60"), g.Text(row.Note))),
			),
			h.Span(h.Class("text-2xl font-serif font-bold text-brand-accent"), g.Text(row.Price)),
		))
	}

	return h.Section(
		h.ID(catalog.SectionPricing),
		h.Class("py-24 bg-brand-light"),
		container(
			h.Div(h.Class("grid lg:grid-cols-2 gap-16 items-center"),
				h.Div(view.Reveal(view.Rise, 0),
					eyebrow(p.Eyebrow),
					headline(p.Title, "mb-6"),
					h.P(h.Class("text-gray-600 mb-8 leading-relaxed"), g.Text(p.Lead)),
					h.Ul(h.Class("space-y-4 mb-10"), g.Group(perks)),
					g.If(p.DownloadLabel != "", h.A(
						h.Href(priceListMailto(site)),
						h.Class("inline-flex items-center gap-2 font-semibold text-brand-primary hover:text-brand-accent transition-colors"),
						g.Text(p.DownloadLabel),
						Icon("arrow-right", "w-4 h-4"),
					)),
				),
				h.Div(h.Class("bg-brand-primary text-white rounded-3xl p-10 shadow-2xl"), view.Reveal(view.Zoom, 1),
					h.H4(h.Class("text-2xl font-serif font-bold mb-6"), g.Text(p.FeaturedTitle)),
					g.Group(rows),
					g.If(p.Disclaimer != "", h.P(h.Class("text-xs text-white/50 mt-6"), g.Text(p.Disclaimer))),
				),
			),
		),
	)
}

// priceListMailto asks for the full price list by e-mail; the site hosts no PDF.
func priceListMailto(site *catalog.Site) string {
	q := url.Values{}
	q.Set("subject", site.Pricing.DownloadLabel)
	return "mailto:" + site.Contact.Email + "?" + q.Encode()
}
