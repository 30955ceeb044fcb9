package components

import (
	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ServiceGrid renders one card per catalog service, in catalog order.
func ServiceGrid(site *catalog.Site) g.Node {
	cards := make([]g.Node, 0, len(site.Services))
	for i, s := range site.Services {
		cards = append(cards, serviceCard(s, i))
	}

	return h.Section(
		h.ID(catalog.SectionServices),
		h.Class("py-24 bg-white"),
		container(
			h.Div(h.Class("text-center max-w-2xl mx-auto mb-16"), view.Reveal(view.Rise, 0),
				eyebrow(site.ServicesIntro.Eyebrow),
				headline(site.ServicesIntro.Title, ""),
			),
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-8"), g.Group(cards)),
		),
	)
}

func serviceCard(s catalog.Service, index int) g.Node {
	return h.Article(
		h.Class("group p-8 rounded-3xl bg-brand-light hover:bg-brand-primary transition-all duration-500"),
		h.Data("service-id", s.ID),
		view.Reveal(view.Rise, index),
		h.Div(h.Class("w-14 h-14 rounded-2xl bg-white flex items-center justify-center mb-6 shadow-sm group-hover:bg-brand-accent transition-colors"),
			Icon(s.Icon, "w-7 h-7 text-brand-accent group-hover:text-white"),
		),
		h.H4(h.Class("text-xl font-bold text-brand-primary group-hover:text-white mb-3"), g.Text(s.Title)),
		h.P(h.Class("text-gray-600 group-hover:text-white/70 text-sm leading-relaxed mb-6"), g.Text(s.Description)),
		h.Div(h.Class("flex items-center justify-between pt-6 border-t border-gray-200 group-hover:border-white/10"),
			h.Span(h.Class("font-semibold text-brand-accent"), g.Text(s.Price)),
			Icon("chevron-right", "w-5 h-5 text-gray-400 group-hover:text-white"),
		),
	)
}
