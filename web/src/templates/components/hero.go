package components

import (
	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero is the full-height opening section with the primary call to action.
func Hero(site *catalog.Site) g.Node {
	hero := site.Hero

	avatars := make([]g.Node, 0, len(hero.Avatars))
	for _, src := range hero.Avatars {
		avatars = append(avatars, externalImage(src, "", "w-10 h-10 rounded-full border-2 border-white object-cover"))
	}

	return h.Section(
		h.ID("domov"),
		h.Class("relative h-screen flex items-center overflow-hidden"),
		h.Div(h.Class("absolute inset-0 z-0"),
			externalImage(hero.Image, hero.ImageAlt, "w-full h-full object-cover"),
			h.Div(h.Class("absolute inset-0 hero-gradient")),
		),
		h.Div(h.Class("relative z-10 w-full"),
			container(
				h.Div(h.Class("max-w-2xl"), view.Reveal(view.Rise, 0),
					g.If(hero.Badge != "", h.Span(
						h.Class("inline-flex items-center gap-2 bg-white/10 backdrop-blur-sm border border-white/20 text-white px-4 py-1.5 rounded-full text-sm font-medium mb-6"),
						Icon("shield-check", "w-4 h-4 text-brand-accent"),
						g.Text(hero.Badge),
					)),
					h.H1(h.Class("text-5xl md:text-7xl font-serif font-bold text-white leading-tight mb-6"),
						g.Text(hero.TitleLead+" "),
						h.Br(),
						h.Span(h.Class("italic text-brand-accent"), g.Text(hero.TitleAccent)),
						g.If(hero.TitleTail != "", g.Text(" "+hero.TitleTail)),
					),
					h.P(h.Class("text-lg md:text-xl text-white/80 mb-10 leading-relaxed"), g.Text(hero.Lead)),
					h.Div(h.Class("flex flex-col sm:flex-row gap-4 sm:items-center"),
						h.A(
							h.Href(ContactAnchor),
							h.Class("group inline-flex items-center justify-center gap-2 bg-brand-accent hover:bg-brand-accent/90 text-white px-8 py-4 rounded-full text-lg font-semibold shadow-xl shadow-brand-accent/30 transition-all"),
							h.Data("cta", "hero"),
							g.Text(hero.CTA),
							Icon("arrow-right", "w-5 h-5 group-hover:translate-x-1 transition-transform"),
						),
						h.A(
							h.Href(site.PhoneHref()),
							h.Class("inline-flex items-center justify-center gap-3 px-8 py-4 rounded-full border border-white/30 text-white text-lg font-bold hover:bg-white/10 transition-all"),
							h.Data("cta", "hero-phone"),
							Icon("phone", "w-5 h-5"),
							g.Text(site.Contact.PhoneDisplay),
						),
					),
					h.Div(h.Class("mt-12 flex items-center gap-4"),
						h.Div(h.Class("flex -space-x-3"), g.Group(avatars)),
						h.Div(
							Stars(5, "w-4 h-4"),
							h.P(h.Class("text-white/80 text-sm mt-1"), g.Text(hero.SocialProof)),
						),
					),
				),
			),
		),
		scrollCue(),
	)
}

func scrollCue() g.Node {
	return h.Div(
		h.Class("scroll-cue absolute bottom-10 left-1/2 z-10 hidden md:block"),
		g.Attr("aria-hidden", "true"),
		h.Div(h.Class("w-6 h-10 border-2 border-white/30 rounded-full flex justify-center p-1"),
			h.Div(h.Class("w-1 h-2 bg-white rounded-full")),
		),
	)
}
