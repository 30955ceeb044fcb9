package components

import (
	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FounderStory is the "O nas" section.
func FounderStory(site *catalog.Site) g.Node {
	f := site.Founder

	paragraphs := make([]g.Node, 0, len(f.Paragraphs))
	for _, p := range f.Paragraphs {
		paragraphs = append(paragraphs, h.P(h.Class("text-gray-600 leading-relaxed mb-6"), g.Text(p)))
	}

	highlights := make([]g.Node, 0, len(f.Highlights))
	for i, hl := range f.Highlights {
		highlights = append(highlights, h.Div(h.Class("flex gap-4"), view.Reveal(view.Rise, i+1),
			h.Div(h.Class("w-12 h-12 shrink-0 rounded-xl bg-brand-accent/10 flex items-center justify-center"),
				Icon(hl.Icon, "w-6 h-6 text-brand-accent"),
			),
			h.Div(
				h.H5(h.Class("font-bold text-brand-primary mb-1"), g.Text(hl.Title)),
				h.P(h.Class("text-sm text-gray-500"), g.Text(hl.Text)),
			),
		))
	}

	return h.Section(
		h.ID(catalog.SectionAbout),
		h.Class("py-24 bg-brand-light overflow-hidden"),
		container(
			h.Div(h.Class("grid lg:grid-cols-2 gap-16 items-center"),
				h.Div(h.Class("relative"), view.Reveal(view.Fade, 0),
					externalImage(f.Image, f.ImageAlt, "rounded-3xl shadow-2xl w-full aspect-[4/5] object-cover"),
					g.If(f.Experience != "", h.Div(
						h.Class("absolute -bottom-8 -right-8 bg-brand-accent text-white p-8 rounded-3xl shadow-xl hidden md:block"),
						h.P(h.Class("text-4xl font-serif font-bold"), g.Text(f.Experience)),
						h.P(h.Class("text-sm text-white/80"), g.Text(f.ExperienceLabel)),
					)),
				),
				h.Div(view.Reveal(view.Rise, 0),
					eyebrow(f.Eyebrow),
					headline(f.Title, "mb-8"),
					g.Group(paragraphs),
					h.Div(h.Class("grid sm:grid-cols-2 gap-6 my-10"), g.Group(highlights)),
					h.Div(h.Class("flex items-center gap-4"),
						g.If(f.Signature != "", externalImage(f.Signature, "", "h-12 opacity-60")),
						h.Div(
							h.P(h.Class("font-bold text-brand-primary"), g.Text(f.Name)),
							h.P(h.Class("text-sm text-gray-500"), g.Text(f.Role)),
						),
					),
				),
			),
		),
	)
}
