package components

import (
	"strconv"

	"github.com/cisto/site/internal/catalog"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContactAnchor is where every "request a quote" call-to-action points.
const ContactAnchor = "#" + catalog.SectionContact

const maxStars = 5

func container(children ...g.Node) g.Node {
	return h.Div(h.Class("max-w-7xl mx-auto px-6"), g.Group(children))
}

func eyebrow(text string) g.Node {
	return h.H2(h.Class("text-sm font-bold text-brand-accent uppercase tracking-[0.2em] mb-4"), g.Text(text))
}

func headline(text, extra string) g.Node {
	return h.H3(h.Class("text-4xl md:text-5xl font-serif font-bold text-brand-primary "+extra), g.Text(text))
}

// Stars renders a rating as filled stars, clamped to 0..5.
func Stars(rating int, size string) g.Node {
	rating = min(max(rating, 0), maxStars)
	stars := make([]g.Node, 0, rating)
	for range rating {
		stars = append(stars, Icon("star", size+" fill-yellow-400 text-yellow-400"))
	}
	return h.Div(h.Class("flex gap-1"), h.Data("rating", strconv.Itoa(rating)), g.Group(stars))
}

const brandTextClass = "text-2xl font-serif font-bold tracking-tight"

func brandMark(name string, textClass g.Node) g.Node {
	return h.Div(h.Class("flex items-center gap-2"),
		h.Div(h.Class("bg-brand-accent p-1.5 rounded-lg"),
			Icon("sparkles", "w-6 h-6 text-white"),
		),
		h.Span(textClass,
			g.Text(name),
			h.Span(h.Class("text-brand-accent"), g.Text(".")),
		),
	)
}

func externalImage(src, alt, class string) g.Node {
	return h.Img(
		h.Src(src),
		h.Alt(alt),
		h.Class(class),
		g.Attr("loading", "lazy"),
		g.Attr("referrerpolicy", "no-referrer"),
	)
}
