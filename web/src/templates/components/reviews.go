package components

import (
	"strings"
	"unicode/utf8"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ReviewGrid renders one card per catalog review, in catalog order.
func ReviewGrid(site *catalog.Site) g.Node {
	intro := site.ReviewsIntro

	cards := make([]g.Node, 0, len(site.Reviews))
	for i, r := range site.Reviews {
		cards = append(cards, reviewCard(r, i))
	}

	return h.Section(
		h.ID(catalog.SectionReviews),
		h.Class("py-24 bg-white"),
		container(
			h.Div(h.Class("flex flex-col md:flex-row md:items-end justify-between gap-8 mb-16"),
				h.Div(h.Class("max-w-2xl"), view.Reveal(view.Rise, 0),
					eyebrow(intro.Eyebrow),
					headline(intro.Title, ""),
				),
				h.Div(h.Class("flex items-center gap-4 bg-brand-light px-6 py-4 rounded-2xl"), view.Reveal(view.Fade, 1),
					h.Span(h.Class("text-4xl font-serif font-bold text-brand-primary"), g.Text(intro.Score)),
					h.Div(
						Stars(5, "w-4 h-4"),
						h.P(h.Class("text-sm text-gray-500 mt-1"), g.Text(intro.Source+" · "+intro.Verdict)),
					),
				),
			),
			h.Div(h.Class("grid md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}

func reviewCard(r catalog.Review, index int) g.Node {
	return h.Article(
		h.Class("relative p-8 rounded-3xl border border-gray-100 bg-white shadow-sm hover:shadow-xl transition-shadow"),
		h.Data("review-id", r.ID),
		view.Reveal(view.Zoom, index),
		Icon("quote", "absolute top-8 right-8 w-10 h-10 text-brand-accent/10"),
		Stars(r.Rating, "w-4 h-4"),
		h.P(h.Class("text-gray-700 italic leading-relaxed my-6"), g.Text("“"+r.Text+"”")),
		h.Div(h.Class("flex items-center gap-3"),
			h.Div(
				h.Class("w-12 h-12 rounded-full bg-brand-primary text-white flex items-center justify-center font-bold"),
				h.Data("avatar", ""),
				g.Text(Initial(r.Author)),
			),
			h.Div(
				h.P(h.Class("font-bold text-brand-primary"), g.Text(r.Author)),
				h.P(h.Class("text-xs text-gray-400"), g.Text(r.Date)),
			),
		),
	)
}

// Initial returns the first letter of name for avatar placeholders.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
