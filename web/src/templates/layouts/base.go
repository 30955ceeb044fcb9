package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/cisto/site/internal/view"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        brand: { primary: "#0f2a3d", accent: "#2bb3a3", light: "#f4f8f7" }
      },
      fontFamily: {
        sans: ["Inter", "ui-sans-serif", "system-ui"],
        serif: ["Playfair Display", "ui-serif", "Georgia"]
      }
    }
  }
}`

// Page describes the document around the page content.
type Page struct {
	Title       string
	Description string
	// PageID is the live page session, empty for static exports.
	PageID string
}

// Base wraps content in the HTML document: head assets, the session id on
// <body> and the client script that drives reveals and the live nav.
func Base(page Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := c.HTML5(c.HTML5Props{
			Title:       CalculateTitle(page.Title),
			Description: page.Description,
			Language:    "sl",
			Head: []g.Node{
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=Playfair+Display:ital,wght@0,600;0,700;1,600&display=swap")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(g.Raw(tailwindConfig)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
				h.Script(h.Src("/static/js/site.js"), h.Defer()),
				h.Script(g.Raw(`document.documentElement.classList.add("js")`)),
			},
			Body: []g.Node{
				h.Class("font-sans antialiased bg-white text-gray-900"),
				g.If(page.PageID != "", h.Data("page-id", page.PageID)),
				view.AdaptTemplToGomponent(ctx, content),
			},
		})
		return doc.Render(w)
	})
}
