package pages

import (
	"github.com/a-h/templ"
	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/navbar"
	"github.com/cisto/site/internal/view"
	"github.com/cisto/site/web/src/templates/components"
	"github.com/cisto/site/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeData is everything the landing page needs for one render.
type HomeData struct {
	Site *catalog.Site
	// PageID binds the nav to a live page session. Empty for static exports.
	PageID string
	Nav    navbar.Snapshot
	Year   int
}

// HomeContent is the body of the landing page in section order.
func HomeContent(d HomeData) g.Node {
	return g.Group([]g.Node{
		components.Navbar(d.Site, d.PageID, d.Nav),
		h.Main(
			components.Hero(d.Site),
			components.ServiceGrid(d.Site),
			components.PricingPanel(d.Site),
			components.ReviewGrid(d.Site),
			components.FounderStory(d.Site),
		),
		components.Footer(d.Site, d.Year),
		components.MobileCTA(d.Site),
	})
}

// Home is the full landing page document.
func Home(d HomeData) templ.Component {
	return layouts.Base(layouts.Page{
		Title:       "Profesionalno čiščenje v Ljubljani",
		Description: d.Site.Brand.Blurb,
		PageID:      d.PageID,
	}, view.AdaptGomponentToTempl(HomeContent(d)))
}
