package components

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/navbar"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// NavID is the DOM id of the navigation bar. Fragments returned by the nav
// endpoints replace this element.
const NavID = "site-nav"

// NavURL is the base path of the nav endpoints for one page session.
func NavURL(pageID string) string {
	return "/ui/nav/" + url.PathEscape(pageID)
}

// NavMenuURL toggles the mobile menu.
func NavMenuURL(pageID string) string { return NavURL(pageID) + "/menu" }

// NavSelectURL closes the menu after a link was chosen.
func NavSelectURL(pageID string) string { return NavURL(pageID) + "/select" }

const (
	toneTransparent = "text-white"
	toneOpaque      = "text-brand-primary"
)

// themed sets the class list of an element whose look follows the bar
// theme. Both variants are carried as data attributes so site.js can switch
// them when no page session drives the bar.
func themed(base, transparent, opaque string, isOpaque bool) g.Node {
	current := transparent
	if isOpaque {
		current = opaque
	}
	return g.Group([]g.Node{
		h.Class(base + " " + current),
		h.Data("class-transparent", transparent),
		h.Data("class-opaque", opaque),
	})
}

// Navbar renders the fixed navigation bar. Without a page id (static export,
// or no free session) the bar carries no server bindings. data-version lets
// the browser drop fragments older than the one it shows.
func Navbar(site *catalog.Site, pageID string, nav navbar.Snapshot) g.Node {
	opaque := nav.Theme() == navbar.ThemeOpaque

	return h.Nav(
		h.ID(NavID),
		themed("fixed w-full z-50 transition-all duration-300", "bg-transparent py-6", "glass-nav py-3", opaque),
		h.Data("theme", string(nav.Theme())),
		h.Data("scrolled", strconv.FormatBool(nav.Scrolled)),
		h.Data("menu-open", strconv.FormatBool(nav.MenuOpen)),
		h.Data("version", strconv.FormatUint(nav.Version, 10)),
		container(
			h.Div(h.Class("flex justify-between items-center"),
				h.A(h.Href("#domov"), g.Attr("aria-label", site.Brand.LegalName),
					brandMark(site.Brand.Name, themed(brandTextClass, toneTransparent, toneOpaque, opaque)),
				),
				desktopLinks(site, opaque),
				menuToggle(pageID, nav.MenuOpen, opaque),
			),
		),
		mobileMenu(site, pageID, nav.MenuOpen),
	)
}

func desktopLinks(site *catalog.Site, opaque bool) g.Node {
	links := make([]g.Node, 0, len(site.Navigation))
	for _, l := range site.Navigation {
		links = append(links, h.A(
			h.Href(l.Href()),
			themed("text-sm font-medium hover:text-brand-accent transition-colors", toneTransparent, toneOpaque, opaque),
			g.Text(l.Label),
		))
	}

	return h.Div(h.Class("hidden md:flex items-center gap-8"),
		g.Group(links),
		h.A(
			h.Href(site.PhoneHref()),
			themed("flex items-center gap-2 px-5 py-2.5 rounded-full border text-sm font-semibold transition-all",
				"bg-white/10 border-white/20 text-white",
				"bg-brand-primary/5 border-brand-primary/10 text-brand-primary",
				opaque),
			Icon("phone", "w-4 h-4"),
			g.Text(site.Contact.PhoneDisplay),
		),
		h.A(
			h.Href(ContactAnchor),
			h.Class("bg-brand-accent hover:bg-brand-accent/90 text-white px-6 py-2.5 rounded-full text-sm font-semibold shadow-lg shadow-brand-accent/20 transition-all"),
			g.Text(site.Hero.CTA),
		),
	)
}

func menuToggle(pageID string, open, opaque bool) g.Node {
	icon, label := "menu", "Odpri meni"
	if open {
		icon, label = "x", "Zapri meni"
	}

	return h.Button(
		h.ID("menu-toggle"),
		h.Type("button"),
		themed("md:hidden p-2", toneTransparent, toneOpaque, opaque),
		g.Attr("aria-controls", "mobile-menu"),
		g.Attr("aria-expanded", strconv.FormatBool(open)),
		g.Attr("aria-label", label),
		g.If(pageID != "", g.Group([]g.Node{
			hx.Post(NavMenuURL(pageID)),
			hx.Target("#" + NavID),
			hx.Swap("outerHTML"),
		})),
		Icon(icon, "w-7 h-7"),
	)
}

func mobileMenu(site *catalog.Site, pageID string, open bool) g.Node {
	links := make([]g.Node, 0, len(site.Navigation))
	for _, l := range site.Navigation {
		links = append(links, h.A(
			h.Href(l.Href()),
			h.Class("text-lg font-medium text-brand-primary"),
			h.Data("section", l.Section),
			g.If(pageID != "", g.Group([]g.Node{
				hx.Post(NavSelectURL(pageID)),
				hx.Target("#" + NavID),
				hx.Swap("outerHTML"),
				g.Attr("hx-vals", fmt.Sprintf(`{"anchor":%q}`, l.Section)),
			})),
			g.Text(l.Label),
		))
	}

	return h.Div(
		h.ID("mobile-menu"),
		h.Class("md:hidden absolute top-full left-0 w-full bg-white shadow-xl border-t border-gray-100 menu-panel"),
		g.If(!open, g.Attr("hidden")),
		h.Div(h.Class("flex flex-col p-6 gap-4"),
			g.Group(links),
			h.Hr(h.Class("border-gray-100")),
			h.A(
				h.Href(site.PhoneHref()),
				h.Class("flex items-center gap-2 text-brand-primary font-semibold"),
				Icon("phone", "w-5 h-5 text-brand-accent"),
				g.Text(site.Contact.PhoneDisplay),
			),
			h.A(
				h.Href(ContactAnchor),
				h.Class("bg-brand-accent text-white text-center py-4 rounded-xl font-bold"),
				g.Text(site.Hero.CTA),
			),
		),
	)
}
