package components

import (
	"fmt"

	"github.com/cisto/site/internal/catalog"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer is the contact section at the bottom of the page.
func Footer(site *catalog.Site, year int) g.Node {
	f := site.Footer

	socials := make([]g.Node, 0, len(f.Socials))
	for _, s := range f.Socials {
		socials = append(socials, h.Span(
			h.Class("w-10 h-10 rounded-full bg-white/5 flex items-center justify-center text-xs font-bold hover:bg-brand-accent transition-colors"),
			g.Text(s),
		))
	}

	quick := make([]g.Node, 0, len(f.QuickLinks))
	for _, l := range f.QuickLinks {
		quick = append(quick, h.Li(h.A(
			h.Href(l.Href()),
			h.Class("text-white/60 hover:text-brand-accent transition-colors"),
			g.Text(l.Label),
		)))
	}

	hours := make([]g.Node, 0, len(f.Hours))
	for _, oh := range f.Hours {
		tone := "text-white"
		if oh.Closed {
			tone = "text-brand-accent"
		}
		hours = append(hours, h.Li(h.Class("flex justify-between gap-4"),
			h.Span(h.Class("text-white/60"), g.Text(oh.Days)),
			h.Span(h.Class("font-medium "+tone), g.Text(oh.Time)),
		))
	}

	return h.Footer(
		h.ID(catalog.SectionContact),
		h.Class("bg-brand-primary text-white pt-20 pb-10"),
		container(
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-4 gap-12 mb-16"),
				h.Div(
					brandMark(site.Brand.Name, h.Class(brandTextClass+" text-white")),
					h.P(h.Class("text-white/60 text-sm leading-relaxed my-6"), g.Text(site.Brand.Blurb)),
					h.Div(h.Class("flex gap-3"), g.Group(socials)),
				),
				h.Div(
					footerHeading(f.Labels.QuickLinks),
					h.Ul(h.Class("space-y-3 text-sm"), g.Group(quick)),
				),
				h.Div(
					footerHeading(f.Labels.Contact),
					h.Ul(h.Class("space-y-4 text-sm"),
						contactRow("phone", f.Labels.Call, site.PhoneHref(), site.Contact.PhoneDisplay),
						contactRow("mail", f.Labels.Write, "mailto:"+site.Contact.Email, site.Contact.Email),
						contactRow("map-pin", f.Labels.Location, "", site.Contact.Address),
					),
				),
				h.Div(
					footerHeading(f.Labels.Hours),
					h.Ul(h.Class("space-y-3 text-sm"), g.Group(hours)),
				),
			),
			h.Div(h.Class("pt-8 border-t border-white/10 flex flex-col md:flex-row justify-between gap-4 text-xs text-white/40"),
				h.P(h.Data("copyright", ""), g.Text(Copyright(site, year))),
				h.Div(h.Class("flex gap-6"),
					h.Span(g.Text(f.Privacy)),
					h.Span(g.Text(f.Cookies)),
				),
			),
		),
	)
}

// Copyright is the footer's legal line.
func Copyright(site *catalog.Site, year int) string {
	line := fmt.Sprintf("© %d %s", year, site.Brand.LegalName)
	if site.Footer.Rights != "" {
		line += " " + site.Footer.Rights
	}
	return line
}

func footerHeading(text string) g.Node {
	return h.H5(h.Class("font-bold mb-6"), g.Text(text))
}

func contactRow(icon, label, href, value string) g.Node {
	var target g.Node = h.P(h.Class("font-medium"), g.Text(value))
	if href != "" {
		target = h.A(h.Href(href), h.Class("font-medium hover:text-brand-accent transition-colors"), g.Text(value))
	}
	return h.Li(h.Class("flex gap-3"),
		Icon(icon, "w-5 h-5 text-brand-accent shrink-0"),
		h.Div(
			h.P(h.Class("text-white/40 text-xs"), g.Text(label)),
			target,
		),
	)
}
