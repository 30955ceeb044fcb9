package components

import (
	"github.com/cisto/site/internal/catalog"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MobileCTA is the floating call button shown on small screens only.
func MobileCTA(site *catalog.Site) g.Node {
	return h.Div(h.Class("md:hidden fixed bottom-6 inset-x-6 z-40"),
		h.A(
			h.ID("mobile-cta"),
			h.Href(site.PhoneHref()),
			h.Class("flex items-center justify-center gap-3 bg-brand-accent text-white py-4 rounded-full font-bold shadow-2xl shadow-brand-accent/40"),
			Icon("phone", "w-5 h-5"),
			g.Text(site.MobileCTA),
		),
	)
}
