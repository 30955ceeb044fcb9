package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Effect names an entrance animation. The browser plays it the first time
// the element enters the viewport and never again during that page load.
type Effect string

const (
	// Rise fades the element in while sliding it up.
	Rise Effect = "rise"
	// Zoom fades the element in from slightly smaller.
	Zoom Effect = "zoom"
	// Fade only fades.
	Fade Effect = "fade"
)

// StaggerStep is the delay added per position in a grid.
const StaggerStep = 100

// Reveal marks an element for its entrance animation. index staggers
// elements of the same grid.
func Reveal(effect Effect, index int) g.Node {
	if index < 0 {
		index = 0
	}
	return g.Group([]g.Node{
		h.Data("reveal", string(effect)),
		g.Attr("style", fmt.Sprintf("--reveal-delay: %dms", index*StaggerStep)),
	})
}
