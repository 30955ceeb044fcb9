// Package navbar owns the two pieces of UI state the site has: whether the
// page is scrolled past the nav threshold and whether the mobile menu is open.
package navbar

// ScrollThreshold is the vertical offset, in layout pixels, past which the
// bar switches to its opaque theme.
const ScrollThreshold = 50.0

// Theme is the visual state of the bar.
type Theme string

const (
	// ThemeTransparent is the light-on-dark bar shown over the hero.
	ThemeTransparent Theme = "transparent"
	// ThemeOpaque is the dark-on-light bar shown once the page scrolls.
	ThemeOpaque Theme = "opaque"
)

// State is the navigation bar state. The two fields are independent.
type State struct {
	Scrolled bool `json:"scrolled"`
	MenuOpen bool `json:"menu_open"`
}

// Scroll derives Scrolled from a viewport offset.
func (s State) Scroll(offset float64) State {
	s.Scrolled = offset > ScrollThreshold
	return s
}

// ToggleMenu flips the mobile menu.
func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// SelectLink closes the mobile menu, whatever its previous state.
func (s State) SelectLink() State {
	s.MenuOpen = false
	return s
}

// Theme reports which visual theme the bar renders in.
func (s State) Theme() Theme {
	if s.Scrolled {
		return ThemeOpaque
	}
	return ThemeTransparent
}

// Snapshot is a State stamped with the controller version that produced it.
// Versions only grow within one page load, so a client holding version n
// can drop any fragment rendered from an older snapshot.
type Snapshot struct {
	State
	Version uint64 `json:"version"`
}
