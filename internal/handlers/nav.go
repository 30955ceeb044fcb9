package handlers

import (
	"net/http"

	"github.com/cisto/site/internal/navbar"
	"github.com/cisto/site/internal/session"
	"github.com/cisto/site/web/src/templates/components"
	"github.com/labstack/echo/v4"
)

// NavGet returns the current navigation bar of a page session.
func (h *PageHandler) NavGet(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}
	return h.renderNav(c, s, s.Nav.Snapshot())
}

// NavMenu toggles the mobile menu and returns the updated bar.
func (h *PageHandler) NavMenu(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}
	nav := s.Nav.ToggleMenu()
	h.metrics.NavEvent("menu")
	return h.renderNav(c, s, nav)
}

// NavSelect closes the mobile menu after one of its links was tapped. The
// browser follows the anchor itself.
func (h *PageHandler) NavSelect(c echo.Context) error {
	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown section").SetInternal(err)
	}

	s, err := h.lookup(c)
	if err != nil {
		return err
	}
	nav := s.Nav.SelectLink()
	h.metrics.NavEvent("select")
	return h.renderNav(c, s, nav)
}

// renderNav answers a tap with the bar it produced. The same state may also
// reach the page over the viewport socket; the fragment's version lets the
// browser keep whichever is newer.
func (h *PageHandler) renderNav(c echo.Context, s *session.Session, nav navbar.Snapshot) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return h.renderer.RenderFragment(c, http.StatusOK, components.Navbar(h.catalog.Site(), s.ID, nav))
}
