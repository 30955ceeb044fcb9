package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/middleware"
	"github.com/cisto/site/internal/pubsub"
	"github.com/cisto/site/internal/rendering"
	"github.com/cisto/site/internal/session"
	"github.com/cisto/site/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// SiteSource yields the current catalog. catalog.Store satisfies it.
type SiteSource interface {
	Site() *catalog.Site
}

// Recorder receives page and navigation events, e.g. for metrics.
type Recorder interface {
	PageRendered()
	NavEvent(kind string)
}

type nopRecorder struct{}

func (nopRecorder) PageRendered()   {}
func (nopRecorder) NavEvent(string) {}

// Dependencies are the collaborators of PageHandler.
type Dependencies struct {
	Catalog  SiteSource
	Sessions *session.Registry
	Bus      pubsub.Publisher
	Renderer rendering.Renderer
	Metrics  Recorder
	Now      func() time.Time
}

// PageHandler serves the landing page and the endpoints that drive its
// navigation bar.
type PageHandler struct {
	catalog  SiteSource
	sessions *session.Registry
	bus      pubsub.Publisher
	renderer rendering.Renderer
	metrics  Recorder
	now      func() time.Time
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(deps Dependencies) *PageHandler {
	if deps.Metrics == nil {
		deps.Metrics = nopRecorder{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}
	return &PageHandler{
		catalog:  deps.Catalog,
		sessions: deps.Sessions,
		bus:      deps.Bus,
		renderer: deps.Renderer,
		metrics:  deps.Metrics,
		now:      deps.Now,
	}
}

// HomeGet renders the landing page and opens the page session that owns its
// navigation bar. When every session slot is held by a connected page the
// page is served without a session and the nav runs in the browser alone.
func (h *PageHandler) HomeGet(c echo.Context) error {
	log := middleware.FromContext(c.Request().Context())

	data := pages.HomeData{
		Site: h.catalog.Site(),
		Year: h.now().Year(),
	}

	s, err := h.sessions.Open()
	switch {
	case errors.Is(err, session.ErrClosed):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "server is shutting down")
	case errors.Is(err, session.ErrFull):
		log.Warn("Page session limit reached, serving static navigation")
	case err != nil:
		return err
	default:
		data.PageID = s.ID
		data.Nav = s.Nav.Snapshot()
	}

	log.Debug("Rendering landing page", "page_id", data.PageID)

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	if err := c.Render(http.StatusOK, "", pages.Home(data)); err != nil {
		if s != nil {
			h.sessions.Close(s.ID, session.ReasonDisconnect)
		}
		return err
	}
	h.metrics.PageRendered()
	return nil
}

// lookup resolves the :page path parameter to a live session.
func (h *PageHandler) lookup(c echo.Context) (*session.Session, error) {
	s, ok := h.sessions.Get(c.Param("page"))
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown page session")
	}
	return s, nil
}
