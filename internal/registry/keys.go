package registry

import (
	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/metrics"
	"github.com/cisto/site/internal/pubsub"
	"github.com/cisto/site/internal/rendering"
	"github.com/cisto/site/internal/session"
)

// Core services, set by server.New before any module registers.
var (
	// CatalogKey is the live site content; it follows CATALOG_PATH reloads.
	CatalogKey = Key[*catalog.Store]("core.catalog")
	// SessionsKey owns one page session per page load.
	SessionsKey = Key[*session.Registry]("core.sessions")
	// BusKey carries scroll events from viewport sockets to page sessions.
	BusKey = Key[pubsub.Bus]("core.bus")
	// RendererKey renders pages and nav fragments.
	RendererKey = Key[rendering.Renderer]("core.renderer")
	// MetricsKey records page and nav events for /metrics.
	MetricsKey = Key[*metrics.Registry]("core.metrics")
)
