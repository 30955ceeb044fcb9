// Package landing mounts the landing page and the endpoints that keep its
// navigation bar live.
package landing

import (
	"context"

	"github.com/cisto/site/internal/handlers"
	"github.com/cisto/site/internal/middleware"
	"github.com/cisto/site/internal/module"
	"github.com/cisto/site/internal/registry"
	"github.com/labstack/echo/v4"
)

// HandlerKey exposes the page handler to other modules and tests.
var HandlerKey = registry.Key[*handlers.PageHandler]("landing.handler")

// Module is the landing page feature.
type Module struct {
	module.BaseModule
}

// New returns the landing module.
func New() *Module { return &Module{} }

func (m *Module) Name() string { return "landing" }

// Register builds the page handler from the core services.
func (m *Module) Register(reg *registry.Registry) error {
	metrics := registry.MustGet(reg, registry.MetricsKey)
	h := handlers.NewPageHandler(handlers.Dependencies{
		Catalog:  registry.MustGet(reg, registry.CatalogKey),
		Sessions: registry.MustGet(reg, registry.SessionsKey),
		Bus:      registry.MustGet(reg, registry.BusKey),
		Renderer: registry.MustGet(reg, registry.RendererKey),
		Metrics:  metrics,
	})
	registry.Set(reg, HandlerKey, h)
	return nil
}

// Boot mounts the routes. Tap endpoints are rate limited per client.
func (m *Module) Boot(_ context.Context, router *echo.Group, reg *registry.Registry) error {
	h := registry.MustGet(reg, HandlerKey)
	limit := middleware.RateLimiter(reg.Config().GetUIRateLimit())

	router.GET("/", h.HomeGet)

	nav := router.Group("/ui/nav/:page")
	nav.GET("", h.NavGet)
	nav.POST("/menu", h.NavMenu, limit)
	nav.POST("/select", h.NavSelect, limit)

	router.GET("/ws/page/:page", h.Viewport)
	return nil
}
