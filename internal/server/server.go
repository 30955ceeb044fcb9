package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/config"
	"github.com/cisto/site/internal/handlers"
	"github.com/cisto/site/internal/metrics"
	appmiddleware "github.com/cisto/site/internal/middleware"
	"github.com/cisto/site/internal/module"
	"github.com/cisto/site/internal/pubsub"
	"github.com/cisto/site/internal/registry"
	"github.com/cisto/site/internal/rendering"
	"github.com/cisto/site/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Catalog  *catalog.Store
	Sessions *session.Registry
	Bus      *pubsub.WatermillBridge
	Metrics  *metrics.Registry
	Registry *registry.Registry

	modules []module.Module
}

// Dependencies are what the caller provides; everything else is built by New.
type Dependencies struct {
	Config  config.Provider
	Catalog *catalog.Store
	// Modules defaults to AppModules().
	Modules []module.Module
}

// New wires the server: event bus, page sessions, metrics, middleware, the
// central error handler and every module's routes.
func New(deps Dependencies) (*Server, error) {
	cfg := deps.Config
	if deps.Catalog == nil {
		return nil, fmt.Errorf("server: catalog is required")
	}
	if deps.Modules == nil {
		deps.Modules = AppModules()
	}

	bus := pubsub.NewWatermillBridge()
	m := metrics.NewRegistry()
	sessions := session.NewRegistry(bus, session.Options{
		TTL:         cfg.GetSessionTTL(),
		MaxSessions: cfg.GetMaxSessions(),
		Hooks: session.Hooks{
			OnOpen:  m.SessionOpened,
			OnClose: m.SessionClosed,
		},
	})
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())
	e.Use(m.Middleware())
	setupErrorHandling(e)

	reg := registry.New(cfg)
	registry.Set(reg, registry.CatalogKey, deps.Catalog)
	registry.Set(reg, registry.SessionsKey, sessions)
	registry.Set[pubsub.Bus](reg, registry.BusKey, bus)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)
	registry.Set(reg, registry.MetricsKey, m)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Catalog:  deps.Catalog,
		Sessions: sessions,
		Bus:      bus,
		Metrics:  m,
		Registry: reg,
		modules:  deps.Modules,
	}
	s.RegisterRoutes()

	for _, mod := range s.modules {
		if err := mod.Register(reg); err != nil {
			return nil, fmt.Errorf("register module %s: %w", mod.Name(), err)
		}
	}
	for _, mod := range s.modules {
		if err := mod.Boot(context.Background(), e.Group(""), reg); err != nil {
			return nil, fmt.Errorf("boot module %s: %w", mod.Name(), err)
		}
		slog.Debug("Module booted", "module", mod.Name())
	}

	return s, nil
}
