// Package module defines how a feature plugs into the server. The landing
// page is the only module today; the server drives every module through the
// same three phases.
package module

import (
	"context"

	"github.com/cisto/site/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module is one feature of the site.
type Module interface {
	Name() string

	// Register builds the module's handlers from core services and may
	// publish its own under module-scoped keys.
	Register(reg *registry.Registry) error

	// Boot mounts routes once every module has registered.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown runs before the HTTP server stops accepting requests.
	Shutdown(ctx context.Context) error
}

// BaseModule gives a Module no-op phases to override.
type BaseModule struct{}

func (m *BaseModule) Register(*registry.Registry) error { return nil }

func (m *BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

func (m *BaseModule) Shutdown(context.Context) error { return nil }
