// Package registry is where the server leaves its core services (catalog,
// page sessions, bus, renderer, metrics) for feature modules to pick up
// during Register and Boot.
package registry

import (
	"fmt"
	"sync"

	"github.com/cisto/site/internal/config"
)

// Key names a service and fixes its type, so a lookup cannot return the
// wrong kind of value. Names are "owner.service", e.g. "core.sessions".
type Key[T any] string

// Registry holds services by key. Reads happen on request paths, so it is
// backed by a sync.Map.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New returns an empty registry carrying cfg.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config is the configuration the server was started with.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get returns the service stored under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustGet is Get for startup wiring: a missing core service is a bug in
// server.New, not a runtime condition.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: no service for key %q", string(key)))
	}
	return val
}
