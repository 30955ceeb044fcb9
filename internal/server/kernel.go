package server

import (
	"github.com/cisto/site/internal/module"
	"github.com/cisto/site/internal/modules/landing"
)

// AppModules is the central registry of all application modules.
// The server iterates over this slice to register and boot each module.
func AppModules() []module.Module {
	return []module.Module{
		landing.New(),
	}
}
