// Package modules contains the self-contained features of the site.
//
// Each subdirectory is a module implementing `module.Module`. Modules are
// listed in `internal/server/kernel.go` and booted by the server at startup.
package modules
