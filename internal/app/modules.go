package app

import (
	"github.com/hlabs/hlabs-web/internal/module"
	"github.com/hlabs/hlabs-web/internal/modules/landing"
	"github.com/hlabs/hlabs-web/internal/modules/terminalos"
)

// Mount pairs a module with the route prefix the server mounts it under.
type Mount struct {
	Prefix string
	Module module.Module
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []Mount {
	return []Mount{
		{Prefix: "", Module: landing.New(landingDeps(deps))},
		{Prefix: "/terminal", Module: terminalos.New()},
	}
}
