package app

import (
	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/hlabs/hlabs-web/internal/modules/landing"
)

// Dependencies holds the settings modules need at construction time.
// Services shared at runtime are resolved from the injector instead.
type Dependencies struct {
	Config *config.Config
}

// landingDeps creates the dependency struct for the landing module.
func landingDeps(deps Dependencies) landing.Dependencies {
	if deps.Config == nil {
		return landing.Dependencies{}
	}
	return landing.Dependencies{RateLimit: deps.Config.RateLimit}
}
