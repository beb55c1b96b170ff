package app

import (
	"log/slog"

	"github.com/nfrund/ecoshare/internal/activity"
	"github.com/nfrund/ecoshare/internal/module"
)

// Dependencies holds what the entrypoint hands to the modules directly. Shared services
// such as the bus are looked up in the registry when a module boots.
type Dependencies struct {
	Logger *slog.Logger
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		activity.New(activity.Dependencies{Logger: deps.Logger}),
	}
}
