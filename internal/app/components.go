package app

import (
	"go.trai.ch/digest/internal/adapters/storage" //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	tiers  storage.Tiers
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, tiers storage.Tiers) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		tiers:  tiers,
	}
}

// Close releases the persistent cache tiers.
func (c *Components) Close() error {
	return c.tiers.Close()
}
