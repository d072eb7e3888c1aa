package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Controllers fall back to these when no config file is found
	return container.Provide(NewDefaultSettings)
}
