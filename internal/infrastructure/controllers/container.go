package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewMapController,
		NewVersionController,
		NewShuffleController,
		NewExecController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	mapController *MapController,
	versionController *VersionController,
	shuffleController *ShuffleController,
	execController *ExecController,
) *[]entities.Controller {
	return &[]entities.Controller{
		mapController,
		versionController,
		shuffleController,
		execController,
	}
}
