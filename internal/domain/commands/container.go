package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewMapCommand,
		NewVersionCommand,
		NewShuffleCommand,
		NewExecCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *MapCommand) Map {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *VersionCommand) Version {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ShuffleCommand) Shuffle {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ExecCommand) Exec {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
