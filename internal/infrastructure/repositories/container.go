package repositories

import (
	"go.uber.org/dig"

	gitRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/git"
	jsRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/javascript"
	lockRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/lockfile"
	plainRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/plain"
	pyRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/python"
	shellRepo "github.com/rios0rios0/releasekit/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register version registry with all sources, highest priority first
	if err := container.Provide(func() *VersionRegistry {
		reg := NewVersionRegistry()
		reg.Register(jsRepo.NewVersionRepository())
		reg.Register(pyRepo.NewVersionRepository())
		reg.Register(plainRepo.NewVersionRepository())
		reg.Register(gitRepo.NewVersionRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(shellRepo.NewShellRepository); err != nil {
		return err
	}
	if err := container.Provide(lockRepo.NewLockfileRepository); err != nil {
		return err
	}

	return nil
}
