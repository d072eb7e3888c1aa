package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	infraRepos "github.com/rios0rios0/releasekit/internal/infrastructure/repositories"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, opts VersionOptions) (*VersionResult, error)
}

// VersionOptions holds runtime options for the version command.
type VersionOptions struct {
	Dir    string
	Source string // If set, only this source is consulted
}

// VersionResult is the version found and the source that declared it.
type VersionResult struct {
	Version string
	Source  string
}

// VersionCommand reads the current package version of a project directory.
type VersionCommand struct {
	versionRegistry *infraRepos.VersionRegistry
}

// NewVersionCommand creates a new VersionCommand with the given registry.
func NewVersionCommand(versionRegistry *infraRepos.VersionRegistry) *VersionCommand {
	return &VersionCommand{versionRegistry: versionRegistry}
}

// Execute walks the sources in priority order and returns the first version
// one of them can read. A forced source is the only one consulted.
func (it *VersionCommand) Execute(ctx context.Context, opts VersionOptions) (*VersionResult, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if opts.Source != "" {
		source, err := it.versionRegistry.Get(opts.Source)
		if err != nil {
			return nil, err
		}
		if !source.Detect(dir) {
			return nil, fmt.Errorf("%w: %s source does not apply to %s", entities.ErrVersionNotFound, opts.Source, dir)
		}
		version, readErr := source.ReadVersion(ctx, dir)
		if readErr != nil {
			return nil, fmt.Errorf("[%s] %w", opts.Source, readErr)
		}
		return &VersionResult{Version: version, Source: source.Name()}, nil
	}

	for _, source := range it.versionRegistry.All() {
		if !source.Detect(dir) {
			continue
		}

		version, err := source.ReadVersion(ctx, dir)
		if err != nil {
			logger.Warnf("[version] [%s] %v (trying next source)", source.Name(), err)
			continue
		}

		logger.Debugf("[version] Found %s via %s", version, source.Name())
		return &VersionResult{Version: version, Source: source.Name()}, nil
	}

	return nil, fmt.Errorf("%w in %s (sources: %v)", entities.ErrVersionNotFound, dir, it.versionRegistry.Names())
}
