//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// StubMapCommand is a stub implementation of commands.Map.
type StubMapCommand struct {
	ExecuteCallCount int
	Result           entities.DependencyMap
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.MapOptions
}

var _ commands.Map = (*StubMapCommand)(nil)

func (s *StubMapCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.MapOptions,
) (entities.DependencyMap, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
