//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// StubExecCommand is a stub implementation of commands.Exec.
type StubExecCommand struct {
	ExecuteCallCount int
	Result           *entities.ShellResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ExecOptions
}

var _ commands.Exec = (*StubExecCommand)(nil)

func (s *StubExecCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ExecOptions,
) (*entities.ShellResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
