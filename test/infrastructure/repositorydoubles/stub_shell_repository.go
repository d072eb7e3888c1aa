//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// SpyShellRepository implements repositories.ShellRepository as a configurable spy.
type SpyShellRepository struct {
	// --- Run ---
	Result *entities.ShellResult
	RunErr error
	// spy: calls received
	RunCalls []RunCall
}

// RunCall records a single invocation of Run.
type RunCall struct {
	Command string
	Opts    entities.ShellOptions
}

var _ repositories.ShellRepository = (*SpyShellRepository)(nil)

func (s *SpyShellRepository) Run(
	_ context.Context,
	command string,
	opts entities.ShellOptions,
) (*entities.ShellResult, error) {
	s.RunCalls = append(s.RunCalls, RunCall{Command: command, Opts: opts})
	return s.Result, s.RunErr
}
