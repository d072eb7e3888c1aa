package repositories

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// ShellRepository runs one shell command in a child process and captures its output.
type ShellRepository interface {
	// Run executes command through the system shell and waits for it to exit.
	// A non-zero exit status is returned as an error together with the result.
	Run(ctx context.Context, command string, opts entities.ShellOptions) (*entities.ShellResult, error)
}
