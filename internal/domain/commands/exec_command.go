package commands

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// Exec is the interface for the exec command.
type Exec interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ExecOptions) (*entities.ShellResult, error)
}

// ExecOptions holds runtime options for the exec command.
type ExecOptions struct {
	Command string
	Dir     string   // Overrides settings.Shell.Dir when set
	Env     []string // Appended after settings.Shell.Env
}

// ExecCommand runs one shell command with the configured defaults.
type ExecCommand struct {
	shellRepository repositories.ShellRepository
}

// NewExecCommand creates a new ExecCommand.
func NewExecCommand(shellRepository repositories.ShellRepository) *ExecCommand {
	return &ExecCommand{shellRepository: shellRepository}
}

// Execute runs opts.Command with the configured shell dir and env, letting opts override them.
func (it *ExecCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ExecOptions,
) (*entities.ShellResult, error) {
	dir := settings.Shell.Dir
	if opts.Dir != "" {
		dir = opts.Dir
	}

	env := make([]string, 0, len(settings.Shell.Env)+len(opts.Env))
	env = append(env, settings.Shell.Env...)
	env = append(env, opts.Env...)

	return it.shellRepository.Run(ctx, opts.Command, entities.ShellOptions{
		Dir: dir,
		Env: env,
	})
}
