package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// ExecController handles the "exec" subcommand.
type ExecController struct {
	command  commands.Exec
	defaults *entities.Settings
}

// NewExecController creates a new ExecController.
func NewExecController(command commands.Exec, defaults *entities.Settings) *ExecController {
	return &ExecController{command: command, defaults: defaults}
}

// GetBind returns the Cobra command metadata for the exec controller.
func (it *ExecController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "exec -- <command> [arg...]",
		Short: "Run a shell command and print its output",
		Long: `Run a command through the system shell with the configured shell.dir and
shell.env, print its stdout and stderr, and exit with its exit code.

A single argument is passed to the shell as written, so pipes and redirects
work:  releasekit exec -- "make test | tee test.log"
Several arguments are quoted one by one and run as a plain command line:
releasekit exec -- printf '%s\n' "a b"`,
	}
}

// AddFlags adds the exec-specific flags to the given Cobra command.
func (it *ExecController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "Working directory (default from config, else current)")
	cmd.Flags().StringArray("env", nil, "Extra KEY=VALUE environment entries (repeatable)")
}

// Execute runs the command. Output is written even when the command fails.
func (it *ExecController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir, _ := cmd.Flags().GetString("dir")
	env, _ := cmd.Flags().GetStringArray("env")

	settings, err := loadSettings(cmd, it.defaults)
	if err != nil {
		return err
	}

	result, runErr := it.command.Execute(ctx, settings, commands.ExecOptions{
		Command: commandLine(args),
		Dir:     dir,
		Env:     env,
	})
	if result != nil {
		_, _ = cmd.OutOrStdout().Write([]byte(result.Stdout))
		_, _ = cmd.ErrOrStderr().Write([]byte(result.Stderr))
	}
	return runErr
}

// commandLine keeps a single argument as a shell script and quotes several
// arguments so the shell sees them exactly as given.
func commandLine(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return entities.ShellJoin(args)
}
