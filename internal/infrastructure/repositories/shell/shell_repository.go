package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

const (
	// maxStderrLen caps how much stderr is copied into an error message.
	maxStderrLen = 500
	waitDelay    = 5 * time.Second
)

// ShellRepository implements repositories.ShellRepository with os/exec.
type ShellRepository struct {
	shell string
}

// NewShellRepository picks bash when available and falls back to sh.
func NewShellRepository() repositories.ShellRepository {
	return &ShellRepository{shell: findShell()}
}

// Run spawns the shell with "-c command", captures stdout and stderr
// separately, and waits for the child to exit.
func (it *ShellRepository) Run(
	ctx context.Context,
	command string,
	opts entities.ShellOptions,
) (*entities.ShellResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, entities.ErrEmptyCommand
	}

	// #nosec G204 -- running the caller's command is the whole point
	cmd := exec.CommandContext(ctx, it.shell, "-c", command)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if logger.IsLevelEnabled(logger.DebugLevel) {
		debugWriter := logger.WithField("stream", "stderr").WriterLevel(logger.DebugLevel)
		defer debugWriter.Close()
		cmd.Stderr = io.MultiWriter(&stderr, debugWriter)
	}
	// exec copies both streams on its own goroutines; a grandchild holding
	// a pipe open past cancellation gets waitDelay before the pipes close.
	cmd.WaitDelay = waitDelay

	logger.Debugf("[shell] Running %q (dir: %q)", command, opts.Dir)
	waitErr := cmd.Run()

	result := &entities.ShellResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if waitErr != nil {
		if cmd.ProcessState == nil {
			return nil, fmt.Errorf("failed to start %q: %w", command, waitErr)
		}
		return result, commandError(command, waitErr, result.Stderr)
	}

	logger.Debugf("[shell] %q exited with code %d", command, result.ExitCode)
	return result, nil
}

// commandError wraps the wait error, keeping *exec.ExitError reachable through
// errors.As, with the trimmed stderr tail appended to the message.
func commandError(command string, waitErr error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if len(msg) > maxStderrLen {
		msg = msg[len(msg)-maxStderrLen:]
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && msg != "" {
		return fmt.Errorf("command %q failed: %w: %s", command, waitErr, msg)
	}
	return fmt.Errorf("command %q failed: %w", command, waitErr)
}

func findShell() string {
	for _, name := range []string{"bash", "sh"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return "/bin/sh"
}
