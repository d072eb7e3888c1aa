//go:build unit

package shell_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/infrastructure/repositories/shell"
)

func TestShellRepositoryRun(t *testing.T) {
	t.Parallel()

	t.Run("should capture stdout and stderr separately", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()

		// when
		result, err := repo.Run(context.Background(), "echo out; echo err >&2", entities.ShellOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "err\n", result.Stderr)
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("should return the exit code and an ExitError on failure", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()

		// when
		result, err := repo.Run(context.Background(), "echo partial; echo boom >&2; exit 3", entities.ShellOptions{})

		// then
		require.Error(t, err)
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
		require.NotNil(t, result)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "partial\n", result.Stdout)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("should cap stderr in the error message", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()
		command := "head -c 2000 /dev/zero | tr '\\0' 'x' >&2; exit 1"

		// when
		result, err := repo.Run(context.Background(), command, entities.ShellOptions{})

		// then
		require.Error(t, err)
		assert.Len(t, result.Stderr, 2000)
		assert.Less(t, len(err.Error()), 700)
	})

	t.Run("should run in the given directory with extra environment", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()
		dir := t.TempDir()

		// when
		result, err := repo.Run(context.Background(), "pwd; echo \"$RELEASEKIT_GREETING\"", entities.ShellOptions{
			Dir: dir,
			Env: []string{"RELEASEKIT_GREETING=hello"},
		})

		// then
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
		require.Len(t, lines, 2)
		resolved, evalErr := filepath.EvalSymlinks(dir)
		require.NoError(t, evalErr)
		assert.Equal(t, resolved, lines[0])
		assert.Equal(t, "hello", lines[1])
	})

	t.Run("should return ErrEmptyCommand for a blank command", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()

		// when
		result, err := repo.Run(context.Background(), "   ", entities.ShellOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrEmptyCommand)
		assert.Nil(t, result)
	})

	t.Run("should fail to start in a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()
		dir := filepath.Join(t.TempDir(), "does-not-exist")

		// when
		result, err := repo.Run(context.Background(), "true", entities.ShellOptions{Dir: dir})

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to start")
	})

	t.Run("should kill the child when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		repo := shell.NewShellRepository()
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		started := time.Now()

		// when
		_, err := repo.Run(ctx, "sleep 10", entities.ShellOptions{})

		// then
		require.Error(t, err)
		assert.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
		assert.Less(t, time.Since(started), 8*time.Second)
	})
}
