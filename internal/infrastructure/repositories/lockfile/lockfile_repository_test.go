//go:build unit

package lockfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekit/internal/infrastructure/repositories/lockfile"
)

func TestLockfileRepositoryRead(t *testing.T) {
	t.Parallel()

	t.Run("should read a file from disk", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("idna==3.10\n# via anyio\n"), 0o600))
		repo := lockfile.NewLockfileRepositoryWithStdin(strings.NewReader(""))

		// when
		text, err := repo.Read(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "idna==3.10\n# via anyio\n", text)
	})

	t.Run("should read stdin for the dash path", func(t *testing.T) {
		t.Parallel()

		// given
		repo := lockfile.NewLockfileRepositoryWithStdin(strings.NewReader("click==8.1.7\n"))

		// when
		text, err := repo.Read(context.Background(), "-")

		// then
		require.NoError(t, err)
		assert.Equal(t, "click==8.1.7\n", text)
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := lockfile.NewLockfileRepositoryWithStdin(strings.NewReader(""))

		// when
		_, err := repo.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read lockfile")
	})

	t.Run("should return the context error when cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		repo := lockfile.NewLockfileRepositoryWithStdin(strings.NewReader(""))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := repo.Read(ctx, "-")

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}
