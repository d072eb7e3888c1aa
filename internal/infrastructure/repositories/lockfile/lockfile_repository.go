package lockfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// stdinPath is the conventional name for standard input.
const stdinPath = "-"

// LockfileRepository reads lockfiles from disk or standard input.
type LockfileRepository struct {
	stdin io.Reader
}

// NewLockfileRepository creates a reader bound to the process stdin.
func NewLockfileRepository() repositories.LockfileRepository {
	return &LockfileRepository{stdin: os.Stdin}
}

// NewLockfileRepositoryWithStdin creates a reader whose "-" path reads from stdin.
func NewLockfileRepositoryWithStdin(stdin io.Reader) *LockfileRepository {
	return &LockfileRepository{stdin: stdin}
}

// Read returns the contents of path, or of stdin when path is "-".
func (it *LockfileRepository) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if path == stdinPath {
		data, err := io.ReadAll(it.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read lockfile %q: %w", path, err)
	}
	return string(data), nil
}
