//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// StubLockfileRepository serves lockfile contents from memory. It is safe for
// the concurrent reads the map command performs.
type StubLockfileRepository struct {
	Contents map[string]string // path -> content
	ReadErrs map[string]error  // path -> error

	mu        sync.Mutex
	ReadPaths []string
}

var _ repositories.LockfileRepository = (*StubLockfileRepository)(nil)

func (s *StubLockfileRepository) Read(_ context.Context, path string) (string, error) {
	s.mu.Lock()
	s.ReadPaths = append(s.ReadPaths, path)
	s.mu.Unlock()

	if err, ok := s.ReadErrs[path]; ok {
		return "", err
	}
	content, ok := s.Contents[path]
	if !ok {
		return "", fmt.Errorf("lockfile %q not found", path)
	}
	return content, nil
}
