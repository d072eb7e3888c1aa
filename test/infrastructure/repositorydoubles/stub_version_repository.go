//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// SpyVersionRepository implements repositories.VersionRepository as a configurable spy.
type SpyVersionRepository struct {
	// --- identity ---
	SourceName string

	// --- Detect ---
	DetectResult bool
	DetectedDirs []string

	// --- ReadVersion ---
	Version  string
	ReadErr  error
	ReadDirs []string
}

var _ repositories.VersionRepository = (*SpyVersionRepository)(nil)

func (s *SpyVersionRepository) Name() string { return s.SourceName }

func (s *SpyVersionRepository) Detect(dir string) bool {
	s.DetectedDirs = append(s.DetectedDirs, dir)
	return s.DetectResult
}

func (s *SpyVersionRepository) ReadVersion(_ context.Context, dir string) (string, error) {
	s.ReadDirs = append(s.ReadDirs, dir)
	return s.Version, s.ReadErr
}
