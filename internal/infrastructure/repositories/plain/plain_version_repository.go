package plain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

const (
	sourceName  = "plain"
	versionFile = "VERSION"
)

// PlainVersionRepository reads a bare VERSION file.
type PlainVersionRepository struct{}

// NewVersionRepository creates the VERSION file source.
func NewVersionRepository() repositories.VersionRepository {
	return &PlainVersionRepository{}
}

func (it *PlainVersionRepository) Name() string { return sourceName }

func (it *PlainVersionRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, versionFile))
	return err == nil
}

func (it *PlainVersionRepository) ReadVersion(_ context.Context, dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, versionFile))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", versionFile, err)
	}

	version := entities.NormalizeVersion(entities.ParseVersionFile(string(data)))
	if version == "" {
		return "", errors.New(versionFile + " is empty")
	}
	return version, nil
}
