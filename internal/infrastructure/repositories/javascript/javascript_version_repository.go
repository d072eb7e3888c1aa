package javascript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

const (
	sourceName  = "javascript"
	packageFile = "package.json"
)

type packageManifest struct {
	Version string `json:"version"`
}

// JavaScriptVersionRepository reads the "version" field of package.json.
type JavaScriptVersionRepository struct{}

// NewVersionRepository creates the package.json version source.
func NewVersionRepository() repositories.VersionRepository {
	return &JavaScriptVersionRepository{}
}

func (it *JavaScriptVersionRepository) Name() string { return sourceName }

// Detect returns true if dir has a package.json.
func (it *JavaScriptVersionRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, packageFile))
	return err == nil
}

// ReadVersion decodes package.json and returns its version.
func (it *JavaScriptVersionRepository) ReadVersion(_ context.Context, dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, packageFile))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", packageFile, err)
	}

	var manifest packageManifest
	if unmarshalErr := json.Unmarshal(data, &manifest); unmarshalErr != nil {
		return "", fmt.Errorf("failed to parse %s: %w", packageFile, unmarshalErr)
	}

	version := entities.NormalizeVersion(manifest.Version)
	if version == "" {
		return "", errors.New(packageFile + " has no version field")
	}
	return version, nil
}
