package python

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	toml "github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

const (
	sourceName    = "python"
	pyprojectFile = "pyproject.toml"
)

// pyproject holds the two places a pyproject.toml may declare its version:
// PEP 621 [project] and Poetry's [tool.poetry].
type pyproject struct {
	Project struct {
		Version string   `toml:"version"`
		Dynamic []string `toml:"dynamic"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// PythonVersionRepository reads the version declared in pyproject.toml.
type PythonVersionRepository struct{}

// NewVersionRepository creates the pyproject.toml version source.
func NewVersionRepository() repositories.VersionRepository {
	return &PythonVersionRepository{}
}

func (it *PythonVersionRepository) Name() string { return sourceName }

// Detect returns true if dir has a pyproject.toml.
func (it *PythonVersionRepository) Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, pyprojectFile))
	return err == nil
}

// ReadVersion returns [project].version, falling back to [tool.poetry].version.
func (it *PythonVersionRepository) ReadVersion(_ context.Context, dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, pyprojectFile))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pyprojectFile, err)
	}

	var project pyproject
	if unmarshalErr := toml.Unmarshal(data, &project); unmarshalErr != nil {
		return "", fmt.Errorf("failed to parse %s: %w", pyprojectFile, unmarshalErr)
	}

	version := project.Project.Version
	if version == "" {
		version = project.Tool.Poetry.Version
	}
	if version == "" && slices.Contains(project.Project.Dynamic, "version") {
		logger.Debugf("[version] %s computes its version at build time", pyprojectFile)
		return "", errors.New(pyprojectFile + " declares a dynamic version")
	}
	if version == "" {
		return "", errors.New(pyprojectFile + " has no version")
	}

	return entities.NormalizeVersion(version), nil
}
