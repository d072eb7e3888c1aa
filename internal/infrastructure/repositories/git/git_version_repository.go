package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

const sourceName = "git"

// GitVersionRepository reports the highest semver tag of a Git repository.
type GitVersionRepository struct{}

// NewVersionRepository creates the git tag version source.
func NewVersionRepository() repositories.VersionRepository {
	return &GitVersionRepository{}
}

func (it *GitVersionRepository) Name() string { return sourceName }

// Detect returns true if dir is inside a Git working tree.
func (it *GitVersionRepository) Detect(dir string) bool {
	_, err := open(dir)
	return err == nil
}

// ReadVersion lists every tag, keeps the valid semver ones and returns the newest.
func (it *GitVersionRepository) ReadVersion(ctx context.Context, dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open git repository: %w", err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var versions []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		name := ref.Name().Short()
		if entities.IsSemver(name) {
			versions = append(versions, name)
		} else {
			logger.Debugf("[version] Skipping non-semver tag %q", name)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to read tags: %w", err)
	}

	if len(versions) == 0 {
		return "", errors.New("repository has no semver tags")
	}

	entities.SortVersionsDescending(versions)
	return entities.NormalizeVersion(versions[0]), nil
}

func open(dir string) (*gogit.Repository, error) {
	return gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
}
