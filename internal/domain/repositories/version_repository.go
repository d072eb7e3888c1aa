package repositories

import "context"

// VersionRepository abstracts one place a project declares its version
// (package.json, pyproject.toml, a VERSION file, git tags).
type VersionRepository interface {
	// Name returns the source identifier (e.g. "javascript", "git").
	Name() string

	// Detect returns true if dir contains this kind of version declaration.
	Detect(dir string) bool

	// ReadVersion returns the normalized version declared in dir.
	ReadVersion(ctx context.Context, dir string) (string, error)
}
