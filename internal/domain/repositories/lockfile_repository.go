package repositories

import "context"

// LockfileRepository loads the raw text of a pinned-requirements listing.
type LockfileRepository interface {
	// Read returns the contents of path. The path "-" reads standard input.
	Read(ctx context.Context, path string) (string, error)
}
