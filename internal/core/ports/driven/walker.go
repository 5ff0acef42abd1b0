package driven

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// WorkspaceWalker performs a bounded traversal of the filesystem under a
// search root and returns the file entries that match the query.
//
// Implementations must honour the ignore policy they were constructed with,
// absorb per-entry failures (unreadable directories yield no entries), stop
// once limit entries have been collected, and never revisit a directory or
// descend past the traversal depth bound. Results are returned in traversal
// order; ranking is the caller's concern.
type WorkspaceWalker interface {
	// Walk traverses root and returns at most limit matching entries.
	// Returns domain.ErrInvalidRoot if root does not exist or is not a
	// directory.
	Walk(ctx context.Context, root, query string, limit int) ([]domain.FileEntry, error)
}
