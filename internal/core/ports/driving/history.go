package driving

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// HistoryService manages the search history for external actors.
type HistoryService interface {
	// Record stores a completed search. Failures are returned but callers
	// typically treat them as non-fatal.
	Record(ctx context.Context, root, query string, resultCount int) error

	// Recent returns the most recent searches, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear deletes the entire history and returns how many records were
	// removed.
	Clear(ctx context.Context) (int, error)
}
