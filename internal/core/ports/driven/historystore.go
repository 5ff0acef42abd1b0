package driven

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// HistoryStore persists search history records.
type HistoryStore interface {
	// Save stores a search record.
	Save(ctx context.Context, record *domain.SearchRecord) error

	// List returns the most recent records, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]domain.SearchRecord, error)

	// Clear deletes all records and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// Close releases the underlying storage.
	Close() error
}
