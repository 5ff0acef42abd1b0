package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultRecentLimit caps Recent when the caller passes no limit.
const defaultRecentLimit = 20

// HistoryService records executed searches and serves them back.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
// The store parameter is optional (can be nil); without it every
// operation is a no-op.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record stores a completed search.
func (s *HistoryService) Record(ctx context.Context, root, query string, resultCount int) error {
	if s.store == nil {
		return nil
	}
	if resultCount < 0 {
		return fmt.Errorf("%w: result count must be non-negative", domain.ErrInvalidInput)
	}

	record := &domain.SearchRecord{
		ID:          uuid.NewString(),
		Root:        root,
		Query:       query,
		ResultCount: resultCount,
		ExecutedAt:  time.Now().UTC(),
	}

	logger.Debug("Recording search %s (%d results)", record.ID, resultCount)
	return s.store.Save(ctx, record)
}

// Recent returns the most recent searches, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if s.store == nil {
		return []domain.SearchRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.store.List(ctx, limit)
}

// Clear deletes the entire history.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.Clear(ctx)
}
