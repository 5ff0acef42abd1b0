package memory

import (
	"context"
	"sync"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore for testing.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.SearchRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save stores a search record.
func (s *HistoryStore) Save(_ context.Context, record *domain.SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

// List returns the most recent records, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.SearchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SearchRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Clear deletes all records.
func (s *HistoryStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.records)
	s.records = nil
	return n, nil
}

// Close releases the underlying storage (no-op for memory store).
func (s *HistoryStore) Close() error {
	return nil
}
