package memory

import (
	"sync"

	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for
// testing.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// GetString retrieves a string value by key.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if str, ok := s.values[key].(string); ok {
		return str
	}
	return ""
}

// GetInt retrieves an integer value by key.
func (s *ConfigStore) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch v := s.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// GetStringSlice retrieves a string slice value by key.
func (s *ConfigStore) GetStringSlice(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if slice, ok := s.values[key].([]string); ok {
		return slice
	}
	return nil
}

// Set stores a value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
