package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists settings in a TOML file. Dot-notation keys map onto
// TOML tables on disk, so the file stays hand-editable:
//
//	[workspace]
//	root = "/home/user/projects"
//
//	[search]
//	limit = 50
//
//	[ignore]
//	dirs = ["generated"]
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]any
}

// NewConfigStore opens the config file under configDir, creating the
// directory when needed. If configDir is empty, defaults to ~/.quickopen.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".quickopen")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		values:   make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
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

	// TOML integers decode as int64
	switch v := s.values[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetStringSlice retrieves a string slice value by key.
func (s *ConfigStore) GetStringSlice(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// TOML arrays decode as []any
	switch v := s.values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Set stores a value and persists it immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.save()
}

// save writes the config file atomically (caller must hold lock). The
// flat key set is rebuilt into nested tables before marshalling.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(expand(s.values))
	if err != nil {
		return err
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

// Load reads the config file, replacing the in-memory values. A missing
// file leaves the store empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.values = flatten(loaded, "")
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// expand rebuilds nested tables from dot-notation keys, so
// "workspace.root" marshals under [workspace].
func expand(flat map[string]any) map[string]any {
	nested := make(map[string]any)

	for key, value := range flat {
		parts := strings.Split(key, ".")
		table := nested
		for _, part := range parts[:len(parts)-1] {
			next, ok := table[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				table[part] = next
			}
			table = next
		}
		table[parts[len(parts)-1]] = value
	}

	return nested
}

// flatten converts nested tables to dot-notation keys, the inverse of
// expand.
func flatten(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if table, ok := value.(map[string]any); ok {
			for k, v := range flatten(table, fullKey) {
				flat[k] = v
			}
		} else {
			flat[fullKey] = value
		}
	}

	return flat
}
