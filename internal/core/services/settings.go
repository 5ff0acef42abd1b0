package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyWorkspaceRoot = "workspace.root"
	keySearchLimit   = "search.limit"
	keyIgnoreDirs    = "ignore.dirs"
	keyIgnoreFiles   = "ignore.files"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Workspace: domain.WorkspaceSettings{
			Root: s.configStore.GetString(keyWorkspaceRoot), // No default - empty means cwd
		},
		Search: domain.SearchSettings{
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
		Ignore: domain.IgnoreSettings{
			Dirs:  s.configStore.GetStringSlice(keyIgnoreDirs),
			Files: s.configStore.GetStringSlice(keyIgnoreFiles),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyWorkspaceRoot, settings.Workspace.Root); err != nil {
		return fmt.Errorf("save workspace root: %w", err)
	}
	if err := s.configStore.Set(keySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("save search limit: %w", err)
	}
	if err := s.configStore.Set(keyIgnoreDirs, settings.Ignore.Dirs); err != nil {
		return fmt.Errorf("save ignored dirs: %w", err)
	}
	if err := s.configStore.Set(keyIgnoreFiles, settings.Ignore.Files); err != nil {
		return fmt.Errorf("save ignored files: %w", err)
	}
	return nil
}

// SetWorkspaceRoot updates the default search root. The path must be an
// existing directory.
func (s *SettingsService) SetWorkspaceRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRoot, root)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Workspace.Root = root
	return s.Save(settings)
}

// SetResultLimit updates the default result limit.
func (s *SettingsService) SetResultLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Search.Limit = limit
	return s.Save(settings)
}

// AddIgnoredDir adds a directory name to the ignore policy.
func (s *SettingsService) AddIgnoredDir(name string) error {
	if err := validateIgnoreName(name); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	for _, existing := range settings.Ignore.Dirs {
		if existing == name {
			return nil
		}
	}

	settings.Ignore.Dirs = append(settings.Ignore.Dirs, name)
	return s.Save(settings)
}

// AddIgnoredFile adds a file name to the ignore policy.
func (s *SettingsService) AddIgnoredFile(name string) error {
	if err := validateIgnoreName(name); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	for _, existing := range settings.Ignore.Files {
		if existing == name {
			return nil
		}
	}

	settings.Ignore.Files = append(settings.Ignore.Files, name)
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// validateIgnoreName rejects names that are not a bare path component.
func validateIgnoreName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: name must not contain path separators", domain.ErrInvalidInput)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}
