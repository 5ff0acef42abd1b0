package driving

import "github.com/quickopen-labs/quickopen-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetWorkspaceRoot updates the default search root. The path must be
	// an existing directory.
	SetWorkspaceRoot(root string) error

	// SetResultLimit updates the default result limit.
	SetResultLimit(limit int) error

	// AddIgnoredDir adds a directory name to the ignore policy.
	AddIgnoredDir(name string) error

	// AddIgnoredFile adds a file name to the ignore policy.
	AddIgnoredFile(name string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
