package driven

// ConfigStore persists application settings as typed values under
// dot-notation keys ("workspace.root", "search.limit", "ignore.dirs").
// Getters return the zero value when a key is absent or holds a value of
// the wrong type; validation and defaults are the settings service's job.
type ConfigStore interface {
	// GetString retrieves a string value by key.
	GetString(key string) string

	// GetInt retrieves an integer value by key.
	GetInt(key string) int

	// GetStringSlice retrieves a string slice value by key.
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error
}
