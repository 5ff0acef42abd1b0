package domain

// WorkspaceSettings configures where discovery queries run by default.
type WorkspaceSettings struct {
	// Root is the default search root. Empty means the current working
	// directory at invocation time.
	Root string
}

// SearchSettings configures default query behaviour.
type SearchSettings struct {
	// Limit is the default maximum number of results per query.
	Limit int
}

// IgnoreSettings holds user-added literal names merged into the built-in
// ignore policy. Names are matched exactly against the final path
// component; no glob syntax.
type IgnoreSettings struct {
	// Dirs are extra directory names to skip.
	Dirs []string

	// Files are extra file names to skip.
	Files []string
}

// AppSettings aggregates all persisted application settings.
type AppSettings struct {
	Workspace WorkspaceSettings
	Search    SearchSettings
	Ignore    IgnoreSettings
}

// DefaultAppSettings returns the settings used before the user
// configures anything.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Workspace: WorkspaceSettings{Root: ""},
		Search:    SearchSettings{Limit: DefaultResultLimit},
		Ignore:    IgnoreSettings{},
	}
}

// IgnorePolicy builds the effective ignore policy from these settings.
func (s AppSettings) IgnorePolicy() IgnorePolicy {
	return NewIgnorePolicy(s.Ignore.Dirs, s.Ignore.Files)
}
