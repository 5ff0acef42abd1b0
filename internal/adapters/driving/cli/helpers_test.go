package cli

import (
	"context"
	"errors"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// mockDiscoveryService returns a fixed set of entries and records the
// arguments of the last call.
type mockDiscoveryService struct {
	results   []domain.FileEntry
	lastRoot  string
	lastQuery string
	lastOpts  domain.DiscoverOptions
}

func (m *mockDiscoveryService) Discover(
	_ context.Context, root, query string, opts domain.DiscoverOptions,
) ([]domain.FileEntry, error) {
	m.lastRoot = root
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, nil
}

type mockDiscoveryServiceError struct{}

func (m *mockDiscoveryServiceError) Discover(
	_ context.Context, _, _ string, _ domain.DiscoverOptions,
) ([]domain.FileEntry, error) {
	return nil, errors.New("walk failed")
}

// mockSettingsService serves settings from memory.
type mockSettingsService struct {
	settings domain.AppSettings
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) SetWorkspaceRoot(root string) error {
	m.settings.Workspace.Root = root
	return nil
}

func (m *mockSettingsService) SetResultLimit(limit int) error {
	if limit <= 0 {
		return domain.ErrInvalidInput
	}
	m.settings.Search.Limit = limit
	return nil
}

func (m *mockSettingsService) AddIgnoredDir(name string) error {
	m.settings.Ignore.Dirs = append(m.settings.Ignore.Dirs, name)
	return nil
}

func (m *mockSettingsService) AddIgnoredFile(name string) error {
	m.settings.Ignore.Files = append(m.settings.Ignore.Files, name)
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistoryService records searches in memory, newest first.
type mockHistoryService struct {
	records []domain.SearchRecord
}

func (m *mockHistoryService) Record(_ context.Context, root, query string, resultCount int) error {
	m.records = append([]domain.SearchRecord{{
		ID: "test-id", Root: root, Query: query, ResultCount: resultCount,
	}}, m.records...)
	return nil
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit <= 0 || limit > len(m.records) {
		limit = len(m.records)
	}
	return m.records[:limit], nil
}

func (m *mockHistoryService) Clear(_ context.Context) (int, error) {
	n := len(m.records)
	m.records = nil
	return n, nil
}

// mockEntryActionService is a no-op action service.
type mockEntryActionService struct {
	root string
}

func (m *mockEntryActionService) CopyPath(_ context.Context, entry *domain.FileEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func (m *mockEntryActionService) Open(_ context.Context, entry *domain.FileEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func testSearchEntries() []domain.FileEntry {
	return []domain.FileEntry{
		{Path: "src/index.ts", Name: "index.ts", IsDir: false},
		{Path: "src/components", Name: "components", IsDir: true},
	}
}

// setupTestServices installs mock services and returns a cleanup function
// restoring the previous wiring.
func setupTestServices() func() {
	oldDiscovery := discoveryService
	oldSettings := settingsService
	oldHistory := historyService
	oldActions := actionFactory

	settings := domain.DefaultAppSettings()
	discoveryService = &mockDiscoveryService{results: testSearchEntries()}
	settingsService = &mockSettingsService{settings: settings}
	historyService = &mockHistoryService{}
	actionFactory = func(root string) driving.EntryActionService {
		return &mockEntryActionService{root: root}
	}

	return func() {
		discoveryService = oldDiscovery
		settingsService = oldSettings
		historyService = oldHistory
		actionFactory = oldActions
	}
}
