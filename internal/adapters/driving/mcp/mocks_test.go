package mcp

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// mockDiscoveryService is a mock implementation of driving.DiscoveryService.
type mockDiscoveryService struct {
	results  []domain.FileEntry
	err      error
	lastRoot string
	lastOpts domain.DiscoverOptions
}

func (m *mockDiscoveryService) Discover(
	_ context.Context,
	root string,
	_ string,
	opts domain.DiscoverOptions,
) ([]domain.FileEntry, error) {
	m.lastRoot = root
	m.lastOpts = opts
	return m.results, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, m.err
	}
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetWorkspaceRoot(_ string) error { return m.err }

func (m *mockSettingsService) SetResultLimit(_ int) error { return m.err }

func (m *mockSettingsService) AddIgnoredDir(_ string) error { return m.err }

func (m *mockSettingsService) AddIgnoredFile(_ string) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records   []domain.SearchRecord
	err       error
	lastRoot  string
	lastQuery string
	lastCount int
	recorded  int
}

func (m *mockHistoryService) Record(_ context.Context, root, query string, resultCount int) error {
	m.lastRoot = root
	m.lastQuery = query
	m.lastCount = resultCount
	m.recorded++
	return m.err
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.SearchRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) (int, error) {
	return len(m.records), m.err
}
