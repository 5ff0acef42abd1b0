package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driven/storage/memory"
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Empty(t, settings.Workspace.Root)
	assert.Equal(t, domain.DefaultResultLimit, settings.Search.Limit)
	assert.Empty(t, settings.Ignore.Dirs)
	assert.Empty(t, settings.Ignore.Files)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("workspace.root", "/home/user/projects")
	_ = store.Set("search.limit", 25)
	_ = store.Set("ignore.dirs", []string{"tmp"})

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/home/user/projects", settings.Workspace.Root)
	assert.Equal(t, 25, settings.Search.Limit)
	assert.Equal(t, []string{"tmp"}, settings.Ignore.Dirs)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Workspace: domain.WorkspaceSettings{Root: "/work"},
		Search:    domain.SearchSettings{Limit: 10},
		Ignore: domain.IgnoreSettings{
			Dirs:  []string{"logs"},
			Files: []string{"secrets.txt"},
		},
	}

	err := service.Save(settings)
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "/work", retrieved.Workspace.Root)
	assert.Equal(t, 10, retrieved.Search.Limit)
	assert.Equal(t, []string{"logs"}, retrieved.Ignore.Dirs)
	assert.Equal(t, []string{"secrets.txt"}, retrieved.Ignore.Files)
}

func TestSettingsService_SetWorkspaceRoot(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	dir := t.TempDir()
	err := service.SetWorkspaceRoot(dir)
	require.NoError(t, err)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, dir, settings.Workspace.Root)
}

func TestSettingsService_SetWorkspaceRoot_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	err := service.SetWorkspaceRoot("/no/such/directory")

	assert.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestSettingsService_SetResultLimit(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetResultLimit(15))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 15, settings.Search.Limit)
}

func TestSettingsService_SetResultLimit_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	assert.ErrorIs(t, service.SetResultLimit(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetResultLimit(-5), domain.ErrInvalidInput)
}

func TestSettingsService_AddIgnoredDir(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.AddIgnoredDir("generated"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"generated"}, settings.Ignore.Dirs)
}

func TestSettingsService_AddIgnoredDir_Duplicate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.AddIgnoredDir("generated"))
	require.NoError(t, service.AddIgnoredDir("generated"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"generated"}, settings.Ignore.Dirs)
}

func TestSettingsService_AddIgnoredFile(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.AddIgnoredFile("schema.sql"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"schema.sql"}, settings.Ignore.Files)
}

func TestSettingsService_AddIgnoredName_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	tests := []struct {
		name  string
		value string
	}{
		{"empty name", ""},
		{"path separator", "src/generated"},
		{"backslash separator", `build\out`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, service.AddIgnoredDir(tt.value), domain.ErrInvalidInput)
			assert.ErrorIs(t, service.AddIgnoredFile(tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultAppSettings(), defaults)
}
