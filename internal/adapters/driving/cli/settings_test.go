package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commands := settingsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set-root")
	assert.Contains(t, commandNames, "set-limit")
	assert.Contains(t, commandNames, "ignore")
}

func TestSettingsShowCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Current Settings")
	assert.Contains(t, buf.String(), "[Workspace]")
	assert.Contains(t, buf.String(), "[Search]")
	assert.Contains(t, buf.String(), "[Ignore]")
}

func TestSettingsShowCmd_DefaultRootShownAsCwd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(current directory)")
}

func TestSettingsSetRootCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set-root"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSettingsSetRootCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := settingsService.(*mockSettingsService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set-root", "/work"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Workspace root set to: /work")
	assert.Equal(t, "/work", settings.settings.Workspace.Root)
}

func TestSettingsSetLimitCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := settingsService.(*mockSettingsService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set-limit", "75"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Result limit set to: 75")
	assert.Equal(t, 75, settings.settings.Search.Limit)
}

func TestSettingsSetLimitCmd_RejectsNonNumeric(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "set-limit", "lots"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid limit")
}

func TestSettingsIgnoreAddDirCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := settingsService.(*mockSettingsService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "ignore", "add-dir", "generated"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ignoring directory: generated")
	assert.Contains(t, settings.settings.Ignore.Dirs, "generated")
}

func TestSettingsIgnoreAddFileCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := settingsService.(*mockSettingsService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "ignore", "add-file", "secrets.env"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ignoring file: secrets.env")
	assert.Contains(t, settings.settings.Ignore.Files, "secrets.env")
}

func TestSettingsIgnoreListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "ignore", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Ignored directories:")
	assert.Contains(t, output, "node_modules")
	assert.Contains(t, output, "Ignored files:")
	assert.Contains(t, output, ".DS_Store")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
