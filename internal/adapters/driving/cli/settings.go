package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default workspace root, result limit, and
ignore rules. Settings persist in ~/.quickopen/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetRootCmd = &cobra.Command{
	Use:   "set-root <path>",
	Short: "Set the default workspace root",
	Long:  `Set the directory searched when no --root flag is given. The path must exist.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetRoot,
}

var settingsSetLimitCmd = &cobra.Command{
	Use:   "set-limit <n>",
	Short: "Set the default result limit",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSetLimit,
}

var settingsIgnoreCmd = &cobra.Command{
	Use:   "ignore",
	Short: "Manage ignore rules",
	Long: `Manage the names excluded from every search. Names are matched
exactly against a single path component; no glob syntax.`,
}

var settingsIgnoreAddDirCmd = &cobra.Command{
	Use:   "add-dir <name>",
	Short: "Add a directory name to the ignore rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsIgnoreAddDir,
}

var settingsIgnoreAddFileCmd = &cobra.Command{
	Use:   "add-file <name>",
	Short: "Add a file name to the ignore rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsIgnoreAddFile,
}

var settingsIgnoreListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective ignore rules",
	RunE:  runSettingsIgnoreList,
}

func init() {
	settingsIgnoreCmd.AddCommand(settingsIgnoreAddDirCmd)
	settingsIgnoreCmd.AddCommand(settingsIgnoreAddFileCmd)
	settingsIgnoreCmd.AddCommand(settingsIgnoreListCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetRootCmd)
	settingsCmd.AddCommand(settingsSetLimitCmd)
	settingsCmd.AddCommand(settingsIgnoreCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Workspace]")
	root := settings.Workspace.Root
	if root == "" {
		root = "(current directory)"
	}
	cmd.Printf("  Root: %s\n", root)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	cmd.Println()

	cmd.Println("[Ignore]")
	if len(settings.Ignore.Dirs) == 0 && len(settings.Ignore.Files) == 0 {
		cmd.Println("  (defaults only)")
	} else {
		for _, name := range settings.Ignore.Dirs {
			cmd.Printf("  dir:  %s\n", name)
		}
		for _, name := range settings.Ignore.Files {
			cmd.Printf("  file: %s\n", name)
		}
	}

	return nil
}

func runSettingsSetRoot(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetWorkspaceRoot(args[0]); err != nil {
		return fmt.Errorf("failed to set workspace root: %w", err)
	}

	cmd.Printf("Workspace root set to: %s\n", args[0])
	return nil
}

func runSettingsSetLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	limit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", args[0], err)
	}

	if err := settingsService.SetResultLimit(limit); err != nil {
		return fmt.Errorf("failed to set result limit: %w", err)
	}

	cmd.Printf("Result limit set to: %d\n", limit)
	return nil
}

func runSettingsIgnoreAddDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.AddIgnoredDir(args[0]); err != nil {
		return fmt.Errorf("failed to add ignored directory: %w", err)
	}

	cmd.Printf("Ignoring directory: %s\n", args[0])
	return nil
}

func runSettingsIgnoreAddFile(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.AddIgnoredFile(args[0]); err != nil {
		return fmt.Errorf("failed to add ignored file: %w", err)
	}

	cmd.Printf("Ignoring file: %s\n", args[0])
	return nil
}

func runSettingsIgnoreList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	policy := settings.IgnorePolicy()

	dirs := policy.IgnoredDirs()
	sort.Strings(dirs)
	cmd.Println("Ignored directories:")
	for _, name := range dirs {
		cmd.Printf("  %s\n", name)
	}

	files := policy.IgnoredFiles()
	sort.Strings(files)
	cmd.Println("Ignored files:")
	for _, name := range files {
		cmd.Printf("  %s\n", name)
	}

	return nil
}
