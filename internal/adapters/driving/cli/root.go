package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// ActionFactory builds an EntryActionService bound to a search root.
// Discovered entries carry root-relative paths, so actions need to know
// which root they came from.
type ActionFactory func(root string) driving.EntryActionService

// Services wired in by the composition root.
var (
	discoveryService driving.DiscoveryService
	settingsService  driving.SettingsService
	historyService   driving.HistoryService
	actionFactory    ActionFactory
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quickopen",
	Short: "Fast workspace file discovery",
	Long: `Quickopen finds files in a workspace by typing a few characters.

It walks the workspace with a bounded, cycle-safe traversal, skips
dependency trees and build output, and ranks matches so the entries
closest to the root come first.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
}

// SetServices wires core services into the CLI commands.
func SetServices(
	discovery driving.DiscoveryService,
	settings driving.SettingsService,
	history driving.HistoryService,
	actions ActionFactory,
) {
	discoveryService = discovery
	settingsService = settings
	historyService = history
	actionFactory = actions
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveRoot picks the search root for a command invocation: an explicit
// flag wins, then the configured workspace root, then the current working
// directory.
func resolveRoot(flagRoot string) string {
	if flagRoot != "" {
		return flagRoot
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Workspace.Root != "" {
			return settings.Workspace.Root
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
