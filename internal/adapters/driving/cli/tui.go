package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui"
)

var tuiRoot string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Quickopen.

Type a few characters and press Enter to find matching files in the
workspace, then navigate the results with the keyboard.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Select
  n        - New search
  Esc      - Quit / Back`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiRoot, "root", "r", "", "search root (defaults to configured workspace or cwd)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	root := resolveRoot(tuiRoot)

	ports := &tui.Ports{
		Discovery: discoveryService,
		Root:      root,
		Limit:     configuredLimit(),
	}
	if actionFactory != nil {
		ports.Action = actionFactory(root)
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
