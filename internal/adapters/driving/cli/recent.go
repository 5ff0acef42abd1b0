package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recentLimit int
	recentClear bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent searches",
	Long: `Shows the most recent searches, newest first.

Use --clear to delete the entire search history.`,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 20, "maximum number of entries to show")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "delete the entire search history")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if recentClear {
		removed, err := historyService.Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Printf("Removed %d record(s).\n", removed)
		return nil
	}

	records, err := historyService.Recent(cmd.Context(), recentLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for _, record := range records {
		query := record.Query
		if query == "" {
			query = "(all files)"
		}
		cmd.Printf("%s  %-24s %d result(s) in %s\n",
			record.ExecutedAt.Format("2006-01-02 15:04"), query, record.ResultCount, record.Root)
	}

	return nil
}
