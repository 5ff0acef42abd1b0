package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

var (
	searchRoot  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find workspace files matching a query",
	Long: `Searches the workspace for files whose name or relative path
contains the query, case-insensitively. Without a query, lists the
workspace up to the result limit.

Results are ranked by path length, so entries closer to the root
come first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchRoot, "root", "r", "", "search root (defaults to configured workspace or cwd)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (defaults to configured limit)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	root := resolveRoot(searchRoot)
	limit := searchLimit
	if limit <= 0 {
		limit = configuredLimit()
	}

	results, err := discoveryService.Discover(cmd.Context(), root, query, domain.DiscoverOptions{Limit: limit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	// History is best-effort; a storage failure never breaks the search.
	if historyService != nil {
		if err := historyService.Record(cmd.Context(), root, query, len(results)); err != nil {
			logger.Warn("recording search history: %v", err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

// configuredLimit reads the default result limit from settings.
func configuredLimit() int {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Search.Limit > 0 {
			return settings.Search.Limit
		}
	}
	return domain.DefaultResultLimit
}

func outputSearchJSON(cmd *cobra.Command, results []domain.FileEntry) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.FileEntry) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for _, entry := range results {
		cmd.Println(entry.Path)
	}

	return nil
}
