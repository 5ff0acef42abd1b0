// Command quickopen finds files in a workspace by name, fast.
package main

import (
	"fmt"
	"os"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driven/config/file"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driven/workspace"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/cli"
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
	"github.com/quickopen-labs/quickopen-cli/internal/core/services"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)

	// The ignore policy is fixed at startup from persisted settings.
	policy := domain.DefaultIgnorePolicy()
	if settings, err := settingsService.Get(); err == nil {
		policy = settings.IgnorePolicy()
	}

	walker := workspace.NewWalker(policy)
	discoveryService := services.NewDiscoveryService(walker)

	// History is optional; searches still work without it.
	var historyStore driven.HistoryStore
	if store, err := sqlite.NewStore(""); err != nil {
		logger.Warn("search history unavailable: %v", err)
	} else {
		historyStore = store
		defer store.Close()
	}
	historyService := services.NewHistoryService(historyStore)

	actionFactory := func(root string) driving.EntryActionService {
		return services.NewEntryActionService(root)
	}

	cli.SetServices(discoveryService, settingsService, historyService, actionFactory)
	cli.SetVersion(version)

	return cli.Execute()
}
