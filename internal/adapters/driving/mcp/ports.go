package mcp

import (
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Discovery finds workspace files.
	Discovery driving.DiscoveryService

	// Settings exposes the effective ignore policy.
	Settings driving.SettingsService

	// History serves recent searches.
	History driving.HistoryService

	// Root is the default search root used when a tool call omits one.
	Root string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Discovery == nil {
		return ErrMissingDiscoveryService
	}
	// Settings and History are optional
	return nil
}
