// Package tui provides an interactive terminal user interface for quickopen.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Discovery provides workspace file discovery.
	Discovery driving.DiscoveryService

	// Action provides actions on discovered entries.
	Action driving.EntryActionService

	// Root is the workspace directory searches run under.
	Root string

	// Limit caps the number of entries per search. Zero means the default.
	Limit int
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	discovery driving.DiscoveryService,
	action driving.EntryActionService,
	root string,
	limit int,
) *Ports {
	return &Ports{
		Discovery: discovery,
		Action:    action,
		Root:      root,
		Limit:     limit,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Discovery == nil {
		return ErrMissingDiscoveryService
	}
	return nil
}
