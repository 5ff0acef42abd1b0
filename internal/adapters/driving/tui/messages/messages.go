// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// SearchCompleted carries discovered entries back to the model.
type SearchCompleted struct {
	Results []domain.FileEntry
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
