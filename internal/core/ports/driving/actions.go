package driving

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// EntryActionService provides actions on discovered entries for external
// actors. This is used by TUI, CLI, and MCP adapters.
type EntryActionService interface {
	// CopyPath copies the entry's absolute path to the system clipboard.
	CopyPath(ctx context.Context, entry *domain.FileEntry) error

	// Open opens the entry in the default application for its type.
	Open(ctx context.Context, entry *domain.FileEntry) error
}
