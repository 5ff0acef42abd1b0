package driving

import (
	"context"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// DiscoveryService provides workspace file discovery to external actors.
type DiscoveryService interface {
	// Discover searches root for entries matching query and returns them
	// ranked by path length, shortest first.
	Discover(ctx context.Context, root, query string, opts domain.DiscoverOptions) ([]domain.FileEntry, error)
}
