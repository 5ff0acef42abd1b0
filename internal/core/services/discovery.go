package services

import (
	"context"
	"fmt"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// Ensure DiscoveryService implements the interface.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService finds workspace files matching a query.
type DiscoveryService struct {
	walker driven.WorkspaceWalker
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(walker driven.WorkspaceWalker) *DiscoveryService {
	return &DiscoveryService{walker: walker}
}

// Discover searches root for entries matching query and returns them
// ranked by path length, shortest first. The walk stops as soon as
// opts.Limit entries have been collected.
func (s *DiscoveryService) Discover(
	ctx context.Context, root, query string, opts domain.DiscoverOptions,
) ([]domain.FileEntry, error) {
	logger.Section("Discovery")
	logger.Debug("Root: %q, Query: %q, Limit: %d", root, query, opts.Limit)

	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", domain.ErrInvalidInput)
	}

	// The walker validates the root before it looks at the limit, so a
	// missing root fails the query even when the limit is zero.
	entries, err := s.walker.Walk(ctx, root, query, opts.Limit)
	if err != nil {
		return nil, err
	}

	domain.RankEntries(entries)
	logger.Debug("Found %d entries", len(entries))
	return entries, nil
}
