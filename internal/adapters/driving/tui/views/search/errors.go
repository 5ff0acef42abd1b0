package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoDiscoveryService indicates that no discovery service was provided.
	ErrNoDiscoveryService = errors.New("discovery service is required")
)
