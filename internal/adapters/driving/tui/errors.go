package tui

import "errors"

// ErrMissingDiscoveryService is returned when the discovery service is not provided.
var ErrMissingDiscoveryService = errors.New("tui: discovery service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
