// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Quickopen. It lets AI assistants like Claude discover workspace files
// through the same engine the CLI and TUI use.
package mcp

import "errors"

// ErrMissingDiscoveryService is returned when the discovery service is not provided.
var ErrMissingDiscoveryService = errors.New("mcp: discovery service is required")
