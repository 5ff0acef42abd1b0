package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// SearchFilesInput is the input schema for the search_files tool.
type SearchFilesInput struct {
	Query string `json:"query" jsonschema:"text to match against file names and relative paths, case-insensitively; empty lists the workspace"`
	Root  string `json:"root,omitempty" jsonschema:"directory to search (defaults to the configured workspace root)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
}

// SearchFilesOutput is the output schema for the search_files tool.
type SearchFilesOutput struct {
	Results []FileEntryOutput `json:"results"`
	Count   int               `json:"count"`
}

// FileEntryOutput represents a single discovered file.
type FileEntryOutput struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_files",
		Description: "Find files in the workspace whose name or path matches a query",
	}, s.handleSearchFiles)
}

// handleSearchFiles handles the search_files tool invocation.
func (s *Server) handleSearchFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFilesInput,
) (*mcp.CallToolResult, SearchFilesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultResultLimit
	}

	root := input.Root
	if root == "" {
		root = s.ports.Root
	}

	opts := domain.DiscoverOptions{Limit: limit}
	results, err := s.ports.Discovery.Discover(ctx, root, input.Query, opts)
	if err != nil {
		return nil, SearchFilesOutput{}, err
	}

	if s.ports.History != nil {
		if err := s.ports.History.Record(ctx, root, input.Query, len(results)); err != nil {
			logger.Warn("recording search history: %v", err)
		}
	}

	output := SearchFilesOutput{
		Results: make([]FileEntryOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = FileEntryOutput{
			Path:  results[i].Path,
			Name:  results[i].Name,
			IsDir: results[i].IsDir,
		}
	}

	return nil, output, nil
}
