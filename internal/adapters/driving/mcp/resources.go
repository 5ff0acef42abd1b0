package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Quickopen resources.
	uriScheme = "quickopen://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the effective ignore policy.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "ignore-policy",
		Name:        "ignore-policy",
		Description: "Directory and file names excluded from every search",
		MIMEType:    "application/json",
	}, s.handleIgnorePolicyResource)

	// Static resource for recent searches.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent-searches",
		Name:        "recent-searches",
		Description: "Most recent searches, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentSearchesResource)
}

// handleIgnorePolicyResource returns the effective ignore policy.
func (s *Server) handleIgnorePolicyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	policy := domain.DefaultIgnorePolicy()
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			policy = settings.IgnorePolicy()
		}
	}

	dirs := policy.IgnoredDirs()
	files := policy.IgnoredFiles()
	sort.Strings(dirs)
	sort.Strings(files)

	payload := struct {
		Dirs  []string `json:"dirs"`
		Files []string `json:"files"`
	}{Dirs: dirs, Files: files}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling ignore policy: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecentSearchesResource returns the most recent searches.
func (s *Server) handleRecentSearchesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.History.Recent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing recent searches: %w", err)
	}

	// Build simplified record list.
	type recordInfo struct {
		Query       string `json:"query"`
		Root        string `json:"root"`
		ResultCount int    `json:"result_count"`
		ExecutedAt  string `json:"executed_at"`
	}

	infos := make([]recordInfo, len(records))
	for i, record := range records {
		infos[i] = recordInfo{
			Query:       record.Query,
			Root:        record.Root,
			ResultCount: record.ResultCount,
			ExecutedAt:  record.ExecutedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recent searches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
