package domain

import "time"

// SearchRecord is one entry in the search history. A record is written
// after each query executed through the CLI, TUI or MCP surfaces; the
// discovery engine itself never persists anything.
type SearchRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Root is the directory the query ran against.
	Root string

	// Query is the raw query text as typed.
	Query string

	// ResultCount is how many entries the query returned.
	ResultCount int

	// ExecutedAt is when the query ran, in UTC.
	ExecutedAt time.Time
}
