// Package domain defines the core business entities for Quickopen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileEntry: A single discovered workspace file
//   - DiscoverOptions: Per-query knobs (result limit)
//   - IgnorePolicy: Literal-name skip rules applied during traversal
//   - AppSettings: Persisted application settings
//   - SearchRecord: One entry in the search history
//
// It also hosts the pure query logic shared by the traversal engine and
// its tests: MatchesQuery (substring filter) and RankEntries (relevance
// ordering).
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
