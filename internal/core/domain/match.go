package domain

import (
	"sort"
	"strings"
)

// MatchesQuery reports whether a candidate entry matches the query text.
// queryLower must already be lower-cased by the caller; the empty query
// matches everything. A match is a case-insensitive substring hit on the
// file name or on the root-relative path, so typing a partial directory
// prefix also matches.
func MatchesQuery(queryLower, name, relPath string) bool {
	if queryLower == "" {
		return true
	}
	if strings.Contains(strings.ToLower(name), queryLower) {
		return true
	}
	return strings.Contains(strings.ToLower(relPath), queryLower)
}

// RankEntries orders matched entries by relevance in place: shorter
// relative paths first (closer to the root, therefore more relevant),
// ties broken by case-insensitive lexicographic comparison of the
// relative path. The sort is stable, so repeated runs over an unchanged
// tree produce identical output.
func RankEntries(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Path, entries[j].Path
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
}
