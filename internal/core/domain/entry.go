package domain

// MaxTraversalDepth bounds how deep the traversal engine descends below
// the search root. Entries nested deeper than this never appear in
// results, regardless of query or limit.
const MaxTraversalDepth = 10

// DefaultResultLimit is the result cap used when the caller does not
// configure one.
const DefaultResultLimit = 50

// FileEntry is a single discovered workspace file.
type FileEntry struct {
	// Path is the entry's location relative to the search root, using
	// forward slashes regardless of host path conventions.
	Path string `json:"path"`

	// Name is the final path component.
	Name string `json:"name"`

	// IsDir reports whether the entry is a directory. Directories are
	// recursed into but never emitted, so this is always false in
	// well-formed results; it stays in the response shape so callers
	// can rely on it.
	IsDir bool `json:"isDir"`
}

// DiscoverOptions configures a discovery query.
type DiscoverOptions struct {
	// Limit is the maximum number of results. Must be non-negative;
	// zero yields an empty result set.
	Limit int
}
