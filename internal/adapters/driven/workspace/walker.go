package workspace

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driven"
	"github.com/quickopen-labs/quickopen-cli/internal/logger"
)

// Walker traverses a workspace on the local filesystem.
type Walker struct {
	policy domain.IgnorePolicy
}

// Compile-time check that Walker implements the port.
var _ driven.WorkspaceWalker = (*Walker)(nil)

// NewWalker creates a walker that applies the given ignore policy.
func NewWalker(policy domain.IgnorePolicy) *Walker {
	return &Walker{policy: policy}
}

// frame is one pending directory on the work stack.
type frame struct {
	abs   string // absolute path on disk
	rel   string // slash-separated path relative to the root, "" for the root
	depth int    // 0 for the root
}

// Walk traverses root and returns at most limit entries whose name or
// relative path contains query, case-insensitively. Traversal lists each
// directory's entries in name order, emits matching files, then descends
// into subdirectories in the same order.
func (w *Walker) Walk(ctx context.Context, root, query string, limit int) ([]domain.FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, domain.ErrInvalidRoot
	}
	if limit <= 0 {
		return []domain.FileEntry{}, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, domain.ErrInvalidRoot
	}

	queryLower := strings.ToLower(query)
	results := make([]domain.FileEntry, 0, limit)

	visited := map[string]struct{}{canonical(absRoot): {}}
	stack := []frame{{abs: absRoot, rel: "", depth: 0}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(results) >= limit {
			break
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.depth >= domain.MaxTraversalDepth {
			continue
		}

		entries, err := os.ReadDir(cur.abs)
		if err != nil {
			// Unreadable directory: contributes nothing, walk continues.
			logger.Debug("skipping unreadable directory %s: %v", cur.abs, err)
			continue
		}

		var subdirs []frame
		for _, entry := range entries {
			name := entry.Name()
			if !utf8.ValidString(name) {
				continue
			}

			isDir := entry.IsDir()
			entryAbs := filepath.Join(cur.abs, name)
			if entry.Type()&os.ModeSymlink != 0 {
				// Follow the link to classify the target; a dangling
				// link is skipped.
				target, err := os.Stat(entryAbs)
				if err != nil {
					continue
				}
				isDir = target.IsDir()
			}

			if w.policy.ShouldSkip(name, isDir, query) {
				continue
			}

			// Every entry is marked visited before matching or descending,
			// so a symlink alias of an already seen file or directory is
			// dropped rather than listed twice.
			key := canonical(entryAbs)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}

			rel := name
			if cur.rel != "" {
				rel = path.Join(cur.rel, name)
			}

			if isDir {
				subdirs = append(subdirs, frame{abs: entryAbs, rel: rel, depth: cur.depth + 1})
				continue
			}

			if domain.MatchesQuery(queryLower, name, rel) {
				results = append(results, domain.FileEntry{Path: rel, Name: name})
				if len(results) >= limit {
					return results, nil
				}
			}
		}

		// Push in reverse so the first subdirectory is explored first.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return results, nil
}

// canonical resolves symlinks so two paths naming the same directory map
// to one visited key. When resolution fails the raw path still guards
// against revisiting via the same spelling.
func canonical(abs string) string {
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
