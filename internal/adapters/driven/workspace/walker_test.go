package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

func newTestWalker() *Walker {
	return NewWalker(domain.DefaultIgnorePolicy())
}

// writeFile creates a file (and its parent directories) under root.
func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
}

func paths(entries []domain.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestWalk_InvalidRoot(t *testing.T) {
	w := newTestWalker()

	_, err := w.Walk(context.Background(), filepath.Join(t.TempDir(), "missing"), "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestWalk_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.txt")

	w := newTestWalker()
	_, err := w.Walk(context.Background(), filepath.Join(root, "plain.txt"), "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestWalk_MatchesNameAndPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md")
	writeFile(t, root, "src/index.ts")
	writeFile(t, root, "src/util.ts")
	writeFile(t, root, "docs/intro.md")

	w := newTestWalker()

	results, err := w.Walk(context.Background(), root, "index", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/index.ts"}, paths(results))

	// Case-insensitive hit on the name.
	results, err = w.Walk(context.Background(), root, "readme", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, paths(results))

	// Hit on the relative path, not just the name.
	results, err = w.Walk(context.Background(), root, "src/", 50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/index.ts", "src/util.ts"}, paths(results))
}

func TestWalk_EmptyQueryReturnsEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt")
	writeFile(t, root, "b/c.txt")

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 50)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b/c.txt"}, paths(results))
}

func TestWalk_FilesOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md")

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "docs", 50)
	require.NoError(t, err)

	// The directory itself matches the query but is never emitted.
	assert.Equal(t, []string{"docs/guide.md"}, paths(results))
	for _, e := range results {
		assert.False(t, e.IsDir)
	}
}

func TestWalk_IgnoredDirsNotDescended(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/pkg/index.js")
	writeFile(t, root, ".git/config")
	writeFile(t, root, "src/index.js")

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "index", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/index.js"}, paths(results))
}

func TestWalk_IgnoredFilesNotReturned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "package-lock.json")
	writeFile(t, root, "package.json")

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "package", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json"}, paths(results))
}

func TestWalk_HiddenEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".env")
	writeFile(t, root, ".config/settings.json")
	writeFile(t, root, "env.example")

	w := newTestWalker()

	// Plain query: dotfiles and dot-directories are invisible.
	results, err := w.Walk(context.Background(), root, "env", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"env.example"}, paths(results))

	// Dot query opts in to hidden entries.
	results, err = w.Walk(context.Background(), root, ".env", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{".env"}, paths(results))
}

func TestWalk_LimitStopsTraversal(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, root, "file"+strconv.Itoa(i)+".txt")
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 5)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestWalk_ZeroLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt")

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWalk_DepthBound(t *testing.T) {
	root := t.TempDir()

	// marker.txt at depths 1 through 12 below the root.
	rel := ""
	for depth := 1; depth <= 12; depth++ {
		rel += "d" + strconv.Itoa(depth) + "/"
		writeFile(t, root, rel+"marker.txt")
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "marker", 100)
	require.NoError(t, err)

	assert.Len(t, results, domain.MaxTraversalDepth)
	for _, e := range results {
		depth := strings.Count(e.Path, "/") + 1
		assert.LessOrEqual(t, depth, domain.MaxTraversalDepth)
	}
}

func TestWalk_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "loop/target.txt")

	// loop/back -> loop, a one-hop cycle.
	if err := os.Symlink(filepath.Join(root, "loop"), filepath.Join(root, "loop", "back")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "target", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"loop/target.txt"}, paths(results))
}

func TestWalk_DuplicateSymlinksVisitOnce(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real/data.txt")

	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "data", 50)
	require.NoError(t, err)

	// The same directory is reachable under two names but is listed once.
	assert.Len(t, results, 1)
}

func TestWalk_FileAliasListedOnce(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real.txt")

	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "alias.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 10)
	require.NoError(t, err)

	// Both names resolve to the same file; only the first one seen is kept.
	assert.Len(t, results, 1)
}

func TestWalk_DanglingSymlinkSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt")

	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, paths(results))
}

func TestWalk_UnreadableDirectoryAbsorbed(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}

	root := t.TempDir()
	writeFile(t, root, "locked/secret.txt")
	writeFile(t, root, "open/visible.txt")

	lockedDir := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(lockedDir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(lockedDir, 0o755) })

	w := newTestWalker()
	results, err := w.Walk(context.Background(), root, "", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"open/visible.txt"}, paths(results))
}

func TestWalk_ContextCancellation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := newTestWalker()
	_, err := w.Walk(ctx, root, "", 50)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt")
	writeFile(t, root, "a.txt")
	writeFile(t, root, "sub/c.txt")

	w := newTestWalker()

	first, err := w.Walk(context.Background(), root, "", 50)
	require.NoError(t, err)
	second, err := w.Walk(context.Background(), root, "", 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
