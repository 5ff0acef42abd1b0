// Package workspace implements the WorkspaceWalker driven port against the
// local filesystem.
//
// The walker is iterative (explicit work stack, no recursion), bounded in
// depth, and cycle-safe: every directory is canonicalised through symlink
// resolution before it is visited, so symlink loops terminate. Per-entry
// failures are absorbed - an unreadable directory contributes no entries
// and the walk continues.
package workspace
