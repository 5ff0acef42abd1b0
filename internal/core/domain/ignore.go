package domain

import "strings"

// DefaultIgnoredDirs are directory names that are never scanned:
// VCS metadata, dependency trees and build output.
var DefaultIgnoredDirs = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"bower_components",
	"vendor",
	"target",
	"dist",
	"build",
	"out",
	"__pycache__",
	"venv",
	"coverage",
}

// DefaultIgnoredFiles are file names that are never returned:
// lockfiles and OS metadata files.
var DefaultIgnoredFiles = []string{
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"Gemfile.lock",
	"composer.lock",
	"poetry.lock",
}

// IgnorePolicy classifies entry names that should never be scanned or
// returned. Membership is exact string equality on the final path
// component; there is no glob or pattern matching.
type IgnorePolicy struct {
	dirs  map[string]struct{}
	files map[string]struct{}
}

// NewIgnorePolicy builds a policy from the default name sets plus any
// extra literal names from user settings.
func NewIgnorePolicy(extraDirs, extraFiles []string) IgnorePolicy {
	p := IgnorePolicy{
		dirs:  make(map[string]struct{}, len(DefaultIgnoredDirs)+len(extraDirs)),
		files: make(map[string]struct{}, len(DefaultIgnoredFiles)+len(extraFiles)),
	}
	for _, name := range DefaultIgnoredDirs {
		p.dirs[name] = struct{}{}
	}
	for _, name := range extraDirs {
		if name != "" {
			p.dirs[name] = struct{}{}
		}
	}
	for _, name := range DefaultIgnoredFiles {
		p.files[name] = struct{}{}
	}
	for _, name := range extraFiles {
		if name != "" {
			p.files[name] = struct{}{}
		}
	}
	return p
}

// DefaultIgnorePolicy returns a policy with only the built-in name sets.
func DefaultIgnorePolicy() IgnorePolicy {
	return NewIgnorePolicy(nil, nil)
}

// ShouldSkip reports whether an entry must be excluded from the walk.
// Hidden entries (leading dot) are skipped unless the query text itself
// starts with a dot, which lets users opt in to dotfiles by typing one.
func (p IgnorePolicy) ShouldSkip(name string, isDir bool, queryText string) bool {
	if isDir {
		if _, ok := p.dirs[name]; ok {
			return true
		}
	} else {
		if _, ok := p.files[name]; ok {
			return true
		}
	}
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(queryText, ".") {
		return true
	}
	return false
}

// IgnoredDirs returns the ignored directory names in unspecified order.
func (p IgnorePolicy) IgnoredDirs() []string {
	names := make([]string, 0, len(p.dirs))
	for name := range p.dirs {
		names = append(names, name)
	}
	return names
}

// IgnoredFiles returns the ignored file names in unspecified order.
func (p IgnorePolicy) IgnoredFiles() []string {
	names := make([]string, 0, len(p.files))
	for name := range p.files {
		names = append(names, name)
	}
	return names
}
