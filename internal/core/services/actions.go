package services

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// Ensure EntryActionService implements the interface.
var _ driving.EntryActionService = (*EntryActionService)(nil)

// EntryActionService provides actions on discovered entries.
type EntryActionService struct {
	// root resolves relative entry paths to absolute ones.
	root string
}

// NewEntryActionService creates a new entry action service. Entries carry
// root-relative paths, so the service needs the root they came from.
func NewEntryActionService(root string) *EntryActionService {
	return &EntryActionService{root: root}
}

// CopyPath copies the entry's absolute path to the system clipboard.
func (s *EntryActionService) CopyPath(_ context.Context, entry *domain.FileEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	abs, err := s.absolute(entry)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(abs)
}

// Open opens the entry in the default application for its type.
func (s *EntryActionService) Open(_ context.Context, entry *domain.FileEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}

	abs, err := s.absolute(entry)
	if err != nil {
		return err
	}
	return openPath(abs)
}

// absolute joins the entry's relative path onto the search root.
func (s *EntryActionService) absolute(entry *domain.FileEntry) (string, error) {
	return filepath.Abs(filepath.Join(s.root, filepath.FromSlash(entry.Path)))
}

// openPath opens a path using the system default handler.
func openPath(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
