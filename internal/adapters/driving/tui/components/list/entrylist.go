// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/styles"
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// EntryList displays discovered file entries in a navigable list.
type EntryList struct {
	entries  []domain.FileEntry
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewEntryList creates a new entry list component.
func NewEntryList(s *styles.Styles) *EntryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &EntryList{
		entries:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the entry list.
func (e *EntryList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (e *EntryList) Update(msg tea.Msg) (*EntryList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			e.MoveUp()
		case tea.KeyDown:
			e.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			e.MoveUp()
		case "j":
			e.MoveDown()
		}
	}
	return e, nil
}

// View renders the entry list.
func (e *EntryList) View() string {
	if len(e.entries) == 0 {
		return e.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(e.entries)+2)

	// Header
	header := e.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(e.entries)))
	lines = append(lines, header, "")

	// Each entry occupies a single line
	visibleCount := e.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if e.selected >= visibleCount {
		start = e.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(e.entries) {
		end = len(e.entries)
	}

	for i := start; i < end; i++ {
		line := e.renderEntry(i, &e.entries[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderEntry formats a single entry as an indicator plus its relative path.
func (e *EntryList) renderEntry(index int, entry *domain.FileEntry) string {
	indicator := "  "
	if index == e.selected {
		indicator = "> "
	}

	path := entry.Path
	if entry.IsDir {
		path += "/"
	}

	// Truncate to fit width
	maxPathLen := e.width - 4
	if maxPathLen < 10 {
		maxPathLen = 10
	}
	if len(path) > maxPathLen {
		path = path[:maxPathLen-3] + "..."
	}

	if index == e.selected {
		return e.styles.Selected.Render(indicator + path)
	}
	if entry.IsDir {
		return e.styles.Directory.Render(indicator + path)
	}
	return e.styles.Normal.Render(indicator + path)
}

// SetEntries updates the entry list.
func (e *EntryList) SetEntries(entries []domain.FileEntry) {
	e.entries = entries
	e.selected = 0
}

// Entries returns the current entries.
func (e *EntryList) Entries() []domain.FileEntry {
	return e.entries
}

// Selected returns the index of the selected entry.
func (e *EntryList) Selected() int {
	return e.selected
}

// SetSelected sets the selected index.
func (e *EntryList) SetSelected(index int) {
	if index >= 0 && index < len(e.entries) {
		e.selected = index
	}
}

// SelectedEntry returns the currently selected entry, or nil if none.
func (e *EntryList) SelectedEntry() *domain.FileEntry {
	if len(e.entries) == 0 || e.selected < 0 || e.selected >= len(e.entries) {
		return nil
	}
	return &e.entries[e.selected]
}

// MoveUp moves selection up.
func (e *EntryList) MoveUp() {
	if e.selected > 0 {
		e.selected--
	}
}

// MoveDown moves selection down.
func (e *EntryList) MoveDown() {
	if e.selected < len(e.entries)-1 {
		e.selected++
	}
}

// SetDimensions sets the component dimensions.
func (e *EntryList) SetDimensions(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *EntryList) Width() int {
	return e.width
}

// Height returns the current height.
func (e *EntryList) Height() int {
	return e.height
}

// Count returns the number of entries.
func (e *EntryList) Count() int {
	return len(e.entries)
}

// IsEmpty returns whether the list is empty.
func (e *EntryList) IsEmpty() bool {
	return len(e.entries) == 0
}
