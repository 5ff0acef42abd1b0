// Package search provides the interactive file finding view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/components/input"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/components/list"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/components/status"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/keymap"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/messages"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/styles"
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
	"github.com/quickopen-labs/quickopen-cli/internal/core/ports/driving"
)

// ActionMenu represents a simple action selection overlay.
type ActionMenu struct {
	actions  []string
	selected int
	visible  bool
	entry    *domain.FileEntry
}

// View represents the search view with input, entry list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.EntryList
	statusbar *status.Bar

	discoveryService driving.DiscoveryService
	actionService    driving.EntryActionService
	root             string
	limit            int
	ctx              context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
	actionMenu *ActionMenu
}

// NewView creates a new search view rooted at the given workspace directory.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	discoveryService driving.DiscoveryService,
	actionService driving.EntryActionService,
	root string,
	limit int,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if limit <= 0 {
		limit = domain.DefaultResultLimit
	}

	return &View{
		styles:           s,
		keymap:           km,
		input:            input.NewQueryInput(s),
		list:             list.NewEntryList(s),
		statusbar:        status.NewBar(s, km),
		discoveryService: discoveryService,
		actionService:    actionService,
		root:             root,
		limit:            limit,
		ctx:              context.Background(),
		width:            80,
		height:           24,
		ready:            false,
		focusInput:       true, // Start in input mode
		actionMenu:       nil,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// If action menu is visible, handle its keys
	if v.actionMenu != nil && v.actionMenu.visible {
		return v.handleActionMenuKey(msg)
	}

	// Esc quits from input mode, returns to input from results mode
	if msg.Type == tea.KeyEsc {
		if v.focusInput {
			return v, func() tea.Msg {
				return messages.Quit{}
			}
		}
		v.focusInput = true
		v.input.Focus()
		return v, nil
	}

	// Enter in input mode submits the query; an empty query lists everything
	if msg.Type == tea.KeyEnter && v.focusInput {
		query := v.input.Value()
		v.statusbar.SetState(status.StateScanning)
		v.focusInput = false // Move to results mode after search
		v.input.Blur()
		cmd := v.performSearch(query)
		return v, cmd
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: handle Enter to open action menu
	if msg.Type == tea.KeyEnter {
		entry := v.list.SelectedEntry()
		if entry != nil {
			v.actionMenu = &ActionMenu{
				actions:  []string{"Open file", "Copy path", "Cancel"},
				selected: 0,
				visible:  true,
				entry:    entry,
			}
		}
		return v, nil
	}

	// Results mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		// New search: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, nil
	}

	return v, nil
}

// handleActionMenuKey processes keyboard input when action menu is visible.
func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
		return v, nil
	case tea.KeyDown:
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
		return v, nil
	case tea.KeyEnter:
		action := v.actionMenu.actions[v.actionMenu.selected]
		entry := v.actionMenu.entry
		v.actionMenu = nil // Close menu
		return v.executeAction(action, entry)
	case tea.KeyEsc:
		v.actionMenu = nil // Close menu
		return v, nil
	default:
		// Handle other keys
	}

	// Handle vim-style navigation in action menu
	switch msg.String() {
	case "k":
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
		return v, nil
	case "j":
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
		return v, nil
	}

	return v, nil
}

// executeAction performs the selected action on a file entry.
func (v *View) executeAction(action string, entry *domain.FileEntry) (*View, tea.Cmd) {
	if entry == nil {
		return v, nil
	}

	switch action {
	case "Open file":
		if v.actionService != nil {
			err := v.actionService.Open(v.ctx, entry)
			if err != nil {
				v.statusbar.SetMessage("Open: " + err.Error())
			} else {
				v.statusbar.SetMessage("Opening " + entry.Name)
			}
		} else {
			v.statusbar.SetMessage("Open not available")
		}
	case "Copy path":
		if v.actionService != nil {
			err := v.actionService.CopyPath(v.ctx, entry)
			if err != nil {
				v.statusbar.SetMessage("Copy: " + err.Error())
			} else {
				v.statusbar.SetMessage("Path copied to clipboard")
			}
		} else {
			v.statusbar.SetMessage("Copy not available")
		}
	case "Cancel":
		// Do nothing, menu is already closed
	}

	return v, nil
}

// performSearch runs a discovery pass and returns the entries.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if v.discoveryService == nil {
			return messages.ErrorOccurred{Err: ErrNoDiscoveryService}
		}

		opts := domain.DiscoverOptions{Limit: v.limit}
		results, err := v.discoveryService.Discover(v.ctx, v.root, query, opts)
		if err != nil {
			return messages.SearchCompleted{Results: nil, Err: err}
		}
		return messages.SearchCompleted{Results: results, Err: nil}
	}
}

// handleSearchCompleted processes discovery results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetEntries(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(msg.Results))

	// Switch to results mode after successful search
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header: app name plus workspace root
	header := v.styles.Title.Render("Quickopen")
	if v.root != "" {
		header += "  " + v.styles.Muted.Render(v.root)
	}
	sections = append(sections, header, "")

	// Query input
	inputView := v.input.View()
	sections = append(sections, inputView, "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Entry list
	listView := v.list.View()
	sections = append(sections, listView)

	// Action menu overlay (if visible)
	if v.actionMenu != nil && v.actionMenu.visible {
		sections = append(sections, "")
		menuView := v.renderActionMenu()
		sections = append(sections, menuView)
	}

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	if v.actionMenu == nil {
		return ""
	}

	lines := make([]string, 0, len(v.actionMenu.actions))
	for i, action := range v.actionMenu.actions {
		indicator := "  "
		if i == v.actionMenu.selected {
			indicator = "> "
		}

		var line string
		if i == v.actionMenu.selected {
			line = v.styles.Selected.Render(indicator + action)
		} else {
			line = v.styles.Normal.Render(indicator + action)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")

	// Wrap in a bordered box
	menuStyle := v.styles.Border.
		Padding(0, 1)

	return menuStyle.Render(content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current entries.
func (v *View) Results() []domain.FileEntry {
	return v.list.Entries()
}

// SelectedIndex returns the index of the selected entry.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedEntry returns the currently selected entry.
func (v *View) SelectedEntry() *domain.FileEntry {
	return v.list.SelectedEntry()
}

// Root returns the workspace root the view searches under.
func (v *View) Root() string {
	return v.root
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetEntries(nil)
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
