package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/messages"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/styles"
	"github.com/quickopen-labs/quickopen-cli/internal/adapters/driving/tui/views/search"
	"github.com/quickopen-labs/quickopen-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the single interactive file finding view.
	searchView *search.View

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool

	// quitting indicates the app is shutting down.
	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchView := search.NewView(s, nil, ports.Discovery, ports.Action, ports.Root, ports.Limit)

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		searchView: searchView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView = a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("quickopen - Workspace Files"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}

	case messages.Quit:
		a.quitting = true
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
	}

	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)
	a.err = a.searchView.Err()
	return a, cmd
}

// View implements tea.Model.
// It renders the current state as a string.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.searchView.View()
}

// Ready returns whether the app has received its initial window size.
func (a *App) Ready() bool {
	return a.ready
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current entries.
func (a *App) Results() []domain.FileEntry {
	return a.searchView.Results()
}

// SelectedIndex returns the index of the selected entry.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// Err returns the last error, if any.
func (a *App) Err() error {
	return a.err
}

// SetDimensions sets the app dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}

// Width returns the current width.
func (a *App) Width() int {
	return a.width
}

// Height returns the current height.
func (a *App) Height() int {
	return a.height
}
