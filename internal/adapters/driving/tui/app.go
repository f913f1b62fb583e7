package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/keymap"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/messages"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/styles"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/analysis"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/configure"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/menu"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/progress"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/search"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/views/upload"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/logger"
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

	// keymap holds the shared key bindings.
	keymap *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the firm directory search view.
	searchView *search.View

	// configureView is the firm configuration view.
	configureView *configure.View

	// analysisView is the website analysis view.
	analysisView *analysis.View

	// progressView is the report progress view.
	progressView *progress.View

	// uploadView is the document grading view.
	uploadView *upload.View

	// selectedFirm tracks the firm under configuration.
	selectedFirm *domain.Firm

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	ctx := context.Background()

	return &App{
		ports:         ports,
		ctx:           ctx,
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s),
		searchView:    search.NewView(s, km, ports.Search).WithContext(ctx),
		configureView: configure.NewView(s, km),
		analysisView:  analysis.NewView(s, km, ports.Analysis).WithContext(ctx),
		progressView:  progress.NewView(s, km),
		uploadView:    upload.NewView(s, km, ports.Grading).WithContext(ctx),
		currentView:   messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.analysisView.WithContext(ctx)
	a.uploadView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("growlaw - AI Visibility for Law Firms"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.configureView.SetDimensions(msg.Width, msg.Height)
		a.analysisView.SetDimensions(msg.Width, msg.Height)
		a.progressView.SetDimensions(msg.Width, msg.Height)
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.err = a.searchView.Err()
			return a, cmd

		case messages.ViewConfigure:
			a.configureView, cmd = a.configureView.Update(msg)
			return a, cmd

		case messages.ViewAnalysis:
			a.analysisView, cmd = a.analysisView.Update(msg)
			a.err = a.analysisView.Err()
			return a, cmd

		case messages.ViewProgress:
			a.progressView, cmd = a.progressView.Update(msg)
			return a, cmd

		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
			a.err = a.uploadView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			// Going back to search discards the selected firm
			a.selectedFirm = nil
			a.configureView.SetFirm(nil)
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewAnalysis:
			a.analysisView.Reset()
			return a, a.analysisView.Init()
		case messages.ViewUpload:
			a.uploadView.Reset()
			return a, a.uploadView.Init()
		case messages.ViewMenu, messages.ViewConfigure,
			messages.ViewProgress, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.FirmSelected:
		// Navigate from search to configuration
		a.selectedFirm = a.ports.Search.SelectFirm(msg.Place)
		a.configureView.SetFirm(a.selectedFirm)
		a.currentView = messages.ViewConfigure
		return a, a.configureView.Init()

	case messages.ReportRequested:
		// The pre-query is detached and best-effort; the progress
		// screen starts regardless.
		a.ports.Report.Run(a.ctx, msg.Firm)
		a.currentView = messages.ViewProgress
		return a, a.progressView.Start(msg.Firm)

	case messages.AnalysisSubmitted, messages.PollTick, messages.AnalysisPolled:
		a.analysisView, cmd = a.analysisView.Update(msg)
		a.err = a.analysisView.Err()
		return a, cmd

	case messages.ProgressTick:
		a.progressView, cmd = a.progressView.Update(msg)
		return a, cmd

	case messages.ContactSubmitted:
		logger.Info("report contact submitted: %s %s <%s>", msg.FirstName, msg.LastName, msg.Email)
		return a, nil

	case messages.GradeCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		a.err = a.uploadView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewMenu, messages.ViewConfigure, messages.ViewAnalysis,
			messages.ViewProgress, messages.ViewUpload, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewConfigure:
		a.configureView, cmd = a.configureView.Update(msg)
	case messages.ViewAnalysis:
		a.analysisView, cmd = a.analysisView.Update(msg)
	case messages.ViewProgress:
		a.progressView, cmd = a.progressView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewConfigure:
		return a.configureView.View()
	case messages.ViewAnalysis:
		return a.analysisView.View()
	case messages.ViewProgress:
		return a.progressView.View()
	case messages.ViewUpload:
		return a.uploadView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Enter firm name
  enter       Submit search
  n           New search

Configure:
  space       Toggle keyword
  a           Add custom keyword
  e           Edit practice area
  r           Run report

Analyze:
  tab         Next field
  enter       Submit

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// SelectedFirm returns the firm under configuration.
func (a *App) SelectedFirm() *domain.Firm {
	return a.selectedFirm
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.configureView.SetDimensions(width, height)
	a.analysisView.SetDimensions(width, height)
	a.progressView.SetDimensions(width, height)
	a.uploadView.SetDimensions(width, height)
}
