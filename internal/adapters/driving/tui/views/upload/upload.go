// Package upload provides the document grading view: a file path
// prompt followed by the graded result.
package upload

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/components/input"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/components/status"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/keymap"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/messages"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/styles"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
)

// View represents the document grading view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	statusbar *status.Bar

	gradingService driving.DocumentGradingService
	ctx            context.Context

	analysis  *domain.DocumentAnalysis
	uploading bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewView creates a new document grading view.
func NewView(s *styles.Styles, km *keymap.KeyMap, gradingService driving.DocumentGradingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	field := input.NewField(s, "Document", "Path to your document...")
	field.Focus()

	return &View{
		styles:         s,
		keymap:         km,
		input:          field,
		statusbar:      status.NewBar(s, km),
		gradingService: gradingService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
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

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.GradeCompleted:
		v.handleGradeCompleted(msg)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.uploading {
		return v, nil
	}

	if v.analysis != nil {
		if msg.String() == "n" {
			v.Reset()
		}
		return v, nil
	}

	if msg.Type == tea.KeyEnter {
		return v, v.grade()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// grade uploads the document at the entered path. An empty path fails
// immediately without touching the network.
func (v *View) grade() tea.Cmd {
	path := strings.TrimSpace(v.input.Value())
	if path == "" {
		v.err = domain.ErrNoFile
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("Enter a document path")
		return nil
	}

	v.err = nil
	v.uploading = true
	v.statusbar.SetState(status.StateUploading)

	return func() tea.Msg {
		analysis, err := v.gradingService.Grade(v.ctx, path)
		return messages.GradeCompleted{Analysis: analysis, Err: err}
	}
}

func (v *View) handleGradeCompleted(msg messages.GradeCompleted) {
	v.uploading = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.analysis = msg.Analysis
	v.statusbar.SetState(status.StateReady)
}

// View renders the upload view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)
	sections = append(sections, v.styles.Title.Render("Grade Document"), "")

	switch {
	case v.analysis != nil:
		sections = append(sections, v.renderAnalysis())
		sections = append(sections, "", v.styles.Help.Render("n grade another · esc back"))
	case v.uploading:
		sections = append(sections, v.styles.Warning.Render("Uploading..."))
	default:
		sections = append(sections, v.input.View())
		sections = append(sections, "", v.styles.Help.Render("enter upload · esc back"))
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderAnalysis() string {
	a := v.analysis

	lines := []string{
		v.styles.Success.Render(fmt.Sprintf("Score: %d/100", a.Score)),
		"",
		v.styles.Normal.Render(fmt.Sprintf("Structure:      %d", a.Analysis.Structure)),
		v.styles.Normal.Render(fmt.Sprintf("Content:        %d", a.Analysis.Content)),
		v.styles.Normal.Render(fmt.Sprintf("Legal Accuracy: %d", a.Analysis.LegalAccuracy)),
		v.styles.Normal.Render(fmt.Sprintf("Clarity:        %d", a.Analysis.Clarity)),
	}

	if a.Feedback != "" {
		lines = append(lines, "", v.styles.Normal.Render(a.Feedback))
	}
	if len(a.Suggestions) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Suggestions"))
		for _, s := range a.Suggestions {
			lines = append(lines, v.styles.Normal.Render("- "+s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Path returns the entered document path.
func (v *View) Path() string {
	return v.input.Value()
}

// SetPath sets the document path.
func (v *View) SetPath(path string) {
	v.input.SetValue(path)
}

// Analysis returns the graded result, if any.
func (v *View) Analysis() *domain.DocumentAnalysis {
	return v.analysis
}

// Uploading reports whether an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the path and any previous result.
func (v *View) Reset() {
	v.input.SetValue("")
	v.input.Focus()
	v.analysis = nil
	v.uploading = false
	v.err = nil
	v.statusbar.Clear()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
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
