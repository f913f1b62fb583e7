// Package configure provides the firm configuration view where the
// user edits the practice area and picks research keywords before
// running a report.
package configure

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/components/input"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/keymap"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/messages"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/styles"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// mode is the focus state of the configuration view.
type mode int

const (
	modeKeywords mode = iota // navigating the suggested keyword pills
	modeCustom               // typing a custom keyword
	modeEditArea             // editing the practice area
)

// View represents the firm configuration view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	firm        *domain.Firm
	cursor      int
	mode        mode
	customInput *input.Field
	areaInput   *input.Field
	width       int
	height      int
	ready       bool
}

// NewView creates a new configuration view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		customInput: input.NewField(s, "Keyword", "Add a custom keyword..."),
		areaInput:   input.NewField(s, "Practice Area", domain.DefaultPracticeArea),
		width:       80,
		height:      24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetFirm loads the firm to configure and resets the cursor.
func (v *View) SetFirm(firm *domain.Firm) {
	v.firm = firm
	v.cursor = 0
	v.mode = modeKeywords
	v.customInput.SetValue("")
	if firm != nil {
		v.areaInput.SetValue(firm.PracticeArea)
	}
}

// Firm returns the firm under configuration.
func (v *View) Firm() *domain.Firm {
	return v.firm
}

// Update handles messages for the configuration view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input per mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeCustom:
		return v.handleCustomKey(msg)
	case modeEditArea:
		return v.handleAreaKey(msg)
	}
	return v.handleKeywordsKey(msg)
}

func (v *View) handleKeywordsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	if msg.Type == tea.KeySpace {
		v.toggleAtCursor()
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveCursor(-1)
		return v, nil
	case tea.KeyDown:
		v.moveCursor(1)
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.moveCursor(-1)
	case "j":
		v.moveCursor(1)
	case " ":
		v.toggleAtCursor()
	case "a":
		v.mode = modeCustom
		v.customInput.SetValue("")
		return v, v.customInput.Focus()
	case "e":
		v.mode = modeEditArea
		if v.firm != nil {
			v.areaInput.SetValue(v.firm.PracticeArea)
		}
		return v, v.areaInput.Focus()
	case "r":
		if v.firm == nil {
			return v, nil
		}
		firm := v.firm
		return v, func() tea.Msg {
			return messages.ReportRequested{Firm: firm}
		}
	}

	return v, nil
}

func (v *View) handleCustomKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = modeKeywords
		v.customInput.Blur()
		v.customInput.SetValue("")
		return v, nil
	case tea.KeyEnter:
		if v.firm != nil {
			v.firm.AddKeyword(v.customInput.Value())
		}
		v.mode = modeKeywords
		v.customInput.Blur()
		v.customInput.SetValue("")
		return v, nil
	}

	var cmd tea.Cmd
	v.customInput, cmd = v.customInput.Update(msg)
	return v, cmd
}

func (v *View) handleAreaKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel without applying
		v.mode = modeKeywords
		v.areaInput.Blur()
		return v, nil
	case tea.KeyEnter:
		if v.firm != nil {
			area := strings.TrimSpace(v.areaInput.Value())
			if area != "" {
				v.firm.SetPracticeArea(area)
			}
		}
		v.mode = modeKeywords
		v.areaInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.areaInput, cmd = v.areaInput.Update(msg)
	return v, cmd
}

func (v *View) moveCursor(delta int) {
	next := v.cursor + delta
	if next < 0 || next >= len(domain.SuggestedKeywords) {
		return
	}
	v.cursor = next
}

func (v *View) toggleAtCursor() {
	if v.firm == nil {
		return
	}
	if v.cursor < 0 || v.cursor >= len(domain.SuggestedKeywords) {
		return
	}
	v.firm.ToggleKeyword(domain.SuggestedKeywords[v.cursor])
}

// View renders the configuration view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.firm == nil {
		return v.styles.Muted.Render("No firm selected. Search for a firm first.")
	}

	sections := make([]string, 0, 16)

	sections = append(sections, v.styles.Title.Render("Configure Report"), "")
	sections = append(sections, v.renderSummary(), "")

	sections = append(sections, v.styles.Subtitle.Render("Research Keywords"))
	sections = append(sections, v.renderKeywords())

	if custom := v.firm.CustomKeywords(); len(custom) > 0 {
		sections = append(sections, "", v.styles.Subtitle.Render("Custom Keywords"))
		sections = append(sections, v.styles.Normal.Render(strings.Join(custom, ", ")))
	}

	switch v.mode {
	case modeCustom:
		sections = append(sections, "", v.customInput.View())
	case modeEditArea:
		sections = append(sections, "", v.areaInput.View())
	}

	help := v.styles.Help.Render("space toggle · a add keyword · e edit practice area · r run report · esc back")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderSummary() string {
	lines := []string{
		v.styles.Normal.Render(v.firm.Name),
	}
	if v.firm.Location != "" {
		lines = append(lines, v.styles.Muted.Render(v.firm.Location))
	}
	if v.firm.Website != "" {
		lines = append(lines, v.styles.Muted.Render(v.firm.Website))
	}
	lines = append(lines, v.styles.Normal.Render("Practice Area: "+v.firm.PracticeArea))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *View) renderKeywords() string {
	lines := make([]string, 0, len(domain.SuggestedKeywords))
	for i, keyword := range domain.SuggestedKeywords {
		pill := v.styles.Pill
		if v.firm.HasKeyword(keyword) {
			pill = v.styles.PillActive
		}

		cursor := "  "
		if i == v.cursor && v.mode == modeKeywords {
			cursor = v.styles.Selected.Render("> ")
		}

		lines = append(lines, cursor+pill.Render(keyword))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.customInput.SetWidth(width)
	v.areaInput.SetWidth(width)
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

// Cursor returns the index of the highlighted suggested keyword.
func (v *View) Cursor() int {
	return v.cursor
}

// EditingKeyword reports whether the custom keyword input has focus.
func (v *View) EditingKeyword() bool {
	return v.mode == modeCustom
}

// EditingArea reports whether the practice area input has focus.
func (v *View) EditingArea() bool {
	return v.mode == modeEditArea
}
