// Package progress provides the report progress screen shown after a
// report is started. The step percentages are a fixed display while
// the backend works; only the elapsed timer advances.
package progress

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/components/input"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/keymap"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/messages"
	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/styles"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// tickInterval is the cadence of the elapsed timer.
const tickInterval = time.Second

// step is one line of the progress display.
type step struct {
	label   string
	percent int
}

// steps is the fixed progress display. The final step stays below 100
// to signal that the report is still being prepared.
var steps = []step{
	{label: "Website Analysis", percent: 100},
	{label: "AI Testing", percent: 100},
	{label: "Competitor Research", percent: 100},
	{label: "Report Generation", percent: 60},
}

// Contact field indexes.
const (
	contactFirstName = iota
	contactLastName
	contactEmail
	contactCount
)

// View represents the report progress view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	fields [contactCount]*input.Field

	firm      *domain.Firm
	elapsed   time.Duration
	running   bool
	submitted bool
	focus     int
	width     int
	height    int
	ready     bool
}

// NewView creates a new progress view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}

	v.fields[contactFirstName] = input.NewField(s, "First Name", "Jane")
	v.fields[contactLastName] = input.NewField(s, "Last Name", "Doe")
	v.fields[contactEmail] = input.NewField(s, "Business Email", "you@yourfirm.com")

	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Start begins the progress display for the firm and resets the timer.
func (v *View) Start(firm *domain.Firm) tea.Cmd {
	v.firm = firm
	v.elapsed = 0
	v.running = true
	v.submitted = false
	v.focus = contactFirstName
	for _, f := range v.fields {
		f.Blur()
		f.SetValue("")
	}
	v.fields[contactFirstName].Focus()
	return v.tick()
}

// Update handles messages for the progress view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProgressTick:
		if !v.running {
			return v, nil
		}
		v.elapsed += tickInterval
		return v, v.tick()
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		v.running = false
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.submitted {
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		v.moveFocus(1)
		return v, nil
	case tea.KeyShiftTab, tea.KeyUp:
		v.moveFocus(-1)
		return v, nil
	case tea.KeyEnter:
		if v.focus < contactCount-1 {
			v.moveFocus(1)
			return v, nil
		}
		return v, v.submitContact()
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) {
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + contactCount) % contactCount
	v.fields[v.focus].Focus()
}

// submitContact emits the contact details. Any empty field keeps the
// form open.
func (v *View) submitContact() tea.Cmd {
	first := strings.TrimSpace(v.fields[contactFirstName].Value())
	last := strings.TrimSpace(v.fields[contactLastName].Value())
	email := strings.TrimSpace(v.fields[contactEmail].Value())
	if first == "" || last == "" || email == "" {
		return nil
	}

	v.submitted = true
	v.fields[v.focus].Blur()

	return func() tea.Msg {
		return messages.ContactSubmitted{FirstName: first, LastName: last, Email: email}
	}
}

// tick schedules the next timer advance.
func (v *View) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return messages.ProgressTick{}
	})
}

// View renders the progress view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)
	sections = append(sections, v.styles.Title.Render("Generating Your Report"), "")

	if v.firm != nil {
		sections = append(sections, v.styles.Normal.Render(v.firm.Name))
		sections = append(sections, v.styles.Muted.Render("Practice Area: "+v.firm.PracticeArea), "")
	}

	for _, s := range steps {
		sections = append(sections, v.renderStep(s))
	}

	sections = append(sections, "", v.styles.Muted.Render("Elapsed: "+FormatElapsed(v.elapsed)), "")

	if v.submitted {
		sections = append(sections, v.styles.Success.Render("Thanks! We'll send your report when it's ready."))
	} else {
		sections = append(sections, v.styles.Subtitle.Render("Where should we send your report?"))
		for _, f := range v.fields {
			sections = append(sections, f.View())
		}
		sections = append(sections, "", v.styles.Help.Render("tab next field · enter submit · esc back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderStep(s step) string {
	mark := v.styles.Success.Render("✓")
	if s.percent < 100 {
		mark = v.styles.Warning.Render("…")
	}
	return fmt.Sprintf("%s %-20s %3d%%", mark, s.label, s.percent)
}

// FormatElapsed renders a duration as "XmYs".
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%dm%ds", total/60, total%60)
}

// Elapsed returns the elapsed time shown by the timer.
func (v *View) Elapsed() time.Duration {
	return v.elapsed
}

// Running reports whether the timer is advancing.
func (v *View) Running() bool {
	return v.running
}

// Submitted reports whether the contact form was submitted.
func (v *View) Submitted() bool {
	return v.submitted
}

// Firm returns the firm the report was started for.
func (v *View) Firm() *domain.Firm {
	return v.firm
}

// Focus returns the focused contact field index.
func (v *View) Focus() int {
	return v.focus
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	for _, f := range v.fields {
		f.SetWidth(width)
	}
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
