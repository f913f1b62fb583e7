// Package analysis provides the website analysis view: a submission
// form followed by a polling status display until the job finishes.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

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

// pollInterval is the fixed cadence for polling a submitted job.
const pollInterval = 2 * time.Second

// Form field indexes.
const (
	fieldURL = iota
	fieldName
	fieldEmail
	fieldCount
)

// View represents the website analysis view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	fields    [fieldCount]*input.Field
	statusbar *status.Bar

	analysisService driving.FirmAnalysisService
	ctx             context.Context

	focus   int
	job     *domain.AnalysisJob
	polling bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new analysis view.
func NewView(s *styles.Styles, km *keymap.KeyMap, analysisService driving.FirmAnalysisService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:          s,
		keymap:          km,
		statusbar:       status.NewBar(s, km),
		analysisService: analysisService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}

	v.fields[fieldURL] = input.NewField(s, "Website", "https://yourfirm.com")
	v.fields[fieldName] = input.NewField(s, "Firm Name", "Your firm name")
	v.fields[fieldEmail] = input.NewField(s, "Email", "you@yourfirm.com")
	v.fields[fieldURL].Focus()

	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[fieldURL].Init()
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnalysisSubmitted:
		return v.handleSubmitted(msg)

	case messages.PollTick:
		return v.handlePollTick(msg)

	case messages.AnalysisPolled:
		return v.handlePolled(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// No form input while a job is in flight or shown
	if v.polling || v.job != nil {
		if msg.String() == "n" {
			v.Reset()
		}
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
		if v.focus < fieldCount-1 {
			v.moveFocus(1)
			return v, nil
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) {
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + fieldCount) % fieldCount
	v.fields[v.focus].Focus()
}

// submit validates the form and creates the analysis job.
func (v *View) submit() tea.Cmd {
	req := v.Request()
	if err := req.Validate(); err != nil {
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("All fields are required")
		return nil
	}

	v.err = nil
	v.statusbar.SetState(status.StatePolling)

	return func() tea.Msg {
		job, err := v.analysisService.Submit(v.ctx, req)
		return messages.AnalysisSubmitted{Job: job, Err: err}
	}
}

func (v *View) handleSubmitted(msg messages.AnalysisSubmitted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	v.job = msg.Job
	v.polling = !msg.Job.Status.IsTerminal()
	if !v.polling {
		v.statusbar.SetState(status.StateReady)
		return v, nil
	}
	return v, v.scheduleTick(msg.Job.JobID)
}

func (v *View) handlePollTick(msg messages.PollTick) (*View, tea.Cmd) {
	// Drop ticks for jobs that are no longer current
	if !v.polling || v.job == nil || v.job.JobID != msg.JobID {
		return v, nil
	}

	jobID := msg.JobID
	return v, func() tea.Msg {
		job, err := v.analysisService.Poll(v.ctx, jobID)
		return messages.AnalysisPolled{JobID: jobID, Job: job, Err: err}
	}
}

func (v *View) handlePolled(msg messages.AnalysisPolled) (*View, tea.Cmd) {
	// Stale response for a previous job: ignore
	if v.job == nil || v.job.JobID != msg.JobID {
		return v, nil
	}

	if msg.Err != nil {
		// Transient failure: surface it, keep the last known state and
		// poll again
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("Failed to check analysis status")
		return v, v.scheduleTick(msg.JobID)
	}

	v.err = nil
	v.job = msg.Job
	if msg.Job.Status.IsTerminal() {
		v.polling = false
		v.statusbar.SetState(status.StateReady)
		return v, nil
	}
	v.statusbar.SetState(status.StatePolling)
	return v, v.scheduleTick(msg.JobID)
}

// scheduleTick arranges the next poll on the fixed cadence.
func (v *View) scheduleTick(jobID string) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return messages.PollTick{JobID: jobID}
	})
}

// View renders the analysis view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)
	sections = append(sections, v.styles.Title.Render("Analyze Website"), "")

	if v.job != nil {
		sections = append(sections, v.renderJob())
	} else {
		for _, f := range v.fields {
			sections = append(sections, f.View())
		}
		sections = append(sections, "", v.styles.Help.Render("tab next field · enter submit · esc back"))
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderJob() string {
	lines := []string{
		v.styles.Normal.Render("Firm: " + v.job.FirmName),
		v.styles.Muted.Render(v.job.FirmURL),
		"",
	}

	switch v.job.Status {
	case domain.JobPending, domain.JobProcessing:
		lines = append(lines, v.styles.Warning.Render("Analyzing... ("+v.job.Status.String()+")"))
	case domain.JobFailed:
		lines = append(lines, v.styles.Error.Render("Analysis failed."))
		lines = append(lines, v.styles.Help.Render("n new analysis · esc back"))
	case domain.JobCompleted:
		lines = append(lines, v.renderResults())
		lines = append(lines, "", v.styles.Help.Render("n new analysis · esc back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *View) renderResults() string {
	r := v.job.Results
	if r == nil {
		return v.styles.Success.Render("Analysis complete.")
	}

	lines := []string{
		v.styles.Success.Render(fmt.Sprintf("Overall Score: %d/100", r.Score)),
		"",
		v.styles.Normal.Render(fmt.Sprintf("Website Quality:   %d", r.Analysis.WebsiteQuality)),
		v.styles.Normal.Render(fmt.Sprintf("Content Relevance: %d", r.Analysis.ContentRelevance)),
		v.styles.Normal.Render(fmt.Sprintf("User Experience:   %d", r.Analysis.UserExperience)),
		v.styles.Normal.Render(fmt.Sprintf("Legal Compliance:  %d", r.Analysis.LegalCompliance)),
	}

	if r.Feedback != "" {
		lines = append(lines, "", v.styles.Normal.Render(r.Feedback))
	}
	if len(r.Suggestions) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Suggestions"))
		for _, s := range r.Suggestions {
			lines = append(lines, v.styles.Normal.Render("- "+s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Request builds the submission from the current form values.
func (v *View) Request() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		FirmURL:  strings.TrimSpace(v.fields[fieldURL].Value()),
		FirmName: strings.TrimSpace(v.fields[fieldName].Value()),
		Email:    strings.TrimSpace(v.fields[fieldEmail].Value()),
	}
}

// SetRequest fills the form, used when arriving with a firm already
// configured.
func (v *View) SetRequest(req domain.AnalysisRequest) {
	v.fields[fieldURL].SetValue(req.FirmURL)
	v.fields[fieldName].SetValue(req.FirmName)
	v.fields[fieldEmail].SetValue(req.Email)
}

// Job returns the current job, if any.
func (v *View) Job() *domain.AnalysisJob {
	return v.job
}

// Polling reports whether a job is being polled.
func (v *View) Polling() bool {
	return v.polling
}

// Focus returns the focused field index.
func (v *View) Focus() int {
	return v.focus
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the form and any finished job.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Blur()
		f.SetValue("")
	}
	v.focus = fieldURL
	v.fields[fieldURL].Focus()
	v.job = nil
	v.polling = false
	v.err = nil
	v.statusbar.Clear()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	for _, f := range v.fields {
		f.SetWidth(width)
	}
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
