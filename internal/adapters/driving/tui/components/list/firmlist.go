// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/growlaw/growlaw-cli/internal/adapters/driving/tui/styles"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// FirmList displays directory search candidates in a navigable list.
type FirmList struct {
	results  []domain.PlaceResult
	selected int
	searched bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewFirmList creates a new firm candidate list component.
func NewFirmList(s *styles.Styles) *FirmList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FirmList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the firm list.
func (l *FirmList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *FirmList) Update(msg tea.Msg) (*FirmList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the firm list.
func (l *FirmList) View() string {
	if len(l.results) == 0 {
		if l.searched {
			return l.styles.Warning.Render("No law firms found. Try a different search.")
		}
		return l.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(l.results)*3+2)

	// Header
	header := l.styles.Subtitle.Render(fmt.Sprintf("Law firms (%d)", len(l.results)))
	lines = append(lines, header, "")

	// Each candidate takes up to 3 lines (name, address, website)
	visibleCount := (l.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.results) {
		end = len(l.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderCandidate(i, &l.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderCandidate formats a single directory candidate.
func (l *FirmList) renderCandidate(index int, place *domain.PlaceResult) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := place.Name
	if name == "" {
		name = "(Unnamed)"
	}

	maxLen := l.width - 6
	if maxLen < 20 {
		maxLen = 20
	}
	if len(name) > maxLen {
		name = name[:maxLen-3] + "..."
	}

	var nameLine string
	if index == l.selected {
		nameLine = l.styles.Selected.Render(indicator + name)
	} else {
		nameLine = l.styles.Normal.Render(indicator + name)
	}

	address := place.Address
	if len(address) > maxLen {
		address = address[:maxLen-3] + "..."
	}
	addressLine := l.styles.Muted.Render("    " + address)

	var websiteLine string
	if place.Website != "" {
		websiteLine = "\n" + l.styles.Subtitle.Render("    "+place.Website)
	}

	return nameLine + "\n" + addressLine + websiteLine
}

// SetResults updates the candidate list. Marks the list as searched so
// an empty set renders the not-found notice.
func (l *FirmList) SetResults(results []domain.PlaceResult) {
	l.results = results
	l.selected = 0
	l.searched = true
}

// Clear empties the list and the searched flag.
func (l *FirmList) Clear() {
	l.results = nil
	l.selected = 0
	l.searched = false
}

// Results returns the current candidates.
func (l *FirmList) Results() []domain.PlaceResult {
	return l.results
}

// Selected returns the index of the selected candidate.
func (l *FirmList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *FirmList) SetSelected(index int) {
	if index >= 0 && index < len(l.results) {
		l.selected = index
	}
}

// SelectedResult returns the currently selected candidate, or nil.
func (l *FirmList) SelectedResult() *domain.PlaceResult {
	if len(l.results) == 0 || l.selected < 0 || l.selected >= len(l.results) {
		return nil
	}
	return &l.results[l.selected]
}

// MoveUp moves selection up.
func (l *FirmList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *FirmList) MoveDown() {
	if l.selected < len(l.results)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *FirmList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *FirmList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *FirmList) Height() int {
	return l.height
}

// Count returns the number of candidates.
func (l *FirmList) Count() int {
	return len(l.results)
}

// IsEmpty returns whether the list is empty.
func (l *FirmList) IsEmpty() bool {
	return len(l.results) == 0
}
