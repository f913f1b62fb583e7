// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the firm directory search view.
	ViewSearch
	// ViewConfigure is the firm configuration view.
	ViewConfigure
	// ViewAnalysis is the website analysis submission and polling view.
	ViewAnalysis
	// ViewProgress is the report progress display.
	ViewProgress
	// ViewUpload is the document grading view.
	ViewUpload
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewConfigure:
		return "configure"
	case ViewAnalysis:
		return "analysis"
	case ViewProgress:
		return "progress"
	case ViewUpload:
		return "upload"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SearchCompleted carries directory search results back to the model.
type SearchCompleted struct {
	Results []domain.PlaceResult
	Err     error
}

// FirmSelected signals a directory candidate was chosen for
// configuration.
type FirmSelected struct {
	Place domain.PlaceResult
}

// ReportRequested signals the user asked to run a report for the
// configured firm.
type ReportRequested struct {
	Firm *domain.Firm
}

// AnalysisSubmitted carries the job created by an analysis submission.
type AnalysisSubmitted struct {
	Job *domain.AnalysisJob
	Err error
}

// PollTick requests the next poll of an analysis job.
type PollTick struct {
	JobID string
}

// AnalysisPolled carries the polled state of an analysis job.
// JobID identifies which job the response belongs to so stale
// responses can be dropped.
type AnalysisPolled struct {
	JobID string
	Job   *domain.AnalysisJob
	Err   error
}

// ProgressTick advances the progress screen's elapsed timer.
type ProgressTick struct{}

// ContactSubmitted signals the progress screen's contact form was
// submitted.
type ContactSubmitted struct {
	FirstName string
	LastName  string
	Email     string
}

// GradeCompleted carries the result of a document grading upload.
type GradeCompleted struct {
	Analysis *domain.DocumentAnalysis
	Err      error
}
