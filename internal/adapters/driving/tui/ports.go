// Package tui provides the interactive terminal user interface for growlaw.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search locates law firms through the directory.
	Search driving.FirmSearchService

	// Analysis submits and polls website analysis jobs.
	Analysis driving.FirmAnalysisService

	// Grading uploads documents for grading.
	Grading driving.DocumentGradingService

	// Report triggers reports for a configured firm.
	Report driving.ReportService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.FirmSearchService,
	analysis driving.FirmAnalysisService,
	grading driving.DocumentGradingService,
	report driving.ReportService,
) *Ports {
	return &Ports{
		Search:   search,
		Analysis: analysis,
		Grading:  grading,
		Report:   report,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Grading == nil {
		return ErrMissingGradingService
	}
	if p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
