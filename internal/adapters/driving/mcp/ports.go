package mcp

import (
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search locates law firms through the directory.
	Search driving.FirmSearchService

	// Grading uploads documents for grading.
	Grading driving.DocumentGradingService

	// Ranking runs AI visibility checks.
	Ranking driving.RankingService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Grading == nil {
		return ErrMissingGradingService
	}
	// Ranking is optional
	return nil
}
