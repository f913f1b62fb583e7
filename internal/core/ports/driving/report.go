package driving

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// ReportService triggers AI visibility reports for a configured firm.
type ReportService interface {
	// Run dispatches a natural-language summary of the firm's
	// criteria to the assistant as a detached best-effort call.
	// Failure is logged, never returned: report generation proceeds
	// regardless of the pre-query's outcome.
	Run(ctx context.Context, firm *domain.Firm)

	// Ask sends a free-form message to the assistant and returns its
	// reply.
	Ask(ctx context.Context, message, model string, temperature float64) (string, error)
}
