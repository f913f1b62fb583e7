package driving

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// FirmAnalysisService submits firm website analyses and tracks them
// to completion.
type FirmAnalysisService interface {
	// Submit validates the request client-side and creates a job.
	Submit(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisJob, error)

	// Poll fetches the current state of a job by id.
	Poll(ctx context.Context, jobID string) (*domain.AnalysisJob, error)

	// Await polls the job on a fixed cadence until it reaches a
	// terminal status or the context is cancelled. Transport errors
	// during polling are logged and retried, not fatal.
	Await(ctx context.Context, jobID string) (*domain.AnalysisJob, error)
}
