package driven

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// AnalysisAPI wraps the backend's firm website analysis endpoints.
type AnalysisAPI interface {
	// CreateAnalysis submits a new analysis job and returns its
	// initial state.
	CreateAnalysis(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisJob, error)

	// GetAnalysis fetches the current state of a job by id.
	GetAnalysis(ctx context.Context, jobID string) (*domain.AnalysisJob, error)
}
