package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// analysisAPI implements driven.AnalysisAPI.
type analysisAPI struct {
	client *Client
}

var _ driven.AnalysisAPI = (*analysisAPI)(nil)

// CreateAnalysis submits a firm website analysis job.
func (a *analysisAPI) CreateAnalysis(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisJob, error) {
	var job domain.AnalysisJob
	if err := a.client.postJSON(ctx, "/api/analysis", req, &job); err != nil {
		return nil, fmt.Errorf("creating analysis: %w", err)
	}
	return &job, nil
}

// GetAnalysis fetches the current state of an analysis job.
func (a *analysisAPI) GetAnalysis(ctx context.Context, jobID string) (*domain.AnalysisJob, error) {
	var job domain.AnalysisJob
	if err := a.client.getJSON(ctx, "/api/analysis/"+url.PathEscape(jobID), nil, &job); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching analysis %s: %w", jobID, err)
	}
	return &job, nil
}
