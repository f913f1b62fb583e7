package backend

import (
	"context"
	"fmt"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// rankingAPI implements driven.RankingAPI.
type rankingAPI struct {
	client *Client
}

var _ driven.RankingAPI = (*rankingAPI)(nil)

// CheckAIRanking runs the basic visibility check.
func (r *rankingAPI) CheckAIRanking(ctx context.Context, req domain.RankingRequest) (*domain.RankingReport, error) {
	var report domain.RankingReport
	if err := r.client.postJSON(ctx, "/api/check-ai-ranking", req, &report); err != nil {
		return nil, fmt.Errorf("checking ai ranking: %w", err)
	}
	return &report, nil
}

// ComprehensiveCheck runs the full visibility check.
func (r *rankingAPI) ComprehensiveCheck(
	ctx context.Context, req domain.ComprehensiveCheckRequest,
) (*domain.RankingReport, error) {
	var report domain.RankingReport
	if err := r.client.postJSON(ctx, "/api/comprehensive-check", req, &report); err != nil {
		return nil, fmt.Errorf("running comprehensive check: %w", err)
	}
	return &report, nil
}

// TestCheck runs the visibility check against the test endpoint.
func (r *rankingAPI) TestCheck(
	ctx context.Context, req domain.ComprehensiveCheckRequest,
) (*domain.RankingReport, error) {
	var report domain.RankingReport
	if err := r.client.postJSON(ctx, "/api/test", req, &report); err != nil {
		return nil, fmt.Errorf("running test check: %w", err)
	}
	return &report, nil
}
