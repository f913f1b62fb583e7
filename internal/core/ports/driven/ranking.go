package driven

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// RankingAPI wraps the backend's AI visibility check endpoints.
type RankingAPI interface {
	// CheckAIRanking runs the basic visibility check.
	CheckAIRanking(ctx context.Context, req domain.RankingRequest) (*domain.RankingReport, error)

	// ComprehensiveCheck runs the full multi-platform check.
	ComprehensiveCheck(ctx context.Context, req domain.ComprehensiveCheckRequest) (*domain.RankingReport, error)

	// TestCheck runs the check against the backend's test route.
	TestCheck(ctx context.Context, req domain.ComprehensiveCheckRequest) (*domain.RankingReport, error)
}
