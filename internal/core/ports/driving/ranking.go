package driving

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// RankingService runs AI assistant visibility checks.
type RankingService interface {
	// Check runs the basic visibility check.
	Check(ctx context.Context, req domain.RankingRequest) (*domain.RankingReport, error)

	// Comprehensive runs the full multi-platform check.
	Comprehensive(ctx context.Context, req domain.ComprehensiveCheckRequest) (*domain.RankingReport, error)

	// Test runs the check against the backend's test route.
	Test(ctx context.Context, req domain.ComprehensiveCheckRequest) (*domain.RankingReport, error)
}
