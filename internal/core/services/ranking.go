package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// Ensure RankingService implements the interface.
var _ driving.RankingService = (*RankingService)(nil)

// RankingService runs AI assistant visibility checks.
type RankingService struct {
	api driven.RankingAPI
}

// NewRankingService creates a new ranking service.
func NewRankingService(api driven.RankingAPI) *RankingService {
	return &RankingService{api: api}
}

// Check runs the basic visibility check.
func (s *RankingService) Check(
	ctx context.Context, req domain.RankingRequest,
) (*domain.RankingReport, error) {
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, fmt.Errorf("ranking check: %w", domain.ErrMissingField)
	}

	report, err := s.api.CheckAIRanking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("check ai ranking: %w", err)
	}
	return s.validated(report)
}

// Comprehensive runs the full multi-platform check.
func (s *RankingService) Comprehensive(
	ctx context.Context, req domain.ComprehensiveCheckRequest,
) (*domain.RankingReport, error) {
	logger.Section("AI Visibility Check")
	logger.Debug("Business: %q keywords: %q", req.Business, req.Keywords)

	if strings.TrimSpace(req.Business) == "" {
		return nil, fmt.Errorf("comprehensive check: %w", domain.ErrMissingField)
	}

	report, err := s.api.ComprehensiveCheck(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("comprehensive check: %w", err)
	}
	return s.validated(report)
}

// Test runs the check against the backend's test route.
func (s *RankingService) Test(
	ctx context.Context, req domain.ComprehensiveCheckRequest,
) (*domain.RankingReport, error) {
	report, err := s.api.TestCheck(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("test check: %w", err)
	}
	return s.validated(report)
}

// validated enforces the report invariants before handing it out.
func (s *RankingService) validated(report *domain.RankingReport) (*domain.RankingReport, error) {
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("malformed ranking report: %w", err)
	}
	if report.Summary != nil {
		logger.Debug("Visible on %d/%d platforms, score %d",
			report.Summary.VisibleOn, report.Summary.TotalPlatforms, report.Summary.VisibilityScore)
	}
	return report, nil
}
