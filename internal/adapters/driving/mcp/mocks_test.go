package mcp

import (
	"context"
	"io"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

type mockSearchService struct {
	results []domain.PlaceResult
	err     error
}

func (m *mockSearchService) Search(_ context.Context, _ domain.SearchQuery) ([]domain.PlaceResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSearchService) SearchCity(_ context.Context, _ string) ([]domain.CityResult, error) {
	return nil, nil
}

func (m *mockSearchService) PlaceDetails(_ context.Context, _ string) (*domain.PlaceResult, error) {
	return nil, domain.ErrNotFound
}

func (m *mockSearchService) SelectFirm(place domain.PlaceResult) *domain.Firm {
	return domain.NewFirmFromPlace(place)
}

type mockGradingService struct {
	analysis *domain.DocumentAnalysis
	err      error
}

func (m *mockGradingService) Grade(_ context.Context, _ string) (*domain.DocumentAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.analysis, nil
}

func (m *mockGradingService) GradeReader(_ context.Context, _ string, _ io.Reader) (*domain.DocumentAnalysis, error) {
	return m.analysis, m.err
}

func (m *mockGradingService) History(_ context.Context) ([]domain.DocumentAnalysis, error) {
	return nil, nil
}

func (m *mockGradingService) ByID(_ context.Context, _ string) (*domain.DocumentAnalysis, error) {
	return m.analysis, m.err
}

type mockRankingService struct {
	report *domain.RankingReport
	err    error
}

func (m *mockRankingService) Check(_ context.Context, _ domain.RankingRequest) (*domain.RankingReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRankingService) Comprehensive(_ context.Context, _ domain.ComprehensiveCheckRequest) (*domain.RankingReport, error) {
	return m.report, m.err
}

func (m *mockRankingService) Test(_ context.Context, _ domain.ComprehensiveCheckRequest) (*domain.RankingReport, error) {
	return m.report, m.err
}
