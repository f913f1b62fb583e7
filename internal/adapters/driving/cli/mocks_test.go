package cli

import (
	"context"
	"io"
	"time"

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

type mockAnalysisService struct {
	job *domain.AnalysisJob
	err error
}

func (m *mockAnalysisService) Submit(_ context.Context, req domain.AnalysisRequest) (*domain.AnalysisJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if m.job != nil {
		return m.job, nil
	}
	return &domain.AnalysisJob{
		JobID:     "job-1",
		Status:    domain.JobPending,
		FirmURL:   req.FirmURL,
		FirmName:  req.FirmName,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockAnalysisService) Poll(_ context.Context, jobID string) (*domain.AnalysisJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.job != nil {
		return m.job, nil
	}
	return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
}

func (m *mockAnalysisService) Await(_ context.Context, jobID string) (*domain.AnalysisJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.job != nil {
		return m.job, nil
	}
	return &domain.AnalysisJob{JobID: jobID, Status: domain.JobCompleted}, nil
}

type mockGradingService struct {
	analysis *domain.DocumentAnalysis
	history  []domain.DocumentAnalysis
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
	return m.history, m.err
}

func (m *mockGradingService) ByID(_ context.Context, _ string) (*domain.DocumentAnalysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.analysis == nil {
		return nil, domain.ErrNotFound
	}
	return m.analysis, nil
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

type mockReportService struct {
	reply string
	err   error
}

func (m *mockReportService) Run(_ context.Context, _ *domain.Firm) {}

func (m *mockReportService) Ask(_ context.Context, _, _ string, _ float64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous ones.
func setupTestServices() func() {
	oldSearch := searchService
	oldAnalysis := analysisService
	oldGrading := gradingService
	oldRanking := rankingService
	oldReport := reportService

	avg := 2.5
	rank1 := 1

	searchService = &mockSearchService{
		results: []domain.PlaceResult{
			{PlaceID: "p1", Name: "Acme Law", Address: "1 Main St, Springfield", Website: "https://acmelaw.test"},
		},
	}
	analysisService = &mockAnalysisService{}
	gradingService = &mockGradingService{
		analysis: &domain.DocumentAnalysis{
			ID:    "doc-1",
			Score: 88,
			Analysis: domain.DocumentScores{
				Structure:     90,
				Content:       85,
				LegalAccuracy: 92,
				Clarity:       86,
			},
			Feedback:    "Solid contract.",
			Suggestions: []string{"Define all terms"},
			Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		history: []domain.DocumentAnalysis{
			{ID: "doc-1", Score: 88, Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	rankingService = &mockRankingService{
		report: &domain.RankingReport{
			BusinessName: "Acme Law",
			Platforms: map[string]domain.PlatformResult{
				"chatgpt": {Platform: "chatgpt", IsVisible: true, Rank: &rank1},
				"gemini":  {Platform: "gemini", IsVisible: false},
			},
			Summary: &domain.RankingSummary{
				TotalPlatforms:  2,
				VisibleOn:       1,
				NotVisibleOn:    1,
				VisibilityScore: 50,
				AveragePosition: &avg,
				Grade:           "C",
			},
		},
	}
	reportService = &mockReportService{reply: "Here are the top firms."}

	return func() {
		searchService = oldSearch
		analysisService = oldAnalysis
		gradingService = oldGrading
		rankingService = oldRanking
		reportService = oldReport
	}
}
