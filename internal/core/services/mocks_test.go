package services

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// --- Mock implementations of the driven ports ---

// mockPlacesAPI implements driven.PlacesAPI for testing.
type mockPlacesAPI struct {
	results    []domain.PlaceResult
	cities     []domain.CityResult
	place      *domain.PlaceResult
	searchErr  error
	cityErr    error
	detailsErr error
}

func (m *mockPlacesAPI) SearchLawFirms(_ context.Context, _ domain.SearchQuery) ([]domain.PlaceResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *mockPlacesAPI) SearchCity(_ context.Context, _ string) ([]domain.CityResult, error) {
	if m.cityErr != nil {
		return nil, m.cityErr
	}
	return m.cities, nil
}

func (m *mockPlacesAPI) PlaceDetails(_ context.Context, _ string) (*domain.PlaceResult, error) {
	if m.detailsErr != nil {
		return nil, m.detailsErr
	}
	return m.place, nil
}

// mockAnalysisAPI implements driven.AnalysisAPI for testing.
// getFunc lets tests script successive poll responses.
type mockAnalysisAPI struct {
	created   *domain.AnalysisJob
	createErr error
	getFunc   func(jobID string) (*domain.AnalysisJob, error)
	getCalls  atomic.Int64
}

func (m *mockAnalysisAPI) CreateAnalysis(_ context.Context, _ domain.AnalysisRequest) (*domain.AnalysisJob, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockAnalysisAPI) GetAnalysis(_ context.Context, jobID string) (*domain.AnalysisJob, error) {
	m.getCalls.Add(1)
	if m.getFunc != nil {
		return m.getFunc(jobID)
	}
	return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
}

// mockDocumentAPI implements driven.DocumentAPI for testing.
type mockDocumentAPI struct {
	analysis   *domain.DocumentAnalysis
	history    []domain.DocumentAnalysis
	analyzeErr error
	historyErr error
	byIDErr    error
	uploads    atomic.Int64
}

func (m *mockDocumentAPI) AnalyzeDocument(_ context.Context, _ string, _ io.Reader, _ string) (*domain.DocumentAnalysis, error) {
	m.uploads.Add(1)
	if m.analyzeErr != nil {
		return nil, m.analyzeErr
	}
	return m.analysis, nil
}

func (m *mockDocumentAPI) AnalysisHistory(_ context.Context) ([]domain.DocumentAnalysis, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return m.history, nil
}

func (m *mockDocumentAPI) AnalysisByID(_ context.Context, id string) (*domain.DocumentAnalysis, error) {
	if m.byIDErr != nil {
		return nil, m.byIDErr
	}
	return m.analysis, nil
}

// mockRankingAPI implements driven.RankingAPI for testing.
type mockRankingAPI struct {
	report *domain.RankingReport
	err    error
}

func (m *mockRankingAPI) CheckAIRanking(_ context.Context, _ domain.RankingRequest) (*domain.RankingReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRankingAPI) ComprehensiveCheck(_ context.Context, _ domain.ComprehensiveCheckRequest) (*domain.RankingReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRankingAPI) TestCheck(_ context.Context, _ domain.ComprehensiveCheckRequest) (*domain.RankingReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockAssistantAPI implements driven.AssistantAPI for testing.
type mockAssistantAPI struct {
	result string
	err    error
	calls  atomic.Int64

	// lastMessage records the most recent query for assertions.
	lastMessage atomic.Value
	done        chan struct{} // closed after the first call, when set
}

func (m *mockAssistantAPI) Search(_ context.Context, message, _ string, _ float64) (string, error) {
	m.lastMessage.Store(message)
	if m.calls.Add(1) == 1 && m.done != nil {
		close(m.done)
	}
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}
