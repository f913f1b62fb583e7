package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentGradingService = (*DocumentService)(nil)

// DocumentService uploads documents for grading. Completed gradings
// are cached to the history store best-effort.
type DocumentService struct {
	api     driven.DocumentAPI
	history driven.HistoryStore // optional
}

// NewDocumentService creates a new document grading service.
// The history store is optional (can be nil).
func NewDocumentService(api driven.DocumentAPI, history driven.HistoryStore) *DocumentService {
	return &DocumentService{api: api, history: history}
}

// Grade uploads the file at path for a comprehensive grading.
// An empty path is a validation error and never touches the network.
func (s *DocumentService) Grade(ctx context.Context, path string) (*domain.DocumentAnalysis, error) {
	if strings.TrimSpace(path) == "" {
		return nil, domain.ErrNoFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return s.GradeReader(ctx, filepath.Base(path), f)
}

// GradeReader uploads in-memory document content under filename.
func (s *DocumentService) GradeReader(
	ctx context.Context, filename string, document io.Reader,
) (*domain.DocumentAnalysis, error) {
	logger.Section("Document Grading")
	logger.Debug("Uploading %q", filename)

	analysis, err := s.api.AnalyzeDocument(ctx, filename, document, domain.AnalysisTypeComprehensive)
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("malformed grading for %q: %w", filename, err)
	}

	s.cache(ctx, analysis)
	return analysis, nil
}

// History lists gradings from the backend, falling back to the local
// cache when the backend is unreachable.
func (s *DocumentService) History(ctx context.Context) ([]domain.DocumentAnalysis, error) {
	analyses, err := s.api.AnalysisHistory(ctx)
	if err == nil {
		for i := range analyses {
			s.cache(ctx, &analyses[i])
		}
		return analyses, nil
	}

	if s.history == nil {
		return nil, fmt.Errorf("analysis history: %w", err)
	}

	logger.Warn("backend history unavailable, using local cache: %v", err)
	cached, cacheErr := s.history.ListAnalyses(ctx)
	if cacheErr != nil {
		return nil, fmt.Errorf("analysis history: %w", err)
	}
	return cached, nil
}

// ByID fetches a single grading, preferring the backend.
func (s *DocumentService) ByID(ctx context.Context, id string) (*domain.DocumentAnalysis, error) {
	if id == "" {
		return nil, fmt.Errorf("analysis by id: %w", domain.ErrInvalidInput)
	}

	analysis, err := s.api.AnalysisByID(ctx, id)
	if err == nil {
		s.cache(ctx, analysis)
		return analysis, nil
	}

	if s.history == nil {
		return nil, fmt.Errorf("analysis by id: %w", err)
	}

	cached, cacheErr := s.history.GetAnalysis(ctx, id)
	if cacheErr != nil {
		return nil, fmt.Errorf("analysis by id: %w", err)
	}
	return cached, nil
}

// cache writes a grading to the local store, ignoring failures.
func (s *DocumentService) cache(ctx context.Context, analysis *domain.DocumentAnalysis) {
	if s.history == nil {
		return
	}
	if err := s.history.SaveAnalysis(ctx, analysis); err != nil {
		logger.Warn("cache grading %s: %v", analysis.ID, err)
	}
}
