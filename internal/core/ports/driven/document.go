package driven

import (
	"context"
	"io"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// DocumentAPI wraps the backend's document grading endpoints.
type DocumentAPI interface {
	// AnalyzeDocument uploads a document for grading. The filename is
	// sent as the multipart filename; analysisType may be empty.
	AnalyzeDocument(ctx context.Context, filename string, document io.Reader, analysisType string) (*domain.DocumentAnalysis, error)

	// AnalysisHistory lists prior gradings, newest first.
	AnalysisHistory(ctx context.Context) ([]domain.DocumentAnalysis, error)

	// AnalysisByID fetches a single grading by id.
	AnalysisByID(ctx context.Context, id string) (*domain.DocumentAnalysis, error)
}
