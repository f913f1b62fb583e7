package driven

import (
	"context"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// HistoryStore caches completed document gradings locally so history
// remains available when the backend is unreachable.
type HistoryStore interface {
	// SaveAnalysis inserts or replaces a grading by id.
	SaveAnalysis(ctx context.Context, analysis *domain.DocumentAnalysis) error

	// ListAnalyses returns cached gradings, newest first.
	ListAnalyses(ctx context.Context) ([]domain.DocumentAnalysis, error)

	// GetAnalysis fetches a cached grading by id.
	// Returns domain.ErrNotFound when absent.
	GetAnalysis(ctx context.Context, id string) (*domain.DocumentAnalysis, error)

	// Close releases the underlying storage.
	Close() error
}
