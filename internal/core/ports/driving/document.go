package driving

import (
	"context"
	"io"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

// DocumentGradingService uploads documents for grading and exposes the
// grading history.
type DocumentGradingService interface {
	// Grade uploads the file at path. An empty path fails with
	// domain.ErrNoFile before any network request is made.
	Grade(ctx context.Context, path string) (*domain.DocumentAnalysis, error)

	// GradeReader uploads in-memory document content under the given
	// filename.
	GradeReader(ctx context.Context, filename string, document io.Reader) (*domain.DocumentAnalysis, error)

	// History lists prior gradings, falling back to the local cache
	// when the backend is unreachable.
	History(ctx context.Context) ([]domain.DocumentAnalysis, error)

	// ByID fetches a single grading.
	ByID(ctx context.Context, id string) (*domain.DocumentAnalysis, error)
}
