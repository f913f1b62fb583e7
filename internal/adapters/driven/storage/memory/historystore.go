// Package memory provides an in-memory history store. It backs tests
// and runs where no cache file is wanted.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps document gradings in a map guarded by a mutex.
type HistoryStore struct {
	mu       sync.RWMutex
	analyses map[string]domain.DocumentAnalysis
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{analyses: make(map[string]domain.DocumentAnalysis)}
}

// SaveAnalysis inserts or replaces a grading by id.
func (s *HistoryStore) SaveAnalysis(_ context.Context, analysis *domain.DocumentAnalysis) error {
	if analysis == nil || analysis.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = *analysis
	return nil
}

// ListAnalyses returns cached gradings, newest first.
func (s *HistoryStore) ListAnalyses(_ context.Context) ([]domain.DocumentAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DocumentAnalysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// GetAnalysis fetches a cached grading by id.
func (s *HistoryStore) GetAnalysis(_ context.Context, id string) (*domain.DocumentAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.analyses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error { return nil }
