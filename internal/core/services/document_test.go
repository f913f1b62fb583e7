package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/adapters/driven/storage/memory"
	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func sampleAnalysis(id string) *domain.DocumentAnalysis {
	return &domain.DocumentAnalysis{
		ID:       id,
		Score:    82,
		Feedback: "Solid structure, citations need work.",
		Suggestions: []string{
			"Add a table of authorities",
			"Tighten the statement of facts",
		},
		Analysis: domain.DocumentScores{
			Structure:     85,
			Content:       80,
			LegalAccuracy: 78,
			Clarity:       86,
		},
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestDocumentService_Grade_NoFile(t *testing.T) {
	mock := &mockDocumentAPI{}
	svc := NewDocumentService(mock, nil)

	_, err := svc.Grade(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNoFile)
	// A missing file never issues a network request.
	assert.Zero(t, mock.uploads.Load())
}

func TestDocumentService_Grade_BlankPathIsNoFile(t *testing.T) {
	mock := &mockDocumentAPI{}
	svc := NewDocumentService(mock, nil)

	_, err := svc.Grade(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrNoFile)
	assert.Zero(t, mock.uploads.Load())
}

func TestDocumentService_Grade(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brief.txt")
	require.NoError(t, os.WriteFile(path, []byte("IN THE MATTER OF..."), 0600))

	mock := &mockDocumentAPI{analysis: sampleAnalysis("an-1")}
	svc := NewDocumentService(mock, nil)

	analysis, err := svc.Grade(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 82, analysis.Score)
	assert.Equal(t, int64(1), mock.uploads.Load())
}

func TestDocumentService_GradeReader_CachesResult(t *testing.T) {
	store := memory.NewHistoryStore()
	mock := &mockDocumentAPI{analysis: sampleAnalysis("an-2")}
	svc := NewDocumentService(mock, store)

	_, err := svc.GradeReader(context.Background(), "brief.txt", strings.NewReader("text"))
	require.NoError(t, err)

	cached, err := store.GetAnalysis(context.Background(), "an-2")
	require.NoError(t, err)
	assert.Equal(t, 82, cached.Score)
}

func TestDocumentService_GradeReader_MalformedScores(t *testing.T) {
	bad := sampleAnalysis("an-3")
	bad.Score = 140
	svc := NewDocumentService(&mockDocumentAPI{analysis: bad}, nil)

	_, err := svc.GradeReader(context.Background(), "brief.txt", strings.NewReader("text"))

	assert.ErrorIs(t, err, domain.ErrScoreOutOfRange)
}

func TestDocumentService_GradeReader_ServerError(t *testing.T) {
	serverErr := errors.New("document too large")
	svc := NewDocumentService(&mockDocumentAPI{analyzeErr: serverErr}, nil)

	_, err := svc.GradeReader(context.Background(), "brief.txt", strings.NewReader("text"))

	assert.ErrorIs(t, err, serverErr)
}

func TestDocumentService_History_FallsBackToCache(t *testing.T) {
	store := memory.NewHistoryStore()
	require.NoError(t, store.SaveAnalysis(context.Background(), sampleAnalysis("an-4")))

	svc := NewDocumentService(&mockDocumentAPI{historyErr: errors.New("backend down")}, store)

	history, err := svc.History(context.Background())

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "an-4", history[0].ID)
}

func TestDocumentService_History_NoCacheNoBackend(t *testing.T) {
	backendErr := errors.New("backend down")
	svc := NewDocumentService(&mockDocumentAPI{historyErr: backendErr}, nil)

	_, err := svc.History(context.Background())

	assert.ErrorIs(t, err, backendErr)
}

func TestDocumentService_ByID(t *testing.T) {
	svc := NewDocumentService(&mockDocumentAPI{analysis: sampleAnalysis("an-5")}, nil)

	analysis, err := svc.ByID(context.Background(), "an-5")

	require.NoError(t, err)
	assert.Equal(t, "an-5", analysis.ID)

	_, err = svc.ByID(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
