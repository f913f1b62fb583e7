package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func TestDocumentAPI_AnalyzeDocument(t *testing.T) {
	var (
		gotFilename     string
		gotContent      string
		gotAnalysisType string
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)

		gotFilename = header.Filename
		gotContent = string(content)
		gotAnalysisType = r.FormValue("analysisType")

		//nolint:errcheck
		w.Write([]byte(`{
			"id": "doc-1",
			"score": 78,
			"feedback": "Reasonable draft.",
			"suggestions": ["Tighten the indemnity clause"],
			"analysis": {"structure": 80, "content": 75, "legalAccuracy": 77, "clarity": 80},
			"timestamp": "2025-06-01T10:00:00Z"
		}`))
	}))

	analysis, err := client.Documents().AnalyzeDocument(
		context.Background(),
		"retainer.pdf",
		strings.NewReader("fake pdf bytes"),
		domain.AnalysisTypeComprehensive,
	)

	require.NoError(t, err)
	assert.Equal(t, "retainer.pdf", gotFilename)
	assert.Equal(t, "fake pdf bytes", gotContent)
	assert.Equal(t, "comprehensive", gotAnalysisType)
	assert.Equal(t, "doc-1", analysis.ID)
	assert.Equal(t, 78, analysis.Score)
	assert.Equal(t, 80, analysis.Analysis.Structure)
}

func TestDocumentAPI_AnalyzeDocument_OmitsEmptyAnalysisType(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.FormValue("analysisType"))
		w.Write([]byte(`{"id": "doc-1", "score": 70}`)) //nolint:errcheck
	}))

	_, err := client.Documents().AnalyzeDocument(
		context.Background(), "a.txt", strings.NewReader("x"), "")

	require.NoError(t, err)
}

func TestDocumentAPI_AnalysisHistory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analyses", r.URL.Path)
		//nolint:errcheck
		w.Write([]byte(`[
			{"id": "doc-2", "score": 81},
			{"id": "doc-1", "score": 78}
		]`))
	}))

	history, err := client.Documents().AnalysisHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "doc-2", history[0].ID)
}

func TestDocumentAPI_AnalysisByID_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "analysis not found"}`)) //nolint:errcheck
	}))

	_, err := client.Documents().AnalysisByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
