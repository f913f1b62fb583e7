package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func TestAnalysisAPI_CreateAnalysis(t *testing.T) {
	var gotBody domain.AnalysisRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analysis", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		//nolint:errcheck
		w.Write([]byte(`{
			"jobId": "job-1",
			"status": "pending",
			"firmUrl": "https://smithjones.example",
			"firmName": "Smith & Jones Law",
			"email": "owner@smithjones.example",
			"createdAt": "2025-06-01T10:00:00Z"
		}`))
	}))

	job, err := client.Analysis().CreateAnalysis(context.Background(), domain.AnalysisRequest{
		FirmURL:  "https://smithjones.example",
		FirmName: "Smith & Jones Law",
		Email:    "owner@smithjones.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://smithjones.example", gotBody.FirmURL)
	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, domain.JobPending, job.Status)
	assert.Nil(t, job.Results)
}

func TestAnalysisAPI_GetAnalysis_Completed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analysis/job-1", r.URL.Path)
		//nolint:errcheck
		w.Write([]byte(`{
			"jobId": "job-1",
			"status": "completed",
			"firmUrl": "https://smithjones.example",
			"firmName": "Smith & Jones Law",
			"email": "owner@smithjones.example",
			"createdAt": "2025-06-01T10:00:00Z",
			"completedAt": "2025-06-01T10:02:00Z",
			"results": {
				"score": 87,
				"analysis": {
					"websiteQuality": 90,
					"contentRelevance": 85,
					"userExperience": 88,
					"legalCompliance": 84
				},
				"feedback": "Strong site overall.",
				"suggestions": ["Add attorney bios"]
			}
		}`))
	}))

	job, err := client.Analysis().GetAnalysis(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	require.NotNil(t, job.CompletedAt)
	require.NotNil(t, job.Results)
	assert.Equal(t, 87, job.Results.Score)
	assert.Equal(t, 90, job.Results.Analysis.WebsiteQuality)
	assert.Equal(t, []string{"Add attorney bios"}, job.Results.Suggestions)
}

func TestAnalysisAPI_GetAnalysis_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "job not found"}`)) //nolint:errcheck
	}))

	_, err := client.Analysis().GetAnalysis(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
