package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

// documentAPI implements driven.DocumentAPI.
type documentAPI struct {
	client *Client
}

var _ driven.DocumentAPI = (*documentAPI)(nil)

// AnalyzeDocument uploads a document for grading. The file goes in the
// multipart field "document"; analysisType is included when non-empty.
func (d *documentAPI) AnalyzeDocument(
	ctx context.Context, filename string, content io.Reader, analysisType string,
) (*domain.DocumentAnalysis, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copying document: %w", err)
	}
	if analysisType != "" {
		if err := writer.WriteField("analysisType", analysisType); err != nil {
			return nil, fmt.Errorf("writing analysis type: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.client.baseURL+"/api/analyze", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var analysis domain.DocumentAnalysis
	if err := d.client.do(req, &analysis); err != nil {
		return nil, fmt.Errorf("analyzing document: %w", err)
	}
	return &analysis, nil
}

// AnalysisHistory lists past document gradings.
func (d *documentAPI) AnalysisHistory(ctx context.Context) ([]domain.DocumentAnalysis, error) {
	var analyses []domain.DocumentAnalysis
	if err := d.client.getJSON(ctx, "/api/analyses", nil, &analyses); err != nil {
		return nil, fmt.Errorf("fetching analysis history: %w", err)
	}
	return analyses, nil
}

// AnalysisByID fetches a single document grading.
func (d *documentAPI) AnalysisByID(ctx context.Context, id string) (*domain.DocumentAnalysis, error) {
	var analysis domain.DocumentAnalysis
	if err := d.client.getJSON(ctx, "/api/analyses/"+url.PathEscape(id), nil, &analysis); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching analysis %s: %w", id, err)
	}
	return &analysis, nil
}
