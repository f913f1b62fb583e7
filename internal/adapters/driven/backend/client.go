package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

const (
	// DefaultBaseURL is the local development backend.
	DefaultBaseURL = "http://localhost:3001"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate is the proactive throttle rate in requests per second.
	ProactiveRate = 10

	// Burst is the token bucket size for the proactive throttle.
	Burst = 5
)

// Config holds client construction options. Zero values fall back to
// the defaults above.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the shared transport for all GrowLaw API capabilities.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new GrowLaw API client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), Burst),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Places returns a PlacesAPI backed by this client.
func (c *Client) Places() driven.PlacesAPI {
	return &placesAPI{client: c}
}

// Analysis returns an AnalysisAPI backed by this client.
func (c *Client) Analysis() driven.AnalysisAPI {
	return &analysisAPI{client: c}
}

// Documents returns a DocumentAPI backed by this client.
func (c *Client) Documents() driven.DocumentAPI {
	return &documentAPI{client: c}
}

// Ranking returns a RankingAPI backed by this client.
func (c *Client) Ranking() driven.RankingAPI {
	return &rankingAPI{client: c}
}

// Assistant returns an AssistantAPI backed by this client.
func (c *Client) Assistant() driven.AssistantAPI {
	return &assistantAPI{client: c}
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// postJSON performs a POST request with a JSON body and decodes the
// JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// do sends the request through the rate limiter, checks the status and
// decodes the response body into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	logger.Debug("%s %s", req.Method, req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeError extracts the server message from an error response.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        resp.Request.URL.String(),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case payload.Message != "":
			apiErr.Message = payload.Message
		}
	}

	return apiErr
}
