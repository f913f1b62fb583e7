package backend

import (
	"errors"
	"fmt"
)

// APIError represents a GrowLaw API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: API error %d (URL: %s)", e.StatusCode, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsUnavailable checks if the error indicates the backend cannot serve
// requests right now.
func IsUnavailable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 502 || apiErr.StatusCode == 503 || apiErr.StatusCode == 504
	}
	return false
}
