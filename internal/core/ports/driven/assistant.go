package driven

import "context"

// AssistantAPI wraps the backend's assistant search endpoint.
type AssistantAPI interface {
	// Search sends a free-form message to the assistant. Model and
	// temperature fall back to backend defaults when zero-valued.
	Search(ctx context.Context, message, model string, temperature float64) (string, error)
}
