package backend

import (
	"context"
	"fmt"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
)

const (
	// DefaultAssistantModel is used when the caller does not name one.
	DefaultAssistantModel = "gpt-4o-mini"

	// DefaultAssistantTemperature is used when the caller passes zero.
	DefaultAssistantTemperature = 0.7
)

// assistantAPI implements driven.AssistantAPI.
type assistantAPI struct {
	client *Client
}

var _ driven.AssistantAPI = (*assistantAPI)(nil)

// Search sends a free-form message to the assistant endpoint.
func (a *assistantAPI) Search(
	ctx context.Context, message, model string, temperature float64,
) (string, error) {
	if model == "" {
		model = DefaultAssistantModel
	}
	if temperature == 0 {
		temperature = DefaultAssistantTemperature
	}

	body := struct {
		Message     string  `json:"message"`
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
	}{
		Message:     message,
		Model:       model,
		Temperature: temperature,
	}

	var payload struct {
		Result string `json:"result"`
		Error  string `json:"error"`
	}
	if err := a.client.postJSON(ctx, "/api/openai/search", body, &payload); err != nil {
		return "", fmt.Errorf("assistant search: %w", err)
	}
	if payload.Error != "" {
		return "", fmt.Errorf("assistant search: %w: %s", domain.ErrBackendUnavailable, payload.Error)
	}
	return payload.Result, nil
}
