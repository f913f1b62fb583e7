package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// preQueryTimeout bounds the detached assistant pre-query so an
// unresponsive backend cannot leak goroutines indefinitely.
const preQueryTimeout = 30 * time.Second

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService triggers AI visibility reports. The assistant
// pre-query is strictly best-effort: its failure must never block the
// transition to the progress screen.
type ReportService struct {
	assistant driven.AssistantAPI
}

// NewReportService creates a new report service.
func NewReportService(assistant driven.AssistantAPI) *ReportService {
	return &ReportService{assistant: assistant}
}

// Run dispatches the firm's criteria summary to the assistant in a
// detached goroutine. The result is only logged.
func (s *ReportService) Run(ctx context.Context, firm *domain.Firm) {
	runID := uuid.NewString()
	message := BuildReportQuery(firm)
	logger.Info("report run %s for %q", runID, firm.Name)

	go func() {
		// Detach from the caller's context: navigating away must not
		// cancel the pre-query, only the timeout does.
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), preQueryTimeout)
		defer cancel()

		result, err := s.assistant.Search(qctx, message, "", 0)
		if err != nil {
			logger.Warn("report run %s assistant pre-query failed: %v", runID, err)
			return
		}
		logger.Debug("report run %s assistant replied with %d bytes", runID, len(result))
	}()
}

// Ask sends a free-form message to the assistant.
func (s *ReportService) Ask(
	ctx context.Context, message, model string, temperature float64,
) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("ask: %w", domain.ErrInvalidInput)
	}

	result, err := s.assistant.Search(ctx, message, model, temperature)
	if err != nil {
		return "", fmt.Errorf("assistant search: %w", err)
	}
	return result, nil
}

// BuildReportQuery renders the firm's criteria as a natural-language
// prompt for the assistant pre-query.
func BuildReportQuery(firm *domain.Firm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find law firms matching: name %q", firm.Name)
	if firm.PracticeArea != "" {
		fmt.Fprintf(&b, ", practice area %q", firm.PracticeArea)
	}
	if firm.Location != "" {
		fmt.Fprintf(&b, ", located in %q", firm.Location)
	}
	if firm.Website != "" {
		fmt.Fprintf(&b, ", website %s", firm.Website)
	}
	if len(firm.Keywords) > 0 {
		fmt.Fprintf(&b, ", focused on %s", strings.Join(firm.Keywords, ", "))
	}
	b.WriteString(". Would ChatGPT, Gemini or Perplexity recommend this firm?")
	return b.String()
}
