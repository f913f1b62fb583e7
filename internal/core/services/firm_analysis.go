package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driven"
	"github.com/growlaw/growlaw-cli/internal/core/ports/driving"
	"github.com/growlaw/growlaw-cli/internal/logger"
)

// PollInterval is the fixed cadence between status polls.
const PollInterval = 2 * time.Second

// Ensure FirmAnalysisService implements the interface.
var _ driving.FirmAnalysisService = (*FirmAnalysisService)(nil)

// FirmAnalysisService submits website analysis jobs and tracks them to
// completion. At most one poll per job is outstanding at any time.
type FirmAnalysisService struct {
	api driven.AnalysisAPI

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewFirmAnalysisService creates a new firm analysis service.
func NewFirmAnalysisService(api driven.AnalysisAPI) *FirmAnalysisService {
	return &FirmAnalysisService{
		api:      api,
		inFlight: make(map[string]bool),
	}
}

// Submit validates the request and creates a job on the backend.
func (s *FirmAnalysisService) Submit(
	ctx context.Context, req domain.AnalysisRequest,
) (*domain.AnalysisJob, error) {
	logger.Section("Firm Analysis")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.api.CreateAnalysis(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create analysis: %w", err)
	}

	logger.Info("submitted job %s status %s", job.JobID, job.Status)
	return job, nil
}

// Poll fetches the job's current state. Overlapping polls for the same
// job are rejected with domain.ErrPollInFlight.
func (s *FirmAnalysisService) Poll(ctx context.Context, jobID string) (*domain.AnalysisJob, error) {
	if jobID == "" {
		return nil, fmt.Errorf("poll: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	if s.inFlight[jobID] {
		s.mu.Unlock()
		return nil, domain.ErrPollInFlight
	}
	s.inFlight[jobID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, jobID)
		s.mu.Unlock()
	}()

	job, err := s.api.GetAnalysis(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return job, nil
}

// Await polls the job every PollInterval until a terminal status is
// observed or the context is cancelled. A poll transport error is a
// transient condition: it is logged and the loop continues. A job
// status of failed is a legitimate outcome and ends the wait normally.
func (s *FirmAnalysisService) Await(ctx context.Context, jobID string) (*domain.AnalysisJob, error) {
	// First poll immediately so short jobs return without waiting a
	// full interval.
	job, err := s.Poll(ctx, jobID)
	if err == nil && job.Status.IsTerminal() {
		return job, nil
	}
	if err != nil {
		logger.Warn("poll %s: %v", jobID, err)
	}

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			polled, err := s.Poll(ctx, jobID)
			if err != nil {
				logger.Warn("poll %s: %v", jobID, err)
				continue
			}
			job = polled
			logger.Debug("job %s status %s", jobID, job.Status)
			if job.Status.IsTerminal() {
				return job, nil
			}
		}
	}
}
