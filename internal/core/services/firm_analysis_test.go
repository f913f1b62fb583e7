package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growlaw/growlaw-cli/internal/core/domain"
)

func validRequest() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		FirmURL:  "https://x.com",
		FirmName: "X",
		Email:    "a@b.com",
	}
}

func TestFirmAnalysisService_Submit(t *testing.T) {
	mock := &mockAnalysisAPI{
		created: &domain.AnalysisJob{JobID: "job-1", Status: domain.JobPending},
	}
	svc := NewFirmAnalysisService(mock)

	job, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "job-1", job.JobID)
	assert.Equal(t, domain.JobPending, job.Status)
}

func TestFirmAnalysisService_Submit_MissingFields(t *testing.T) {
	mock := &mockAnalysisAPI{}
	svc := NewFirmAnalysisService(mock)

	_, err := svc.Submit(context.Background(), domain.AnalysisRequest{FirmName: "X"})

	assert.ErrorIs(t, err, domain.ErrMissingField)
	// Validation failures never reach the backend.
	assert.Zero(t, mock.getCalls.Load())
}

func TestFirmAnalysisService_Submit_BackendError(t *testing.T) {
	backendErr := errors.New("503 service unavailable")
	svc := NewFirmAnalysisService(&mockAnalysisAPI{createErr: backendErr})

	_, err := svc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, backendErr)
}

func TestFirmAnalysisService_Poll(t *testing.T) {
	mock := &mockAnalysisAPI{
		getFunc: func(jobID string) (*domain.AnalysisJob, error) {
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
		},
	}
	svc := NewFirmAnalysisService(mock)

	job, err := svc.Poll(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, domain.JobProcessing, job.Status)
}

func TestFirmAnalysisService_Poll_OverlapRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mock := &mockAnalysisAPI{
		getFunc: func(jobID string) (*domain.AnalysisJob, error) {
			close(started)
			<-release
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
		},
	}
	svc := NewFirmAnalysisService(mock)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Poll(context.Background(), "job-1")
		assert.NoError(t, err)
	}()

	<-started
	_, err := svc.Poll(context.Background(), "job-1")
	assert.ErrorIs(t, err, domain.ErrPollInFlight)

	close(release)
	wg.Wait()
}

func TestFirmAnalysisService_Poll_DifferentJobsDoNotBlock(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mock := &mockAnalysisAPI{
		getFunc: func(jobID string) (*domain.AnalysisJob, error) {
			if jobID == "slow" {
				close(started)
				<-release
			}
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
		},
	}
	svc := NewFirmAnalysisService(mock)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = svc.Poll(context.Background(), "slow")
	}()

	<-started
	_, err := svc.Poll(context.Background(), "fast")
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestFirmAnalysisService_Await_StopsAtCompleted(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	mock := &mockAnalysisAPI{}
	mock.getFunc = func(jobID string) (*domain.AnalysisJob, error) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		if polls < 2 {
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
		}
		return &domain.AnalysisJob{
			JobID:  jobID,
			Status: domain.JobCompleted,
			Results: &domain.AnalysisResults{
				Score: 87,
				Analysis: domain.WebsiteScores{
					WebsiteQuality:   90,
					ContentRelevance: 85,
					UserExperience:   80,
					LegalCompliance:  93,
				},
			},
		}, nil
	}
	svc := NewFirmAnalysisService(mock)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	job, err := svc.Await(ctx, "job-1")

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
	require.NotNil(t, job.Results)
	assert.Equal(t, 87, job.Results.Score)

	// No polls are issued after the terminal status was observed.
	settled := mock.getCalls.Load()
	time.Sleep(2*PollInterval + 500*time.Millisecond)
	assert.Equal(t, settled, mock.getCalls.Load())
}

func TestFirmAnalysisService_Await_FailedIsOutcomeNotError(t *testing.T) {
	mock := &mockAnalysisAPI{
		getFunc: func(jobID string) (*domain.AnalysisJob, error) {
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobFailed}, nil
		},
	}
	svc := NewFirmAnalysisService(mock)

	job, err := svc.Await(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, domain.JobFailed, job.Status)
}

func TestFirmAnalysisService_Await_TransportErrorIsTransient(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	mock := &mockAnalysisAPI{}
	mock.getFunc = func(jobID string) (*domain.AnalysisJob, error) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		if polls == 1 {
			return nil, errors.New("connection reset")
		}
		return &domain.AnalysisJob{JobID: jobID, Status: domain.JobCompleted}, nil
	}
	svc := NewFirmAnalysisService(mock)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	job, err := svc.Await(ctx, "job-1")

	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, job.Status)
}

func TestFirmAnalysisService_Await_ContextCancelled(t *testing.T) {
	mock := &mockAnalysisAPI{
		getFunc: func(jobID string) (*domain.AnalysisJob, error) {
			return &domain.AnalysisJob{JobID: jobID, Status: domain.JobProcessing}, nil
		},
	}
	svc := NewFirmAnalysisService(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Await(ctx, "job-1")

	assert.ErrorIs(t, err, context.Canceled)
}
