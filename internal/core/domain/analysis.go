package domain

import "time"

// JobStatus is the lifecycle state of a firm analysis job.
type JobStatus string

// Job statuses. Transitions only move forward:
// pending -> processing -> completed or failed.
const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// IsValid returns true if the status is recognised.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobPending, JobProcessing, JobCompleted, JobFailed:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the job can no longer change state.
// Polling must stop the moment a terminal status is observed.
func (s JobStatus) IsTerminal() bool {
	return s == JobCompleted || s == JobFailed
}

// CanTransitionTo reports whether a move from s to next is a legal
// forward transition.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case JobPending:
		return next == JobProcessing || next == JobCompleted || next == JobFailed
	case JobProcessing:
		return next == JobCompleted || next == JobFailed
	default:
		return false
	}
}

// String returns the string representation.
func (s JobStatus) String() string {
	return string(s)
}

// WebsiteScores is the per-dimension breakdown of a firm website
// analysis. All scores are integers in [0, 100].
type WebsiteScores struct {
	WebsiteQuality   int `json:"websiteQuality"`
	ContentRelevance int `json:"contentRelevance"`
	UserExperience   int `json:"userExperience"`
	LegalCompliance  int `json:"legalCompliance"`
}

// AnalysisResults is the payload attached to a completed analysis job.
type AnalysisResults struct {
	// Score is the overall score in [0, 100].
	Score int `json:"score"`

	// Analysis is the per-dimension breakdown.
	Analysis WebsiteScores `json:"analysis"`

	// Feedback is the narrative assessment.
	Feedback string `json:"feedback"`

	// Suggestions is the ordered list of recommended actions.
	Suggestions []string `json:"suggestions"`
}

// Validate checks the score invariants.
func (r *AnalysisResults) Validate() error {
	scores := []int{
		r.Score,
		r.Analysis.WebsiteQuality,
		r.Analysis.ContentRelevance,
		r.Analysis.UserExperience,
		r.Analysis.LegalCompliance,
	}
	for _, s := range scores {
		if s < 0 || s > 100 {
			return ErrScoreOutOfRange
		}
	}
	return nil
}

// AnalysisJob is a server-tracked asynchronous analysis of a firm's
// website. It is created by a submission and mutated only by polling
// responses.
type AnalysisJob struct {
	// JobID identifies the job on the server.
	JobID string `json:"jobId"`

	// Status is the current lifecycle state.
	Status JobStatus `json:"status"`

	// FirmURL, FirmName and Email echo the submission.
	FirmURL  string `json:"firmUrl"`
	FirmName string `json:"firmName"`
	Email    string `json:"email"`

	// CreatedAt is when the job was accepted.
	CreatedAt time.Time `json:"createdAt"`

	// CompletedAt is set once the job reaches a terminal state.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Results is present only for completed jobs.
	Results *AnalysisResults `json:"results,omitempty"`
}

// AnalysisRequest is the client-side submission for a firm analysis.
// All three fields are required.
type AnalysisRequest struct {
	FirmURL  string `json:"firmUrl"`
	FirmName string `json:"firmName"`
	Email    string `json:"email"`
}

// Validate checks that all required fields are present.
func (r *AnalysisRequest) Validate() error {
	if r.FirmURL == "" || r.FirmName == "" || r.Email == "" {
		return ErrMissingField
	}
	return nil
}
