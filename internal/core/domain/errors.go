package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates a required form field was left empty.
	ErrMissingField = errors.New("please fill in all fields")

	// ErrNoFile indicates a document upload was attempted without a file.
	ErrNoFile = errors.New("please select a file to upload")

	// ErrScoreOutOfRange indicates a score outside [0, 100].
	ErrScoreOutOfRange = errors.New("score out of range")

	// ErrInvalidRank indicates a non-positive platform rank.
	ErrInvalidRank = errors.New("rank must be a positive integer")

	// ErrInvalidTransition indicates a backward job status transition.
	// Poll responses that would move a job backward are rejected.
	ErrInvalidTransition = errors.New("invalid job status transition")

	// ErrJobTerminal indicates an operation on a finished job.
	ErrJobTerminal = errors.New("job already reached a terminal state")

	// ErrPollInFlight indicates a poll was requested while another
	// poll for the same job is still outstanding.
	ErrPollInFlight = errors.New("poll already in flight")

	// ErrBackendUnavailable indicates the backend could not be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
