package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrNoCandidatesFound = errors.New("no matching candidates found")
	ErrNoJobsFound       = errors.New("no matching jobs found")
)
