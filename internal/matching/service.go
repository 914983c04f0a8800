package matching

import (
	"context"
	"time"

	"resume-rewriter/internal/extractor"
	"resume-rewriter/internal/shared/metrics"
)

// ResumeSource loads the structured document behind a resume ID.
type ResumeSource interface {
	Document(ctx context.Context, userId, resumeID string) (extractor.ResumeDocument, error)
}

// JobSource loads the extracted requirements behind a job posting ID.
type JobSource interface {
	Requirements(ctx context.Context, userId, jobID string) ([]string, error)
}

// Service resolves a resume and a posting, then runs the matcher.
type Service struct {
	Resumes ResumeSource
	Jobs    JobSource
	Matcher *Matcher
}

// Match produces the coverage report for one resume against one posting.
func (s *Service) Match(ctx context.Context, userId, resumeID, jobID string) (Result, error) {
	if resumeID == "" || jobID == "" {
		return Result{}, ErrInvalidInput
	}

	metrics.IncMatchStarted()
	started := time.Now()

	doc, err := s.Resumes.Document(ctx, userId, resumeID)
	if err != nil {
		metrics.IncMatchFailed()
		return Result{}, err
	}

	requirements, err := s.Jobs.Requirements(ctx, userId, jobID)
	if err != nil {
		metrics.IncMatchFailed()
		return Result{}, err
	}

	result, err := s.Matcher.CoverageAndSuggestions(ctx, doc, requirements)
	if err != nil {
		metrics.IncMatchFailed()
		return Result{}, err
	}

	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(float64(time.Since(started).Milliseconds()))
	return result, nil
}
