package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job postings.
type Service struct {
	Repo    JobsRepo
	Fetcher Fetcher
}

// Ingest records a job posting from pasted text, a URL, or both. Pasted
// text always wins; the URL is then kept only as provenance.
func (s *Service) Ingest(ctx context.Context, userId, pastedText, sourceURL string) (JobPost, error) {
	pastedText = strings.TrimSpace(pastedText)
	sourceURL = strings.TrimSpace(sourceURL)

	if pastedText == "" && sourceURL == "" {
		return JobPost{}, fmt.Errorf("%w: text or url required", ErrInvalidInput)
	}

	text := pastedText
	if text == "" {
		if s.Fetcher == nil {
			return JobPost{}, fmt.Errorf("%w: url ingestion not configured", ErrInvalidInput)
		}
		fetched, err := s.Fetcher.FetchText(ctx, sourceURL)
		if err != nil {
			return JobPost{}, err
		}
		text = strings.TrimSpace(fetched)
	}
	if text == "" {
		return JobPost{}, fmt.Errorf("%w: posting has no text", ErrInvalidInput)
	}

	post := JobPost{
		ID:           uuid.NewString(),
		UserID:       userId,
		SourceURL:    sourceURL,
		TextContent:  text,
		Requirements: ExtractRequirements(text),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, post); err != nil {
		return JobPost{}, err
	}

	return post, nil
}

// Get returns a job posting by ID.
func (s *Service) Get(ctx context.Context, userId, postID string) (JobPost, error) {
	if postID == "" {
		return JobPost{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, postID)
}

// List returns job postings for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]JobPost, error) {
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}
