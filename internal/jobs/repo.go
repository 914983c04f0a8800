package jobs

import "context"

// JobsRepo defines persistence operations for job postings.
type JobsRepo interface {
	Create(ctx context.Context, post JobPost) error
	GetByID(ctx context.Context, userId, postID string) (JobPost, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]JobPost, error)
}
