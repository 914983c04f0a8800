package jobs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of JobsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]JobPost // userId -> posts
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]JobPost),
	}
}

// Create stores a job posting for a user.
func (r *MemoryRepo) Create(ctx context.Context, post JobPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[post.UserID] = append(r.data[post.UserID], post)
	return nil
}

// GetByID returns a job posting by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, postID string) (JobPost, error) {
	if err := ctx.Err(); err != nil {
		return JobPost{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := r.data[userId]
	for i := range posts {
		if posts[i].ID == postID {
			return posts[i], nil
		}
	}
	return JobPost{}, ErrNotFound
}

// ListByUser returns job postings for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]JobPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userPosts := r.data[userId]
	r.mu.RUnlock()

	if len(userPosts) == 0 || offset >= len(userPosts) {
		return []JobPost{}, nil
	}

	posts := make([]JobPost, len(userPosts))
	copy(posts, userPosts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	end := len(posts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return posts[offset:end], nil
}

var _ JobsRepo = (*MemoryRepo)(nil)
