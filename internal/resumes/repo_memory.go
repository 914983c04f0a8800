package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu       sync.RWMutex
	data     map[string][]Resume  // userId -> resumes
	versions map[string][]Version // resumeId -> versions
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data:     make(map[string][]Resume),
		versions: make(map[string][]Version),
	}
}

// Create stores a resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.data[userId] {
		if res.ID == resumeID {
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns resumes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
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
	userResumes := r.data[userId]
	r.mu.RUnlock()

	if len(userResumes) == 0 || offset >= len(userResumes) {
		return []Resume{}, nil
	}

	resumes := make([]Resume, len(userResumes))
	copy(resumes, userResumes)
	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})

	end := len(resumes)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return resumes[offset:end], nil
}

// UpdateDocument replaces the stored document and records the previous one.
func (r *MemoryRepo) UpdateDocument(ctx context.Context, userId, resumeID string, resume Resume, previous Version) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userResumes := r.data[userId]
	for i := range userResumes {
		if userResumes[i].ID == resumeID {
			userResumes[i] = resume
			r.data[userId] = userResumes
			r.versions[resumeID] = append(r.versions[resumeID], previous)
			return nil
		}
	}
	return ErrNotFound
}

// ListVersions returns versions for a resume, oldest first.
func (r *MemoryRepo) ListVersions(ctx context.Context, userId, resumeID string) ([]Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for _, res := range r.data[userId] {
		if res.ID == resumeID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	src := r.versions[resumeID]
	out := make([]Version, len(src))
	copy(out, src)
	return out, nil
}

var _ ResumesRepo = (*MemoryRepo)(nil)
