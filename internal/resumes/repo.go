package resumes

import "context"

// ResumesRepo defines persistence operations for resumes and their versions.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error)

	// UpdateDocument replaces the stored document and records the previous
	// one as a version in the same operation.
	UpdateDocument(ctx context.Context, userId, resumeID string, resume Resume, previous Version) error

	ListVersions(ctx context.Context, userId, resumeID string) ([]Version, error)
}
