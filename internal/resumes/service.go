package resumes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-rewriter/internal/extractor"
	"resume-rewriter/internal/patch"
	"resume-rewriter/internal/render"
	"resume-rewriter/internal/shared/storage/object"
	"resume-rewriter/internal/textextract"
)

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  ResumesRepo
	Text  *textextract.Extractor
}

// Upload saves the file, extracts its text, builds the structured document,
// and records the resume.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return Resume{}, err
	}

	text, err := s.Text.FromStore(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return Resume{}, err
	}

	doc := extractor.ExtractFields(text)

	now := time.Now().UTC()
	resume := Resume{
		ID:               uuid.NewString(),
		UserID:           userId,
		FileName:         fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageKey:       storageKey,
		ExtractedTextKey: storageKey + ".extracted.txt",
		Document:         doc,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	return resume, nil
}

// Get returns a resume by ID.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	if resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// List returns resumes for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// Patch applies highlight edits to a resume's document. The previous
// document is kept as a version.
func (s *Service) Patch(ctx context.Context, userId, resumeID string, ops []patch.Op) (Resume, error) {
	resume, err := s.Get(ctx, userId, resumeID)
	if err != nil {
		return Resume{}, err
	}

	updated, err := patch.Apply(resume.Document, ops)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	previous := Version{
		ID:        uuid.NewString(),
		ResumeID:  resume.ID,
		Document:  resume.Document,
		CreatedAt: now,
	}
	resume.Document = updated
	resume.UpdatedAt = now

	if err := s.Repo.UpdateDocument(ctx, userId, resumeID, resume, previous); err != nil {
		return Resume{}, err
	}

	return resume, nil
}

// Versions lists the saved document snapshots for a resume, oldest first.
func (s *Service) Versions(ctx context.Context, userId, resumeID string) ([]Version, error) {
	if resumeID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListVersions(ctx, userId, resumeID)
}

// Export renders the resume's document to DOCX and names the download.
func (s *Service) Export(ctx context.Context, userId, resumeID string) ([]byte, string, error) {
	resume, err := s.Get(ctx, userId, resumeID)
	if err != nil {
		return nil, "", err
	}

	data, err := render.Render(resume.Document)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	name := ""
	if resume.Document.Basics.Name != nil {
		name = *resume.Document.Basics.Name
	}
	return data, render.FilenameFor(name, time.Now().UTC()), nil
}

// Document exposes the structured document for other services.
func (s *Service) Document(ctx context.Context, userId, resumeID string) (extractor.ResumeDocument, error) {
	resume, err := s.Get(ctx, userId, resumeID)
	if err != nil {
		return extractor.ResumeDocument{}, err
	}
	return resume.Document, nil
}
