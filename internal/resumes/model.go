package resumes

import (
	"time"

	"resume-rewriter/internal/extractor"
)

// Resume is an uploaded resume with its extracted structured document.
type Resume struct {
	ID               string
	UserID           string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageKey       string
	ExtractedTextKey string
	Document         extractor.ResumeDocument
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Version is a snapshot of a resume's document taken before an edit.
type Version struct {
	ID        string
	ResumeID  string
	Document  extractor.ResumeDocument
	CreatedAt time.Time
}
