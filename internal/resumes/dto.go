package resumes

import (
	"time"

	"resume-rewriter/internal/extractor"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID  string                   `json:"resumeId"`
	FileName  string                   `json:"fileName"`
	MimeType  string                   `json:"mimeType"`
	SizeBytes int64                    `json:"sizeBytes"`
	Document  extractor.ResumeDocument `json:"document"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// VersionResponse is the outward-facing representation of a version.
type VersionResponse struct {
	VersionID string                   `json:"versionId"`
	Document  extractor.ResumeDocument `json:"document"`
	CreatedAt time.Time                `json:"createdAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:  resume.ID,
		FileName:  resume.FileName,
		MimeType:  resume.MimeType,
		SizeBytes: resume.SizeBytes,
		Document:  resume.Document,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
}

func toVersionResponse(v Version) VersionResponse {
	return VersionResponse{
		VersionID: v.ID,
		Document:  v.Document,
		CreatedAt: v.CreatedAt,
	}
}
