package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"resume-rewriter/internal/extractor"
)

// PGRepo implements ResumesRepo using Postgres. The structured document is
// stored as jsonb in the json_resume column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    extracted_text_key,
    json_resume,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	doc, err := json.Marshal(resume.Document)
	if err != nil {
		return err
	}

	var extractedKey sql.NullString
	if resume.ExtractedTextKey != "" {
		extractedKey = sql.NullString{String: resume.ExtractedTextKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.MimeType,
		resume.SizeBytes,
		resume.StorageKey,
		extractedKey,
		doc,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, extracted_text_key, json_resume, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, userId, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, extracted_text_key, json_resume, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// UpdateDocument replaces the stored document and records the previous one
// as a version inside a single transaction.
func (r *PGRepo) UpdateDocument(ctx context.Context, userId, resumeID string, resume Resume, previous Version) error {
	doc, err := json.Marshal(resume.Document)
	if err != nil {
		return err
	}
	prevDoc, err := json.Marshal(previous.Document)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const update = `
UPDATE resumes
SET json_resume = $1, updated_at = $2
WHERE user_id = $3 AND id = $4`
	res, err := tx.ExecContext(ctx, update, doc, resume.UpdatedAt, userId, resumeID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	const insertVersion = `
INSERT INTO resume_versions (id, resume_id, json_resume, created_at)
VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertVersion, previous.ID, resumeID, prevDoc, previous.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// ListVersions returns versions for a resume, oldest first.
func (r *PGRepo) ListVersions(ctx context.Context, userId, resumeID string) ([]Version, error) {
	const query = `
SELECT v.id, v.resume_id, v.json_resume, v.created_at
FROM resume_versions v
JOIN resumes r ON r.id = v.resume_id
WHERE r.user_id = $1 AND v.resume_id = $2
ORDER BY v.created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userId, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		var v Version
		var doc []byte
		if err := rows.Scan(&v.ID, &v.ResumeID, &doc, &v.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(doc, &v.Document); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var extractedKey sql.NullString
	var doc []byte
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.StorageKey,
		&extractedKey,
		&doc,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if extractedKey.Valid {
		resume.ExtractedTextKey = extractedKey.String
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &resume.Document); err != nil {
			return Resume{}, err
		}
	} else {
		resume.Document = extractor.ResumeDocument{}
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
