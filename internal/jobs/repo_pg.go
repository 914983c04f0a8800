package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements JobsRepo using Postgres. Requirements are stored as a
// jsonb array alongside the raw posting text.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job posting.
func (r *PGRepo) Create(ctx context.Context, post JobPost) error {
	const query = `
INSERT INTO job_posts (
    id,
    user_id,
    source_url,
    text_content,
    extracted,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	var sourceURL sql.NullString
	if post.SourceURL != "" {
		sourceURL = sql.NullString{String: post.SourceURL, Valid: true}
	}

	extracted, err := json.Marshal(post.Requirements)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		post.ID,
		post.UserID,
		sourceURL,
		post.TextContent,
		extracted,
		post.CreatedAt,
	)
	return err
}

// GetByID fetches a job posting by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, postID string) (JobPost, error) {
	const query = `
SELECT id, user_id, source_url, text_content, extracted, created_at
FROM job_posts
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var post JobPost
	var sourceURL sql.NullString
	var extracted []byte
	err := r.DB.QueryRowContext(ctx, query, userId, postID).Scan(
		&post.ID,
		&post.UserID,
		&sourceURL,
		&post.TextContent,
		&extracted,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobPost{}, ErrNotFound
		}
		return JobPost{}, err
	}
	if sourceURL.Valid {
		post.SourceURL = sourceURL.String
	}
	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &post.Requirements); err != nil {
			return JobPost{}, err
		}
	}
	return post, nil
}

// ListByUser lists job postings ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]JobPost, error) {
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
SELECT id, user_id, source_url, text_content, extracted, created_at
FROM job_posts
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobPost
	for rows.Next() {
		var post JobPost
		var sourceURL sql.NullString
		var extracted []byte
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&sourceURL,
			&post.TextContent,
			&extracted,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		if sourceURL.Valid {
			post.SourceURL = sourceURL.String
		}
		if len(extracted) > 0 {
			if err := json.Unmarshal(extracted, &post.Requirements); err != nil {
				return nil, err
			}
		}
		out = append(out, post)
	}
	return out, rows.Err()
}

var _ JobsRepo = (*PGRepo)(nil)
