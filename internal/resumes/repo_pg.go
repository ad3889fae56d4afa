package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"resume-chat-backend/internal/parsing"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    status,
    parsed,
    raw_text,
    created_at,
    parsed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	status := res.Status
	if status == "" {
		status = StatusUploaded
	}

	var storageKey sql.NullString
	if res.StorageKey != "" {
		storageKey = sql.NullString{String: res.StorageKey, Valid: true}
	}
	var rawText sql.NullString
	if res.RawText != "" {
		rawText = sql.NullString{String: res.RawText, Valid: true}
	}
	var parsedAt sql.NullTime
	if res.ParsedAt != nil {
		parsedAt = sql.NullTime{Time: *res.ParsedAt, Valid: true}
	}

	parsed, err := marshalParsed(res.Parsed)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		storageKey,
		status,
		parsed,
		rawText,
		res.CreatedAt,
		parsedAt,
	)
	return err
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, status, parsed, raw_text, created_at, parsed_at
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, resumeID)
	return scanResume(row)
}

// GetAnyByID fetches a resume by ID regardless of owner.
func (r *PGRepo) GetAnyByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, status, parsed, raw_text, created_at, parsed_at
FROM resumes
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID)
	return scanResume(row)
}

// GetCurrentByUser returns the latest resume for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, status, parsed, raw_text, created_at, parsed_at
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID)
	return scanResume(row)
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
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
SELECT id, user_id, file_name, mime_type, size_bytes, storage_key, status, parsed, raw_text, created_at, parsed_at
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// UpdateParsed stores the parsed record, raw text, and status for a resume.
func (r *PGRepo) UpdateParsed(ctx context.Context, resumeID string, status string, parsed parsing.ParsedResume, rawText string, parsedAt time.Time) error {
	const query = `
UPDATE resumes
SET status = $1, parsed = $2, raw_text = $3, parsed_at = $4
WHERE id = $5 AND deleted_at IS NULL`

	payload, err := marshalParsed(parsed)
	if err != nil {
		return err
	}
	var rawColumn sql.NullString
	if rawText != "" {
		rawColumn = sql.NullString{String: rawText, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx, query, status, payload, rawColumn, parsedAt, resumeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var storageKey sql.NullString
	var parsedRaw []byte
	var rawText sql.NullString
	var parsedAt sql.NullTime
	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.FileName,
		&res.MimeType,
		&res.SizeBytes,
		&storageKey,
		&res.Status,
		&parsedRaw,
		&rawText,
		&res.CreatedAt,
		&parsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if storageKey.Valid {
		res.StorageKey = storageKey.String
	}
	if rawText.Valid {
		res.RawText = rawText.String
	}
	if parsedAt.Valid {
		res.ParsedAt = &parsedAt.Time
	}
	// A partial or foreign-shaped stored record still loads: whatever fields
	// unmarshal is kept, the rest is coerced to the canonical empty shape.
	if len(parsedRaw) > 0 {
		_ = json.Unmarshal(parsedRaw, &res.Parsed)
	}
	res.Parsed.RawText = res.RawText
	parsing.Normalize(&res.Parsed)
	return res, nil
}

// marshalParsed serializes the record without its raw text; the raw_text
// column is the single home for that.
func marshalParsed(parsed parsing.ParsedResume) ([]byte, error) {
	parsed.RawText = ""
	parsing.Normalize(&parsed)
	return json.Marshal(&parsed)
}

var _ ResumesRepo = (*PGRepo)(nil)
