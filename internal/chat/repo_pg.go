package chat

import (
	"context"
	"database/sql"
)

// PGRepo implements ExchangesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts one exchange.
func (r *PGRepo) Create(ctx context.Context, ex Exchange) error {
	const query = `
INSERT INTO chat_exchanges (
    id,
    resume_id,
    user_id,
    question,
    answer,
    source,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		ex.ID,
		ex.ResumeID,
		ex.UserID,
		ex.Question,
		ex.Answer,
		ex.Source,
		ex.CreatedAt,
	)
	return err
}

// ListByResume lists exchanges for a resume, newest first.
func (r *PGRepo) ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, resume_id, user_id, question, answer, source, created_at
FROM chat_exchanges
WHERE user_id = $1 AND resume_id = $2
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

	rows, err := r.DB.QueryContext(ctx, query, userID, resumeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(
			&ex.ID,
			&ex.ResumeID,
			&ex.UserID,
			&ex.Question,
			&ex.Answer,
			&ex.Source,
			&ex.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

var _ ExchangesRepo = (*PGRepo)(nil)
