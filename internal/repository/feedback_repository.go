package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// FeedbackRepository persists client feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	ListAll(ctx context.Context) ([]domain.Feedback, error)
	SetPublic(ctx context.Context, id int64, public bool) (int64, error)
	ListPublic(ctx context.Context) ([]domain.PublicFeedback, error)
	Delete(ctx context.Context, id int64) error
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (name, email, message, is_public)
        VALUES ($1, $2, $3, false)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query, feedback.Name, feedback.Email, feedback.Message).
		Scan(&feedback.ID, &feedback.SubmittedAt)
}

func (r *feedbackRepository) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	const query = `
        SELECT id, name, email, message, is_public, submitted_at
        FROM feedback ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.Name,
			&feedback.Email,
			&feedback.Message,
			&feedback.IsPublic,
			&feedback.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}

func (r *feedbackRepository) SetPublic(ctx context.Context, id int64, public bool) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE feedback SET is_public=$1 WHERE id=$2`, public, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// ListPublic exposes only name, message and timestamp; submitter emails never
// reach the public feed.
func (r *feedbackRepository) ListPublic(ctx context.Context) ([]domain.PublicFeedback, error) {
	const query = `
        SELECT name, message, submitted_at
        FROM feedback WHERE is_public = true
        ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PublicFeedback
	for rows.Next() {
		var feedback domain.PublicFeedback
		if err := rows.Scan(&feedback.Name, &feedback.Message, &feedback.SubmittedAt); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
