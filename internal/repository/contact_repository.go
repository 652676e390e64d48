package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// ContactRepository persists public contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.ContactMessage) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.ContactMessage) error {
	const query = `
        INSERT INTO contacts (name, email, phone, message)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt)
}
