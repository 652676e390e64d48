package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// SalaryRepository persists salary slip pointers.
type SalaryRepository interface {
	Create(ctx context.Context, slip *domain.SalarySlip) error
	ListByUser(ctx context.Context, userID int64) ([]domain.SalarySlip, error)
	FindURL(ctx context.Context, fragment string) (string, error)
	FindByUserAndMonth(ctx context.Context, userID int64, year, month int) (*domain.SalarySlip, error)
}

type salaryRepository struct {
	pool *pgxpool.Pool
}

// NewSalaryRepository returns a Postgres-backed implementation.
func NewSalaryRepository(pool *pgxpool.Pool) SalaryRepository {
	return &salaryRepository{pool: pool}
}

func (r *salaryRepository) Create(ctx context.Context, slip *domain.SalarySlip) error {
	const query = `
        INSERT INTO salary_slips (user_id, file_path, uploaded_at)
        VALUES ($1, $2, NOW())
        RETURNING id, uploaded_at`
	return r.pool.QueryRow(ctx, query, slip.UserID, slip.FileURL).
		Scan(&slip.ID, &slip.UploadedAt)
}

func (r *salaryRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SalarySlip, error) {
	const query = `
        SELECT id, user_id, file_path, uploaded_at
        FROM salary_slips WHERE user_id=$1
        ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SalarySlip
	for rows.Next() {
		var slip domain.SalarySlip
		if err := rows.Scan(&slip.ID, &slip.UserID, &slip.FileURL, &slip.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, slip)
	}
	return result, rows.Err()
}

func (r *salaryRepository) FindURL(ctx context.Context, fragment string) (string, error) {
	const query = `SELECT file_path FROM salary_slips WHERE file_path LIKE '%' || $1 LIMIT 1`
	var url string
	if err := r.pool.QueryRow(ctx, query, fragment).Scan(&url); err != nil {
		return "", err
	}
	return url, nil
}

func (r *salaryRepository) FindByUserAndMonth(ctx context.Context, userID int64, year, month int) (*domain.SalarySlip, error) {
	const query = `
        SELECT id, user_id, file_path, uploaded_at
        FROM salary_slips
        WHERE user_id=$1
          AND EXTRACT(YEAR FROM uploaded_at)=$2
          AND EXTRACT(MONTH FROM uploaded_at)=$3
        ORDER BY uploaded_at DESC
        LIMIT 1`

	var slip domain.SalarySlip
	if err := r.pool.QueryRow(ctx, query, userID, year, month).Scan(
		&slip.ID, &slip.UserID, &slip.FileURL, &slip.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &slip, nil
}
