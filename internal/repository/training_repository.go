package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// TrainingRepository persists global training material pointers.
type TrainingRepository interface {
	Create(ctx context.Context, material *domain.TrainingMaterial) error
	List(ctx context.Context) ([]domain.TrainingMaterial, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainingMaterial, error)
	Delete(ctx context.Context, id int64) error
}

type trainingRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingRepository returns a Postgres-backed implementation.
func NewTrainingRepository(pool *pgxpool.Pool) TrainingRepository {
	return &trainingRepository{pool: pool}
}

func (r *trainingRepository) Create(ctx context.Context, material *domain.TrainingMaterial) error {
	const query = `
        INSERT INTO training_materials (filename, path)
        VALUES ($1, $2)
        RETURNING id, uploaded_at`
	return r.pool.QueryRow(ctx, query, material.FileName, material.FileURL).
		Scan(&material.ID, &material.UploadedAt)
}

func (r *trainingRepository) List(ctx context.Context) ([]domain.TrainingMaterial, error) {
	const query = `
        SELECT id, filename, path, uploaded_at
        FROM training_materials ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TrainingMaterial
	for rows.Next() {
		var material domain.TrainingMaterial
		if err := rows.Scan(&material.ID, &material.FileName, &material.FileURL, &material.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, material)
	}
	return result, rows.Err()
}

func (r *trainingRepository) GetByID(ctx context.Context, id int64) (*domain.TrainingMaterial, error) {
	const query = `
        SELECT id, filename, path, uploaded_at
        FROM training_materials WHERE id=$1`

	var material domain.TrainingMaterial
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&material.ID, &material.FileName, &material.FileURL, &material.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *trainingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM training_materials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
