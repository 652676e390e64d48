package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// DocumentRepository persists staff uploads and admin-shared documents. The
// true identity of a file is its stored URL; download lookups resolve a short
// filename fragment by suffix match against that URL.
type DocumentRepository interface {
	CreateStaffDocument(ctx context.Context, doc *domain.StaffDocument) error
	ListStaffDocuments(ctx context.Context) ([]domain.StaffDocument, error)
	FindStaffDocumentURL(ctx context.Context, fragment string) (string, error)
	CreateAdminDocument(ctx context.Context, doc *domain.AdminSharedDocument) error
	FindAdminDocumentURL(ctx context.Context, fragment string) (string, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository returns a Postgres-backed implementation.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) CreateStaffDocument(ctx context.Context, doc *domain.StaffDocument) error {
	const query = `
        INSERT INTO staff_documents (user_id, title, file)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, doc.UserID, doc.Title, doc.FileURL).
		Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) ListStaffDocuments(ctx context.Context) ([]domain.StaffDocument, error) {
	const query = `
        SELECT id, user_id, title, file, created_at
        FROM staff_documents ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffDocument
	for rows.Next() {
		var doc domain.StaffDocument
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.FileURL, &doc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

func (r *documentRepository) FindStaffDocumentURL(ctx context.Context, fragment string) (string, error) {
	const query = `SELECT file FROM staff_documents WHERE file LIKE '%' || $1 LIMIT 1`
	var url string
	if err := r.pool.QueryRow(ctx, query, fragment).Scan(&url); err != nil {
		return "", err
	}
	return url, nil
}

func (r *documentRepository) CreateAdminDocument(ctx context.Context, doc *domain.AdminSharedDocument) error {
	const query = `
        INSERT INTO admin_shared_documents (user_id, title, file)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, doc.UserID, doc.Title, doc.FileURL).
		Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) FindAdminDocumentURL(ctx context.Context, fragment string) (string, error) {
	const query = `SELECT file FROM admin_shared_documents WHERE file LIKE '%' || $1 LIMIT 1`
	var url string
	if err := r.pool.QueryRow(ctx, query, fragment).Scan(&url); err != nil {
		return "", err
	}
	return url, nil
}
