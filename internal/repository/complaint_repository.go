package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// ComplaintRepository persists client complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	Assign(ctx context.Context, complaintID, staffID int64) (int64, error)
	ListAssignedVisible(ctx context.Context, staffID int64) ([]domain.Complaint, error)
	MarkResolved(ctx context.Context, id int64) (int64, error)
	HideFromStaff(ctx context.Context, id, staffID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository returns a Postgres-backed implementation.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (name, email, subject, message, file)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, status, visible_to_staff, submitted_at`

	return r.pool.QueryRow(ctx, query,
		complaint.Name,
		complaint.Email,
		complaint.Subject,
		complaint.Message,
		complaint.FileURL,
	).Scan(&complaint.ID, &complaint.Status, &complaint.VisibleToStaff, &complaint.SubmittedAt)
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	const query = `
        SELECT c.id, c.name, c.email, c.subject, c.message, c.file,
               c.status, c.assigned_to, u.name, c.visible_to_staff, c.submitted_at
        FROM complaints c
        LEFT JOIN users u ON c.assigned_to = u.id
        ORDER BY c.submitted_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.Name,
			&complaint.Email,
			&complaint.Subject,
			&complaint.Message,
			&complaint.FileURL,
			&complaint.Status,
			&complaint.AssignedTo,
			&complaint.AssignedStaff,
			&complaint.VisibleToStaff,
			&complaint.SubmittedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) Assign(ctx context.Context, complaintID, staffID int64) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE complaints SET assigned_to=$1 WHERE id=$2`, staffID, complaintID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *complaintRepository) ListAssignedVisible(ctx context.Context, staffID int64) ([]domain.Complaint, error) {
	const query = `
        SELECT id, name, email, subject, message, file, status, submitted_at
        FROM complaints
        WHERE assigned_to=$1 AND visible_to_staff = true
        ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.Name,
			&complaint.Email,
			&complaint.Subject,
			&complaint.Message,
			&complaint.FileURL,
			&complaint.Status,
			&complaint.SubmittedAt,
		); err != nil {
			return nil, err
		}
		complaint.AssignedTo = &staffID
		complaint.VisibleToStaff = true
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) MarkResolved(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE complaints SET status=$1 WHERE id=$2`, domain.ComplaintResolved, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// HideFromStaff flips visible_to_staff only when the caller is the assigned
// staff member. Zero rows affected covers both "not assigned to caller" and
// "no such complaint"; the caller cannot tell them apart.
func (r *complaintRepository) HideFromStaff(ctx context.Context, id, staffID int64) (int64, error) {
	const query = `
        UPDATE complaints SET visible_to_staff = false
        WHERE id=$1 AND assigned_to=$2`
	cmd, err := r.pool.Exec(ctx, query, id, staffID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM complaints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
