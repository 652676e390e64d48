package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// LeaveRepository persists leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) error
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
	ListByStaff(ctx context.Context, staffID int64) ([]domain.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) (int64, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository returns a Postgres-backed implementation.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

func (r *leaveRepository) Create(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (staff_id, from_date, to_date, reason, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		request.StaffID,
		request.FromDate,
		request.ToDate,
		request.Reason,
		domain.LeavePending,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	const query = `
        SELECT lr.id, lr.staff_id, u.name, lr.from_date, lr.to_date, lr.reason, lr.status, lr.created_at
        FROM leave_requests lr
        JOIN users u ON lr.staff_id = u.id
        ORDER BY lr.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanLeaveRows(rows, true)
}

func (r *leaveRepository) ListByStaff(ctx context.Context, staffID int64) ([]domain.LeaveRequest, error) {
	const query = `
        SELECT id, staff_id, from_date, to_date, reason, status, created_at
        FROM leave_requests WHERE staff_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	return scanLeaveRows(rows, false)
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE leave_requests SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanLeaveRows(rows pgx.Rows, withName bool) ([]domain.LeaveRequest, error) {
	defer rows.Close()

	var result []domain.LeaveRequest
	for rows.Next() {
		var (
			request domain.LeaveRequest
			err     error
		)
		if withName {
			err = rows.Scan(&request.ID, &request.StaffID, &request.StaffName,
				&request.FromDate, &request.ToDate, &request.Reason, &request.Status, &request.CreatedAt)
		} else {
			err = rows.Scan(&request.ID, &request.StaffID,
				&request.FromDate, &request.ToDate, &request.Reason, &request.Status, &request.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
