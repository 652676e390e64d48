package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// DashboardRepository computes aggregate counters. Each counter is an
// independent scalar subquery evaluated inside one statement; there is no
// cross-subquery consistency window beyond that execution.
type DashboardRepository interface {
	AdminSummary(ctx context.Context) (*domain.AdminDashboard, error)
	StaffSummary(ctx context.Context, staffID int64) (*domain.StaffDashboard, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository returns a Postgres-backed implementation.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) AdminSummary(ctx context.Context) (*domain.AdminDashboard, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM users WHERE role = 'staff')                                   AS total_staff,
            (SELECT COUNT(*) FROM leave_requests)                                               AS total_leaves,
            (SELECT COUNT(*) FROM staff_documents)                                              AS total_uploads,
            (SELECT COUNT(*) FROM attendance WHERE date = CURRENT_DATE AND status = 'Present')  AS todays_present`

	var summary domain.AdminDashboard
	if err := r.pool.QueryRow(ctx, query).Scan(
		&summary.TotalStaff,
		&summary.TotalLeaves,
		&summary.TotalUploads,
		&summary.TodaysPresent,
	); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *dashboardRepository) StaffSummary(ctx context.Context, staffID int64) (*domain.StaffDashboard, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM leave_requests WHERE staff_id = $1)                           AS total_leaves,
            (SELECT COUNT(*) FROM leave_requests WHERE staff_id = $1 AND status = 'Approved')   AS approved_leaves,
            (SELECT COUNT(*) FROM staff_documents WHERE user_id = $1)                           AS uploaded_docs,
            (SELECT ROUND(AVG(CASE WHEN status = 'Present' THEN 100.0 ELSE 0 END), 2)
             FROM attendance WHERE user_id = $1)                                                AS attendance_percentage`

	var summary domain.StaffDashboard
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(
		&summary.TotalLeaves,
		&summary.ApprovedLeaves,
		&summary.UploadedDocs,
		&summary.AttendancePercentage,
	); err != nil {
		return nil, err
	}
	return &summary, nil
}
