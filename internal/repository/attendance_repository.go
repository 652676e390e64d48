package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// AttendanceRepository persists one row per (user, date).
type AttendanceRepository interface {
	Upsert(ctx context.Context, userID int64, date time.Time, status domain.AttendanceStatus) (*domain.AttendanceRecord, error)
	ListByDate(ctx context.Context, date *time.Time) ([]domain.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.AttendanceRecord, error)
	ListByUserMonth(ctx context.Context, userID int64, year, month int) ([]domain.AttendanceRecord, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository returns a Postgres-backed implementation.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

// Upsert overwrites status on conflict rather than duplicating the day.
func (r *attendanceRepository) Upsert(ctx context.Context, userID int64, date time.Time, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	const query = `
        INSERT INTO attendance (user_id, date, status)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, date) DO UPDATE SET status = EXCLUDED.status
        RETURNING id, user_id, date, status`

	var record domain.AttendanceRecord
	if err := r.pool.QueryRow(ctx, query, userID, date, status).Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.Status,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date *time.Time) ([]domain.AttendanceRecord, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if date != nil {
		rows, err = r.pool.Query(ctx,
			`SELECT id, user_id, date, status FROM attendance WHERE date=$1`, *date)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT id, user_id, date, status FROM attendance ORDER BY date DESC`)
	}
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, date, status FROM attendance WHERE user_id=$1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) ListByUserMonth(ctx context.Context, userID int64, year, month int) ([]domain.AttendanceRecord, error) {
	const query = `
        SELECT id, user_id, date, status FROM attendance
        WHERE user_id=$1
          AND date >= make_date($2, $3, 1)
          AND date < make_date($2, $3, 1) + INTERVAL '1 month'
        ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, userID, year, month)
	if err != nil {
		return nil, err
	}
	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]domain.AttendanceRecord, error) {
	defer rows.Close()

	var result []domain.AttendanceRecord
	for rows.Next() {
		var record domain.AttendanceRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Date, &record.Status); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
