package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// UserRepository defines persistence access for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListStaff(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
	SetOTP(ctx context.Context, email, otp string, expiry time.Time) (int64, error)
	GetByEmailAndValidOTP(ctx context.Context, email, otp string) (*domain.User, error)
	ResetPassword(ctx context.Context, email, passwordHash string) (int64, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, otp, otp_expiry, created_at
        FROM users WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, otp, otp_expiry, created_at
        FROM users WHERE email=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.OTP,
		&user.OTPExpiry,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, role, created_at
        FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) ListStaff(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, email FROM users WHERE role='staff' ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		user.Role = domain.RoleStaff
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) SetOTP(ctx context.Context, email, otp string, expiry time.Time) (int64, error) {
	const query = `UPDATE users SET otp=$1, otp_expiry=$2 WHERE email=$3`
	cmd, err := r.pool.Exec(ctx, query, otp, expiry, email)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *userRepository) GetByEmailAndValidOTP(ctx context.Context, email, otp string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, otp, otp_expiry, created_at
        FROM users WHERE email=$1 AND otp=$2 AND otp_expiry > NOW()`
	return r.scanOne(r.pool.QueryRow(ctx, query, email, otp))
}

// ResetPassword updates the hash and clears the OTP columns in one statement.
func (r *userRepository) ResetPassword(ctx context.Context, email, passwordHash string) (int64, error) {
	const query = `
        UPDATE users SET password_hash=$1, otp=NULL, otp_expiry=NULL WHERE email=$2`
	cmd, err := r.pool.Exec(ctx, query, passwordHash, email)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
