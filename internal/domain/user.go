package domain

import "time"

// Role enumerates portal access levels.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is the domain model for portal accounts (admin and staff).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	OTP          *string
	OTPExpiry    *time.Time
	CreatedAt    time.Time
}
