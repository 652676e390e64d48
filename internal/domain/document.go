package domain

import "time"

// StaffDocument is a file a staff member uploaded for admin review.
type StaffDocument struct {
	ID        int64
	UserID    int64
	Title     string
	FileURL   string
	CreatedAt time.Time
}

// AdminSharedDocument is a file an admin shared with a specific user.
type AdminSharedDocument struct {
	ID        int64
	UserID    int64
	Title     string
	FileURL   string
	CreatedAt time.Time
}

// SalarySlip points at a payroll document stored in the blob store.
type SalarySlip struct {
	ID         int64
	UserID     int64
	FileURL    string
	UploadedAt time.Time
}

// TrainingMaterial is a global upload visible to all authenticated users.
type TrainingMaterial struct {
	ID         int64
	FileName   string
	FileURL    string
	UploadedAt time.Time
}
