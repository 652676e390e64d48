package dto

import "time"

// StaffDocumentResponse renders a staff upload.
type StaffDocumentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminDocumentResponse renders an admin-shared document.
type AdminDocumentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// SalarySlipResponse renders a payroll document pointer.
type SalarySlipResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TrainingMaterialResponse renders a global training upload.
type TrainingMaterialResponse struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}
