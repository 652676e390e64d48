package dto

import "github.com/WebArtifcatsind/my-project-backend/internal/domain"

// UpdateAttendanceRequest is the admin upsert payload.
type UpdateAttendanceRequest struct {
	UserID int64                   `json:"userId"`
	Date   string                  `json:"date"`
	Status domain.AttendanceStatus `json:"status"`
}

// AttendanceResponse renders one user-day record. Date is a calendar day,
// never a timestamp.
type AttendanceResponse struct {
	ID     int64                   `json:"id"`
	UserID int64                   `json:"userId"`
	Date   string                  `json:"date"`
	Status domain.AttendanceStatus `json:"status"`
}
