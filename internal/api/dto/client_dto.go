package dto

import (
	"time"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// AssignComplaintRequest payload.
type AssignComplaintRequest struct {
	ComplaintID int64 `json:"complaintId"`
	StaffID     int64 `json:"staffId"`
}

// SubmitFeedbackRequest payload.
type SubmitFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ComplaintResponse renders a complaint. AssignedStaff is the resolved staff
// name, present only when the complaint is assigned.
type ComplaintResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Subject        string                 `json:"subject"`
	Message        string                 `json:"message"`
	FileURL        *string                `json:"fileUrl"`
	Status         domain.ComplaintStatus `json:"status"`
	AssignedTo     *int64                 `json:"assignedTo,omitempty"`
	AssignedStaff  *string                `json:"assignedStaff,omitempty"`
	VisibleToStaff bool                   `json:"visibleToStaff"`
	SubmittedAt    time.Time              `json:"submittedAt"`
}

// FeedbackResponse renders feedback for admin review.
type FeedbackResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	IsPublic    bool      `json:"isPublic"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// PublicFeedbackResponse is the public projection; it never carries an email.
type PublicFeedbackResponse struct {
	Name        string    `json:"name"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
