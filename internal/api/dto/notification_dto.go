package dto

import (
	"time"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// SendNotificationRequest payload. An empty RecipientIDs list broadcasts to
// all staff, current and future.
type SendNotificationRequest struct {
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	RecipientIDs []int64 `json:"recipientIds"`
}

// UpdateNotificationRequest payload.
type UpdateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// StaffNotificationResponse renders one inbox entry.
type StaffNotificationResponse struct {
	ID        int64               `json:"id"`
	Title     string              `json:"title"`
	Message   string              `json:"message"`
	Type      domain.DeliveryType `json:"type"`
	IsRead    bool                `json:"isRead"`
	CreatedAt time.Time           `json:"createdAt"`
}

// AdminNotificationResponse renders the admin listing with recipient labels.
type AdminNotificationResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Recipients []string  `json:"recipients"`
	CreatedAt  time.Time `json:"createdAt"`
}
