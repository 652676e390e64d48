package dto

import (
	"time"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// ApplyLeaveRequest payload.
type ApplyLeaveRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Reason   string `json:"reason"`
}

// UpdateLeaveStatusRequest payload.
type UpdateLeaveStatusRequest struct {
	Status domain.LeaveStatus `json:"status"`
}

// LeaveResponse renders one leave request. StaffName is only populated on the
// admin listing.
type LeaveResponse struct {
	ID        int64              `json:"id"`
	StaffID   int64              `json:"staffId"`
	StaffName string             `json:"staffName,omitempty"`
	FromDate  string             `json:"fromDate"`
	ToDate    string             `json:"toDate"`
	Reason    string             `json:"reason"`
	Status    domain.LeaveStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}
