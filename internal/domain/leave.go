package domain

import "time"

// LeaveStatus enumerates leave request lifecycle states.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// LeaveRequest is created by staff and transitioned by admins.
type LeaveRequest struct {
	ID        int64
	StaffID   int64
	StaffName string
	FromDate  time.Time
	ToDate    time.Time
	Reason    string
	Status    LeaveStatus
	CreatedAt time.Time
}
