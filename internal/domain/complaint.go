package domain

import "time"

// ComplaintStatus enumerates complaint lifecycle states.
type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "Open"
	ComplaintResolved ComplaintStatus = "Resolved"
)

// Complaint is submitted publicly, optionally assigned to a staff member by an
// admin. VisibleToStaff only affects the assigned staff member's dashboard;
// admins always see the row.
type Complaint struct {
	ID             int64
	Name           string
	Email          string
	Subject        string
	Message        string
	FileURL        *string
	Status         ComplaintStatus
	AssignedTo     *int64
	AssignedStaff  *string
	VisibleToStaff bool
	SubmittedAt    time.Time
}
