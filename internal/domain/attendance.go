package domain

import "time"

// AttendanceStatus captures the recorded state for one user-day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceHalfDay AttendanceStatus = "Half Day"
	AttendanceLeave   AttendanceStatus = "Leave"
)

// AttendanceRecord is keyed by (user, calendar date); a second mark for the
// same day overwrites Status instead of adding a row.
type AttendanceRecord struct {
	ID     int64
	UserID int64
	Date   time.Time
	Status AttendanceStatus
}
