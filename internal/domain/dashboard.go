package domain

// AdminDashboard aggregates portal-wide counters, each computed as an
// independent scalar subquery at request time.
type AdminDashboard struct {
	TotalStaff    int64
	TotalLeaves   int64
	TotalUploads  int64
	TodaysPresent int64
}

// StaffDashboard aggregates one staff member's counters.
type StaffDashboard struct {
	TotalLeaves          int64
	ApprovedLeaves       int64
	UploadedDocs         int64
	AttendancePercentage *float64
}
