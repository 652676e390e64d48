package dto

// AdminDashboardResponse carries the portal-wide counters.
type AdminDashboardResponse struct {
	TotalStaff    int64 `json:"totalStaff"`
	TotalLeaves   int64 `json:"totalLeaves"`
	TotalUploads  int64 `json:"totalUploads"`
	TodaysPresent int64 `json:"todaysPresent"`
}

// StaffDashboardResponse carries one staff member's counters.
// AttendancePercentage is null until at least one attendance row exists.
type StaffDashboardResponse struct {
	TotalLeaves          int64    `json:"totalLeaves"`
	ApprovedLeaves       int64    `json:"approvedLeaves"`
	UploadedDocs         int64    `json:"uploadedDocs"`
	AttendancePercentage *float64 `json:"attendancePercentage"`
}
