package service

import (
	"context"
	"fmt"
	"time"

	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/config"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// AttendanceService enforces the marking window and ownership rules.
type AttendanceService struct {
	attendance  repository.AttendanceRepository
	windowOpen  int
	windowClose int
	now         func() time.Time
}

// NewAttendanceService builds the service.
func NewAttendanceService(attendance repository.AttendanceRepository, cfg config.AttendanceConfig) *AttendanceService {
	return &AttendanceService{
		attendance:  attendance,
		windowOpen:  cfg.WindowOpenMinute,
		windowClose: cfg.WindowCloseMinute,
		now:         time.Now,
	}
}

// Mark records today's attendance for the caller. Accepted only while the
// server clock, in minutes since midnight, is inside the inclusive window.
// Outside the window it is a policy violation, not a validation failure.
// A second mark on the same day overwrites status.
func (s *AttendanceService) Mark(ctx context.Context, userID int64) (*domain.AttendanceRecord, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user not authenticated", nil)
	}

	now := s.now()
	minute := now.Hour()*60 + now.Minute()
	if minute < s.windowOpen || minute > s.windowClose {
		return nil, apperrors.NewForbidden(fmt.Sprintf(
			"attendance allowed only between %s and %s",
			clockLabel(s.windowOpen), clockLabel(s.windowClose)))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	record, err := s.attendance.Upsert(ctx, userID, today, domain.AttendancePresent)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// clockLabel renders minutes since midnight as a wall-clock time.
func clockLabel(minute int) string {
	return time.Date(0, time.January, 1, minute/60, minute%60, 0, 0, time.UTC).Format("3:04 PM")
}

// Update is the admin upsert: any user, any date, any status, no window check.
func (s *AttendanceService) Update(ctx context.Context, userID int64, date string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	if userID == 0 || date == "" || status == "" {
		return nil, apperrors.NewValidationError("missing required fields", nil)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}

	record, err := s.attendance.Upsert(ctx, userID, day, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// ListByDate returns all records, optionally filtered to one date.
func (s *AttendanceService) ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	var filter *time.Time
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
		}
		filter = &day
	}

	records, err := s.attendance.ListByDate(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// MyAttendance returns the caller's own records, newest first.
func (s *AttendanceService) MyAttendance(ctx context.Context, userID int64) ([]domain.AttendanceRecord, error) {
	records, err := s.attendance.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// ByUser returns one user's records, admin or owner only. With month and year
// both set the result is limited to that month, ascending.
func (s *AttendanceService) ByUser(ctx context.Context, principal *auth.Principal, targetID int64, month, year int) ([]domain.AttendanceRecord, error) {
	if targetID <= 0 {
		return nil, apperrors.NewValidationError("invalid user ID", nil)
	}
	if !principal.IsAdmin() && principal.UserID != targetID {
		return nil, apperrors.NewForbidden("access denied")
	}

	var (
		records []domain.AttendanceRecord
		err     error
	)
	if month >= 1 && month <= 12 && year > 0 {
		records, err = s.attendance.ListByUserMonth(ctx, targetID, year, month)
	} else {
		records, err = s.attendance.ListByUser(ctx, targetID)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}
