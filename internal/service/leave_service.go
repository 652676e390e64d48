package service

import (
	"context"
	"time"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// LeaveService handles leave requests and their admin transitions.
type LeaveService struct {
	leaves repository.LeaveRepository
}

// NewLeaveService builds the service.
func NewLeaveService(leaves repository.LeaveRepository) *LeaveService {
	return &LeaveService{leaves: leaves}
}

// Apply creates a request in Pending state. All fields are required.
func (s *LeaveService) Apply(ctx context.Context, staffID int64, fromDate, toDate, reason string) (*domain.LeaveRequest, error) {
	if staffID == 0 || fromDate == "" || toDate == "" || reason == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}

	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return nil, apperrors.NewValidationError("from date must be YYYY-MM-DD", nil)
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return nil, apperrors.NewValidationError("to date must be YYYY-MM-DD", nil)
	}

	request := &domain.LeaveRequest{
		StaffID:  staffID,
		FromDate: from,
		ToDate:   to,
		Reason:   reason,
		Status:   domain.LeavePending,
	}
	if err := s.leaves.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

// ListAll returns every request joined with the staff name, newest first.
func (s *LeaveService) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	requests, err := s.leaves.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// MyLeaves returns the caller's own requests.
func (s *LeaveService) MyLeaves(ctx context.Context, staffID int64) ([]domain.LeaveRequest, error) {
	requests, err := s.leaves.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// UpdateStatus accepts exactly Approved or Rejected. Repeated transitions are
// allowed; there is no terminal state.
func (s *LeaveService) UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) error {
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return apperrors.NewValidationError("invalid status value", nil)
	}

	affected, err := s.leaves.UpdateStatus(ctx, id, status)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFound("leave request", map[string]any{"id": id})
	}
	return nil
}
