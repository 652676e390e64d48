package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	"github.com/WebArtifcatsind/my-project-backend/internal/storage"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

const folderComplaints = "complaints"

// ClientService handles the public complaint and feedback surface plus the
// admin workflows that sit behind it.
type ClientService struct {
	complaints repository.ComplaintRepository
	feedback   repository.FeedbackRepository
	blobs      storage.BlobStore
}

// NewClientService builds the service.
func NewClientService(complaints repository.ComplaintRepository, feedback repository.FeedbackRepository, blobs storage.BlobStore) *ClientService {
	return &ClientService{complaints: complaints, feedback: feedback, blobs: blobs}
}

// SubmitComplaint records a complaint with an optional attachment. The
// attachment, when present, is stored before the row is written.
func (s *ClientService) SubmitComplaint(ctx context.Context, name, email, subject, message, attachmentName string, attachment []byte) (*domain.Complaint, error) {
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}

	var fileURL *string
	if len(attachment) > 0 {
		url, err := s.blobs.Upload(ctx, folderComplaints, attachmentName, attachment)
		if err != nil {
			return nil, apperrors.NewDependencyError("file storage", err)
		}
		fileURL = &url
	}

	complaint := &domain.Complaint{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		FileURL: fileURL,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.MapError(err)
	}
	return complaint, nil
}

// ListComplaints returns every complaint with its assignee name, newest first.
func (s *ClientService) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return complaints, nil
}

// AssignComplaint routes a complaint to a staff member. Reassignment restores
// no visibility: a complaint the previous assignee hid stays hidden.
func (s *ClientService) AssignComplaint(ctx context.Context, complaintID, staffID int64) error {
	if complaintID == 0 || staffID == 0 {
		return apperrors.NewValidationError("complaint ID and staff ID are required", nil)
	}

	affected, err := s.complaints.Assign(ctx, complaintID, staffID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("complaint not found")
	}
	return nil
}

// MyComplaints returns the caller's assigned complaints that are still
// visible to staff.
func (s *ClientService) MyComplaints(ctx context.Context, staffID int64) ([]domain.Complaint, error) {
	complaints, err := s.complaints.ListAssignedVisible(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return complaints, nil
}

// ResolveComplaint marks a complaint Resolved. Resolving twice is allowed.
func (s *ClientService) ResolveComplaint(ctx context.Context, id int64) error {
	affected, err := s.complaints.MarkResolved(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("complaint not found")
	}
	return nil
}

// HideComplaint removes a complaint from the caller's list without deleting
// the row. Zero rows hit means either the complaint does not exist or it is
// assigned to someone else; both cases get the same answer.
func (s *ClientService) HideComplaint(ctx context.Context, id, staffID int64) error {
	affected, err := s.complaints.HideFromStaff(ctx, id, staffID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewForbidden("unauthorized or complaint not found")
	}
	return nil
}

// DeleteComplaint permanently removes a complaint.
func (s *ClientService) DeleteComplaint(ctx context.Context, id int64) error {
	if err := s.complaints.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("complaint not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// SubmitFeedback records feedback, private by default.
func (s *ClientService) SubmitFeedback(ctx context.Context, name, email, message string) (*domain.Feedback, error) {
	if name == "" || email == "" || message == "" {
		return nil, apperrors.NewValidationError("all fields are required", nil)
	}

	feedback := &domain.Feedback{Name: name, Email: email, Message: message}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, apperrors.MapError(err)
	}
	return feedback, nil
}

// ListFeedback returns all feedback for admin review.
func (s *ClientService) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	items, err := s.feedback.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// SetFeedbackPublic toggles a feedback entry on or off the public feed.
func (s *ClientService) SetFeedbackPublic(ctx context.Context, id int64, public bool) error {
	affected, err := s.feedback.SetPublic(ctx, id, public)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("feedback not found")
	}
	return nil
}

// PublicFeedback returns the published feed. Submitter emails are never
// included.
func (s *ClientService) PublicFeedback(ctx context.Context) ([]domain.PublicFeedback, error) {
	items, err := s.feedback.ListPublic(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// DeleteFeedback permanently removes a feedback entry.
func (s *ClientService) DeleteFeedback(ctx context.Context, id int64) error {
	if err := s.feedback.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("feedback not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}
