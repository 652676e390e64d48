package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// NotificationService handles admin fan-out and per-staff read state.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService builds the service.
func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Send creates a notification. An empty recipient list means broadcast to all
// staff, stored as a single unexpanded row so staff hired later still see it.
func (s *NotificationService) Send(ctx context.Context, title, message string, recipientIDs []int64) (*domain.Notification, error) {
	if title == "" || message == "" {
		return nil, apperrors.NewValidationError("title and message are required", nil)
	}

	notification := &domain.Notification{Title: title, Message: message}
	if err := s.notifications.CreateWithRecipients(ctx, notification, recipientIDs); err != nil {
		return nil, apperrors.MapError(err)
	}
	return notification, nil
}

// MyNotifications returns the caller's visible notifications with read flags.
func (s *NotificationService) MyNotifications(ctx context.Context, staffID int64) ([]domain.StaffNotification, error) {
	items, err := s.notifications.ListForStaff(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// MarkRead records that the caller has read one notification. Idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, staffID int64) error {
	if notificationID == 0 {
		return apperrors.NewValidationError("notification ID is required", nil)
	}
	if err := s.notifications.MarkRead(ctx, notificationID, staffID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// MarkAllRead marks every notification currently visible to the caller.
func (s *NotificationService) MarkAllRead(ctx context.Context, staffID int64) error {
	if err := s.notifications.MarkAllRead(ctx, staffID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListAll returns every notification with its recipient labels for admins.
func (s *NotificationService) ListAll(ctx context.Context) ([]domain.AdminNotification, error) {
	items, err := s.notifications.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// Update edits title and message. Recipients cannot be changed after send.
func (s *NotificationService) Update(ctx context.Context, id int64, title, message string) error {
	if title == "" || message == "" {
		return apperrors.NewValidationError("title and message are required", nil)
	}

	affected, err := s.notifications.UpdateContent(ctx, id, title, message)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("notification not found")
	}
	return nil
}

// Delete removes a notification together with its recipient and read rows.
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("notification not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}
