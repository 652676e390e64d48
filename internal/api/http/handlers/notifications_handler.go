package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// NotificationsHandler manages notification endpoints.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// Send POST /api/notifications/send.
func (h *NotificationsHandler) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	notification, err := h.service.Send(c.UserContext(), req.Title, req.Message, req.RecipientIDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"id":        notification.ID,
		"title":     notification.Title,
		"message":   notification.Message,
		"createdAt": notification.CreatedAt,
	}})
}

// My GET /api/notifications/my.
func (h *NotificationsHandler) My(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	notifications, err := h.service.MyNotifications(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	items := make([]dto.StaffNotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, staffNotificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkRead POST /api/notifications/mark-read/:notificationId.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseIDParam(c, "notificationId")
	if err != nil {
		return err
	}
	if err := h.service.MarkRead(c.UserContext(), id, principal.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "notification marked as read"})
}

// MarkAllRead POST /api/notifications/mark-all-read.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.MarkAllRead(c.UserContext(), principal.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "all notifications marked as read"})
}

// ListAll GET /api/notifications/all.
func (h *NotificationsHandler) ListAll(c *fiber.Ctx) error {
	notifications, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.AdminNotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, adminNotificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PUT /api/notifications/update/:id.
func (h *NotificationsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.Update(c.UserContext(), id, req.Title, req.Message); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "notification updated"})
}

// Delete DELETE /api/notifications/delete/:id.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "notification deleted"})
}

func staffNotificationResponse(notification *domain.StaffNotification) dto.StaffNotificationResponse {
	return dto.StaffNotificationResponse{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func adminNotificationResponse(notification *domain.AdminNotification) dto.AdminNotificationResponse {
	return dto.AdminNotificationResponse{
		ID:         notification.ID,
		Title:      notification.Title,
		Message:    notification.Message,
		Recipients: notification.Recipients,
		CreatedAt:  notification.CreatedAt,
	}
}
