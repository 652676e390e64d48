package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.service.Submit(c.UserContext(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "message received",
		"data":    fiber.Map{"id": contact.ID},
	})
}
