package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// ChatHandler serves the public chatbot.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// Ask POST /api/chat.
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	reply, err := h.service.Ask(c.UserContext(), req.SessionID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ChatResponse{Reply: reply}})
}

// Reset POST /api/chat/reset.
func (h *ChatHandler) Reset(c *fiber.Ctx) error {
	var req dto.ChatResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.Reset(c.UserContext(), req.SessionID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "chat history cleared"})
}
