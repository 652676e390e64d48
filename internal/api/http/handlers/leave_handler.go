package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// LeaveHandler manages leave request endpoints.
type LeaveHandler struct {
	service *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: leaveService}
}

// Apply POST /api/leave/apply.
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.service.Apply(c.UserContext(), principal.UserID, req.FromDate, req.ToDate, req.Reason)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": leaveResponse(request)})
}

// ListAll GET /api/leave/all.
func (h *LeaveHandler) ListAll(c *fiber.Ctx) error {
	requests, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(requests)})
}

// My GET /api/leave/my.
func (h *LeaveHandler) My(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	requests, err := h.service.MyLeaves(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(requests)})
}

// UpdateStatus PUT /api/leave/update/:id.
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateLeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.service.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "leave status updated"})
}

func leaveResponse(request *domain.LeaveRequest) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:        request.ID,
		StaffID:   request.StaffID,
		StaffName: request.StaffName,
		FromDate:  request.FromDate.Format(dateLayout),
		ToDate:    request.ToDate.Format(dateLayout),
		Reason:    request.Reason,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}

func leaveResponses(requests []domain.LeaveRequest) []dto.LeaveResponse {
	items := make([]dto.LeaveResponse, 0, len(requests))
	for i := range requests {
		items = append(items, leaveResponse(&requests[i]))
	}
	return items
}
