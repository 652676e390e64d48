package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// AttendanceHandler manages attendance endpoints.
type AttendanceHandler struct {
	service *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: attendanceService}
}

// Mark POST /api/attendance/mark.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	record, err := h.service.Mark(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponse(record)})
}

// Update PUT /api/attendance/update.
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.service.Update(c.UserContext(), req.UserID, req.Date, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponse(record)})
}

// ListAll GET /api/attendance/all.
func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	records, err := h.service.ListByDate(c.UserContext(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponses(records)})
}

// My GET /api/attendance/my.
func (h *AttendanceHandler) My(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	records, err := h.service.MyAttendance(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponses(records)})
}

// ByUser GET /api/attendance/user/:id.
func (h *AttendanceHandler) ByUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	records, err := h.service.ByUser(c.UserContext(), principal, targetID, month, year)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": attendanceResponses(records)})
}

func attendanceResponse(record *domain.AttendanceRecord) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:     record.ID,
		UserID: record.UserID,
		Date:   record.Date.Format(dateLayout),
		Status: record.Status,
	}
}

func attendanceResponses(records []domain.AttendanceRecord) []dto.AttendanceResponse {
	items := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		items = append(items, attendanceResponse(&records[i]))
	}
	return items
}
