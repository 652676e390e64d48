package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// DashboardHandler serves the aggregate counter endpoints.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Admin GET /api/dashboard/admin.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	summary, err := h.service.AdminSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AdminDashboardResponse{
		TotalStaff:    summary.TotalStaff,
		TotalLeaves:   summary.TotalLeaves,
		TotalUploads:  summary.TotalUploads,
		TodaysPresent: summary.TodaysPresent,
	}})
}

// Staff GET /api/dashboard/staff.
func (h *DashboardHandler) Staff(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	summary, err := h.service.StaffSummary(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StaffDashboardResponse{
		TotalLeaves:          summary.TotalLeaves,
		ApprovedLeaves:       summary.ApprovedLeaves,
		UploadedDocs:         summary.UploadedDocs,
		AttendancePercentage: summary.AttendancePercentage,
	}})
}
