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

// SalaryHandler manages payroll document endpoints.
type SalaryHandler struct {
	service *service.SalaryService
}

// NewSalaryHandler constructs handler.
func NewSalaryHandler(salaryService *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{service: salaryService}
}

// Upload POST /api/salary/upload.
func (h *SalaryHandler) Upload(c *fiber.Ctx) error {
	userID, _ := strconv.ParseInt(c.FormValue("userId"), 10, 64)
	name, data, err := formFileBytes(c, "file")
	if err != nil {
		return err
	}

	slip, err := h.service.UploadSlip(c.UserContext(), userID, name, data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": salarySlipResponse(slip)})
}

// MySlips GET /api/salary/my-slips.
func (h *SalaryHandler) MySlips(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	slips, err := h.service.MySlips(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	items := make([]dto.SalarySlipResponse, 0, len(slips))
	for i := range slips {
		items = append(items, salarySlipResponse(&slips[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Download GET /api/salary/download/:filename.
func (h *SalaryHandler) Download(c *fiber.Ctx) error {
	fragment := c.Params("filename")
	if fragment == "" {
		return apperrors.NewValidationError("filename is required", nil)
	}
	url, err := h.service.ResolveDownload(c.UserContext(), fragment)
	if err != nil {
		return err
	}
	return c.Redirect(url, fiber.StatusFound)
}

// RequestSlip POST /api/salary/request-slip.
func (h *SalaryHandler) RequestSlip(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	slip, err := h.service.RequestCurrentSlip(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": salarySlipResponse(slip)})
}

func salarySlipResponse(slip *domain.SalarySlip) dto.SalarySlipResponse {
	return dto.SalarySlipResponse{
		ID:         slip.ID,
		UserID:     slip.UserID,
		FileURL:    slip.FileURL,
		UploadedAt: slip.UploadedAt,
	}
}
