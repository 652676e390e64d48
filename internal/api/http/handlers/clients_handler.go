package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// ClientsHandler manages the public complaint and feedback surface plus the
// admin workflows behind it.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// SubmitComplaint POST /api/clients/complaint. Multipart; the attachment is
// optional.
func (h *ClientsHandler) SubmitComplaint(c *fiber.Ctx) error {
	name, data, err := formFileBytes(c, "file")
	if err != nil {
		return err
	}
	complaint, err := h.service.SubmitComplaint(c.UserContext(),
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("subject"),
		c.FormValue("message"),
		name, data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintResponse(complaint)})
}

// SubmitFeedback POST /api/clients/feedback.
func (h *ClientsHandler) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	feedback, err := h.service.SubmitFeedback(c.UserContext(), req.Name, req.Email, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponse(feedback)})
}

// ListComplaints GET /api/clients/complaints.
func (h *ClientsHandler) ListComplaints(c *fiber.Ctx) error {
	complaints, err := h.service.ListComplaints(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// AssignComplaint POST /api/clients/complaint/assign.
func (h *ClientsHandler) AssignComplaint(c *fiber.Ctx) error {
	var req dto.AssignComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.AssignComplaint(c.UserContext(), req.ComplaintID, req.StaffID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "complaint assigned"})
}

// MyComplaints GET /api/clients/complaints/assigned.
func (h *ClientsHandler) MyComplaints(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	complaints, err := h.service.MyComplaints(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ResolveComplaint PUT /api/clients/complaint/resolve/:id.
func (h *ClientsHandler) ResolveComplaint(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ResolveComplaint(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "complaint resolved"})
}

// HideComplaint DELETE /api/clients/complaints/staff/:id. Soft delete scoped
// to the assigned staff member; the row itself stays for admins.
func (h *ClientsHandler) HideComplaint(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.HideComplaint(c.UserContext(), id, principal.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "complaint removed from your list"})
}

// DeleteComplaint DELETE /api/clients/complaint/:id.
func (h *ClientsHandler) DeleteComplaint(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteComplaint(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "complaint deleted"})
}

// ListFeedback GET /api/clients/feedbacks.
func (h *ClientsHandler) ListFeedback(c *fiber.Ctx) error {
	feedback, err := h.service.ListFeedback(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(feedback))
	for i := range feedback {
		items = append(items, feedbackResponse(&feedback[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// PublishFeedback PUT /api/clients/feedback/public/:id.
func (h *ClientsHandler) PublishFeedback(c *fiber.Ctx) error {
	return h.setFeedbackPublic(c, true, "feedback published")
}

// UnpublishFeedback PUT /api/clients/feedback/unpublic/:id.
func (h *ClientsHandler) UnpublishFeedback(c *fiber.Ctx) error {
	return h.setFeedbackPublic(c, false, "feedback unpublished")
}

func (h *ClientsHandler) setFeedbackPublic(c *fiber.Ctx, public bool, message string) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.SetFeedbackPublic(c.UserContext(), id, public); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}

// PublicFeedback GET /api/clients/public-feedbacks.
func (h *ClientsHandler) PublicFeedback(c *fiber.Ctx) error {
	feedback, err := h.service.PublicFeedback(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.PublicFeedbackResponse, 0, len(feedback))
	for _, entry := range feedback {
		items = append(items, dto.PublicFeedbackResponse{
			Name:        entry.Name,
			Message:     entry.Message,
			SubmittedAt: entry.SubmittedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteFeedback DELETE /api/clients/feedback/:id.
func (h *ClientsHandler) DeleteFeedback(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteFeedback(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "feedback deleted"})
}

func complaintResponse(complaint *domain.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:             complaint.ID,
		Name:           complaint.Name,
		Email:          complaint.Email,
		Subject:        complaint.Subject,
		Message:        complaint.Message,
		FileURL:        complaint.FileURL,
		Status:         complaint.Status,
		AssignedTo:     complaint.AssignedTo,
		AssignedStaff:  complaint.AssignedStaff,
		VisibleToStaff: complaint.VisibleToStaff,
		SubmittedAt:    complaint.SubmittedAt,
	}
}

func feedbackResponse(feedback *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:          feedback.ID,
		Name:        feedback.Name,
		Email:       feedback.Email,
		Message:     feedback.Message,
		IsPublic:    feedback.IsPublic,
		SubmittedAt: feedback.SubmittedAt,
	}
}
