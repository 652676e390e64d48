package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// DocumentsHandler manages staff uploads and admin-shared documents. Uploads
// are multipart; downloads resolve a filename fragment and redirect to the
// stored URL.
type DocumentsHandler struct {
	service *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documentService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{service: documentService}
}

// StaffUpload POST /api/documents/staff-upload.
func (h *DocumentsHandler) StaffUpload(c *fiber.Ctx) error {
	userID, _ := strconv.ParseInt(c.FormValue("userId"), 10, 64)
	title := c.FormValue("title")
	name, data, err := formFileBytes(c, "file")
	if err != nil {
		return err
	}

	doc, err := h.service.UploadStaffDocument(c.UserContext(), userID, title, name, data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffDocumentResponse(doc)})
}

// ListStaffUploads GET /api/documents/staff-uploads.
func (h *DocumentsHandler) ListStaffUploads(c *fiber.Ctx) error {
	docs, err := h.service.ListStaffDocuments(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.StaffDocumentResponse, 0, len(docs))
	for i := range docs {
		items = append(items, staffDocumentResponse(&docs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Download GET /api/documents/download/:filename.
func (h *DocumentsHandler) Download(c *fiber.Ctx) error {
	fragment := c.Params("filename")
	if fragment == "" {
		return apperrors.NewValidationError("filename is required", nil)
	}
	url, err := h.service.ResolveStaffDownload(c.UserContext(), fragment)
	if err != nil {
		return err
	}
	return c.Redirect(url, fiber.StatusFound)
}

// AdminUpload POST /api/documents/admin-upload.
func (h *DocumentsHandler) AdminUpload(c *fiber.Ctx) error {
	userID, _ := strconv.ParseInt(c.FormValue("userId"), 10, 64)
	title := c.FormValue("title")
	name, data, err := formFileBytes(c, "file")
	if err != nil {
		return err
	}

	doc, err := h.service.UploadAdminDocument(c.UserContext(), userID, title, name, data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adminDocumentResponse(doc)})
}

// ClientDownload GET /api/documents/client-download/:filename.
func (h *DocumentsHandler) ClientDownload(c *fiber.Ctx) error {
	fragment := c.Params("filename")
	if fragment == "" {
		return apperrors.NewValidationError("filename is required", nil)
	}
	url, err := h.service.ResolveClientDownload(c.UserContext(), fragment)
	if err != nil {
		return err
	}
	return c.Redirect(url, fiber.StatusFound)
}

func staffDocumentResponse(doc *domain.StaffDocument) dto.StaffDocumentResponse {
	return dto.StaffDocumentResponse{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Title:     doc.Title,
		FileURL:   doc.FileURL,
		CreatedAt: doc.CreatedAt,
	}
}

func adminDocumentResponse(doc *domain.AdminSharedDocument) dto.AdminDocumentResponse {
	return dto.AdminDocumentResponse{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Title:     doc.Title,
		FileURL:   doc.FileURL,
		CreatedAt: doc.CreatedAt,
	}
}
