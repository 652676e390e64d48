package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/api/dto"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/service"
)

// TrainingHandler manages training material endpoints.
type TrainingHandler struct {
	service *service.TrainingService
}

// NewTrainingHandler constructs handler.
func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: trainingService}
}

// Upload POST /api/training/upload.
func (h *TrainingHandler) Upload(c *fiber.Ctx) error {
	name, data, err := formFileBytes(c, "file")
	if err != nil {
		return err
	}
	material, err := h.service.Upload(c.UserContext(), name, data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": trainingMaterialResponse(material)})
}

// ListAll GET /api/training/all.
func (h *TrainingHandler) ListAll(c *fiber.Ctx) error {
	materials, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TrainingMaterialResponse, 0, len(materials))
	for i := range materials {
		items = append(items, trainingMaterialResponse(&materials[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /api/training/delete/:id.
func (h *TrainingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "training material deleted"})
}

func trainingMaterialResponse(material *domain.TrainingMaterial) dto.TrainingMaterialResponse {
	return dto.TrainingMaterialResponse{
		ID:         material.ID,
		FileName:   material.FileName,
		FileURL:    material.FileURL,
		UploadedAt: material.UploadedAt,
	}
}
