package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	"github.com/WebArtifcatsind/my-project-backend/internal/storage"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

const folderTraining = "training"

// TrainingService handles global training materials.
type TrainingService struct {
	materials repository.TrainingRepository
	blobs     storage.BlobStore
	logger    *zap.Logger
}

// NewTrainingService builds the service.
func NewTrainingService(materials repository.TrainingRepository, blobs storage.BlobStore, logger *zap.Logger) *TrainingService {
	return &TrainingService{materials: materials, blobs: blobs, logger: logger}
}

// Upload stores the file first; a storage failure leaves no row behind.
func (s *TrainingService) Upload(ctx context.Context, originalName string, data []byte) (*domain.TrainingMaterial, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("no file uploaded", nil)
	}

	url, err := s.blobs.Upload(ctx, folderTraining, originalName, data)
	if err != nil {
		return nil, apperrors.NewDependencyError("file storage", err)
	}

	material := &domain.TrainingMaterial{FileName: originalName, FileURL: url}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, apperrors.MapError(err)
	}
	return material, nil
}

// List returns all materials.
func (s *TrainingService) List(ctx context.Context) ([]domain.TrainingMaterial, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return materials, nil
}

// Delete fetches the stored URL, deletes the blob, then deletes the row.
// Blob and row deletes are not transactional: a failure after the blob delete
// leaves a dangling row, which is accepted rather than hidden.
func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("training file not found")
		}
		return apperrors.MapError(err)
	}

	if err := s.blobs.Delete(ctx, material.FileURL); err != nil {
		return apperrors.NewDependencyError("file storage", err)
	}

	if err := s.materials.Delete(ctx, id); err != nil {
		s.logger.Error("training row delete failed after blob delete",
			zap.Int64("id", id), zap.Error(err))
		return apperrors.MapError(err)
	}
	return nil
}
