package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	"github.com/WebArtifcatsind/my-project-backend/internal/storage"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

const folderSalarySlips = "salarySlips"

// SalaryService handles payroll document uploads and lookups.
type SalaryService struct {
	slips repository.SalaryRepository
	blobs storage.BlobStore
	now   func() time.Time
}

// NewSalaryService builds the service.
func NewSalaryService(slips repository.SalaryRepository, blobs storage.BlobStore) *SalaryService {
	return &SalaryService{slips: slips, blobs: blobs, now: time.Now}
}

// UploadSlip stores the file then records the pointer row.
func (s *SalaryService) UploadSlip(ctx context.Context, userID int64, originalName string, data []byte) (*domain.SalarySlip, error) {
	if userID == 0 || len(data) == 0 {
		return nil, apperrors.NewValidationError("missing file or user ID", nil)
	}

	url, err := s.blobs.Upload(ctx, folderSalarySlips, originalName, data)
	if err != nil {
		return nil, apperrors.NewDependencyError("file storage", err)
	}

	slip := &domain.SalarySlip{UserID: userID, FileURL: url}
	if err := s.slips.Create(ctx, slip); err != nil {
		return nil, apperrors.MapError(err)
	}
	return slip, nil
}

// MySlips returns the caller's slips, newest first.
func (s *SalaryService) MySlips(ctx context.Context, userID int64) ([]domain.SalarySlip, error) {
	slips, err := s.slips.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return slips, nil
}

// ResolveDownload maps a filename fragment to the stored URL.
func (s *SalaryService) ResolveDownload(ctx context.Context, fragment string) (string, error) {
	url, err := s.slips.FindURL(ctx, fragment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundMessage("file not found")
		}
		return "", apperrors.MapError(err)
	}
	return url, nil
}

// RequestCurrentSlip returns the caller's slip for the current month, if one
// has been uploaded.
func (s *SalaryService) RequestCurrentSlip(ctx context.Context, userID int64) (*domain.SalarySlip, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID missing", nil)
	}

	now := s.now()
	slip, err := s.slips.FindByUserAndMonth(ctx, userID, now.Year(), int(now.Month()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("no salary slip found for this month")
		}
		return nil, apperrors.MapError(err)
	}
	return slip, nil
}
