package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	"github.com/WebArtifcatsind/my-project-backend/internal/storage"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

const (
	folderFromStaff = "fromStaff"
	folderToClients = "toClients"
)

// DocumentService handles staff uploads and admin-shared documents. The blob
// upload always completes before the pointer row is written, so a storage
// failure never leaves a row referencing a missing file.
type DocumentService struct {
	documents repository.DocumentRepository
	blobs     storage.BlobStore
}

// NewDocumentService builds the service.
func NewDocumentService(documents repository.DocumentRepository, blobs storage.BlobStore) *DocumentService {
	return &DocumentService{documents: documents, blobs: blobs}
}

// UploadStaffDocument stores the file then records the pointer row.
func (s *DocumentService) UploadStaffDocument(ctx context.Context, userID int64, title, originalName string, data []byte) (*domain.StaffDocument, error) {
	if userID == 0 || title == "" || len(data) == 0 {
		return nil, apperrors.NewValidationError("missing required fields", nil)
	}

	url, err := s.blobs.Upload(ctx, folderFromStaff, originalName, data)
	if err != nil {
		return nil, apperrors.NewDependencyError("file storage", err)
	}

	doc := &domain.StaffDocument{UserID: userID, Title: title, FileURL: url}
	if err := s.documents.CreateStaffDocument(ctx, doc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return doc, nil
}

// ListStaffDocuments returns every staff upload, newest first.
func (s *DocumentService) ListStaffDocuments(ctx context.Context) ([]domain.StaffDocument, error) {
	docs, err := s.documents.ListStaffDocuments(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return docs, nil
}

// ResolveStaffDownload maps a filename fragment to the stored URL for a
// redirect response. The URL, not the fragment, is the file's identity.
func (s *DocumentService) ResolveStaffDownload(ctx context.Context, fragment string) (string, error) {
	url, err := s.documents.FindStaffDocumentURL(ctx, fragment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundMessage("file not found")
		}
		return "", apperrors.MapError(err)
	}
	return url, nil
}

// UploadAdminDocument shares a file with a specific user.
func (s *DocumentService) UploadAdminDocument(ctx context.Context, userID int64, title, originalName string, data []byte) (*domain.AdminSharedDocument, error) {
	if userID == 0 || title == "" || len(data) == 0 {
		return nil, apperrors.NewValidationError("missing required fields", nil)
	}

	url, err := s.blobs.Upload(ctx, folderToClients, originalName, data)
	if err != nil {
		return nil, apperrors.NewDependencyError("file storage", err)
	}

	doc := &domain.AdminSharedDocument{UserID: userID, Title: title, FileURL: url}
	if err := s.documents.CreateAdminDocument(ctx, doc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return doc, nil
}

// ResolveClientDownload maps a fragment to an admin-shared document URL.
func (s *DocumentService) ResolveClientDownload(ctx context.Context, fragment string) (string, error) {
	url, err := s.documents.FindAdminDocumentURL(ctx, fragment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundMessage("file not found")
		}
		return "", apperrors.MapError(err)
	}
	return url, nil
}
