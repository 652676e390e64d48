package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

func TestTrainingUploadRequiresFile(t *testing.T) {
	svc := NewTrainingService(newFakeTrainingRepo(), &fakeBlobStore{}, zap.NewNop())

	_, err := svc.Upload(context.Background(), "guide.pdf", nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestTrainingUploadKeepsOriginalName(t *testing.T) {
	repo := newFakeTrainingRepo()
	svc := NewTrainingService(repo, &fakeBlobStore{baseURL: "https://cdn.example.com"}, zap.NewNop())

	material, err := svc.Upload(context.Background(), "guide.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "guide.pdf", material.FileName)
	assert.Equal(t, "https://cdn.example.com/training/guide.pdf", material.FileURL)
}

func TestTrainingDeleteUnknownID(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewTrainingService(newFakeTrainingRepo(), blobs, zap.NewNop())

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
	assert.Empty(t, blobs.deleted)
}

func TestTrainingDeleteBlobBeforeRow(t *testing.T) {
	var log []string
	repo := newFakeTrainingRepo()
	repo.log = &log
	blobs := &fakeBlobStore{baseURL: "https://cdn.example.com", log: &log}
	svc := NewTrainingService(repo, blobs, zap.NewNop())
	ctx := context.Background()

	material, err := svc.Upload(ctx, "guide.pdf", []byte("pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, material.ID))
	assert.Equal(t, []string{"blob-delete", "row-delete"}, log)
	assert.Empty(t, repo.materials)
}

func TestTrainingDeleteBlobFailureKeepsRow(t *testing.T) {
	repo := newFakeTrainingRepo()
	blobs := &fakeBlobStore{baseURL: "https://cdn.example.com"}
	svc := NewTrainingService(repo, blobs, zap.NewNop())
	ctx := context.Background()

	material, err := svc.Upload(ctx, "guide.pdf", []byte("pdf"))
	require.NoError(t, err)

	blobs.deleteErr = errors.New("bucket unreachable")
	err = svc.Delete(ctx, material.ID)
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.ToDomainError(err).HTTPStatus)
	assert.Len(t, repo.materials, 1)
}
