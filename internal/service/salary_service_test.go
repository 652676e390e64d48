package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

func TestUploadSlipValidation(t *testing.T) {
	svc := NewSalaryService(&fakeSalaryRepo{}, &fakeBlobStore{})

	_, err := svc.UploadSlip(context.Background(), 0, "march.pdf", []byte("x"))
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.UploadSlip(context.Background(), 7, "march.pdf", nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUploadSlipStoresPointer(t *testing.T) {
	repo := &fakeSalaryRepo{}
	svc := NewSalaryService(repo, &fakeBlobStore{baseURL: "https://cdn.example.com"})

	slip, err := svc.UploadSlip(context.Background(), 7, "march.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), slip.UserID)
	assert.Equal(t, "https://cdn.example.com/salarySlips/march.pdf", slip.FileURL)
	assert.Len(t, repo.slips, 1)
}

func TestRequestCurrentSlip(t *testing.T) {
	repo := &fakeSalaryRepo{}
	svc := NewSalaryService(repo, &fakeBlobStore{})
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	err := repo.Create(ctx, &domain.SalarySlip{
		UserID:     7,
		FileURL:    "https://cdn.example.com/salarySlips/feb.pdf",
		UploadedAt: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.RequestCurrentSlip(ctx, 7)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)

	err = repo.Create(ctx, &domain.SalarySlip{
		UserID:     7,
		FileURL:    "https://cdn.example.com/salarySlips/march.pdf",
		UploadedAt: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	slip, err := svc.RequestCurrentSlip(ctx, 7)
	require.NoError(t, err)
	assert.Contains(t, slip.FileURL, "march.pdf")
}

func TestMySlipsScopedToCaller(t *testing.T) {
	repo := &fakeSalaryRepo{}
	svc := NewSalaryService(repo, &fakeBlobStore{})
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.SalarySlip{UserID: 7, FileURL: "u7.pdf"}))
	require.NoError(t, repo.Create(ctx, &domain.SalarySlip{UserID: 8, FileURL: "u8.pdf"}))

	slips, err := svc.MySlips(ctx, 7)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, int64(7), slips[0].UserID)
}
