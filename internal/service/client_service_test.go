package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

func TestSubmitComplaintWithoutAttachment(t *testing.T) {
	repo := &fakeComplaintRepo{}
	blobs := &fakeBlobStore{baseURL: "https://cdn.example.com"}
	svc := NewClientService(repo, &fakeFeedbackRepo{}, blobs)

	complaint, err := svc.SubmitComplaint(context.Background(),
		"Client", "client@example.com", "Billing", "Wrong invoice", "", nil)
	require.NoError(t, err)
	assert.Nil(t, complaint.FileURL)
	assert.Equal(t, domain.ComplaintOpen, complaint.Status)
	assert.True(t, complaint.VisibleToStaff)
	assert.Empty(t, blobs.uploaded)
}

func TestSubmitComplaintWithAttachment(t *testing.T) {
	repo := &fakeComplaintRepo{}
	blobs := &fakeBlobStore{baseURL: "https://cdn.example.com"}
	svc := NewClientService(repo, &fakeFeedbackRepo{}, blobs)

	complaint, err := svc.SubmitComplaint(context.Background(),
		"Client", "client@example.com", "Billing", "Wrong invoice", "invoice.png", []byte("png"))
	require.NoError(t, err)
	require.NotNil(t, complaint.FileURL)
	assert.Equal(t, "https://cdn.example.com/complaints/invoice.png", *complaint.FileURL)
}

func TestSubmitComplaintValidation(t *testing.T) {
	svc := NewClientService(&fakeComplaintRepo{}, &fakeFeedbackRepo{}, &fakeBlobStore{})

	_, err := svc.SubmitComplaint(context.Background(), "", "c@example.com", "S", "M", "", nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestAssignComplaintUnknownID(t *testing.T) {
	svc := NewClientService(&fakeComplaintRepo{assignAffected: 0}, &fakeFeedbackRepo{}, &fakeBlobStore{})

	err := svc.AssignComplaint(context.Background(), 99, 7)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestHideComplaintScopedToAssignee(t *testing.T) {
	svc := NewClientService(&fakeComplaintRepo{hideAffected: 0}, &fakeFeedbackRepo{}, &fakeBlobStore{})

	err := svc.HideComplaint(context.Background(), 5, 7)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 403, domainErr.HTTPStatus)
	assert.Equal(t, "unauthorized or complaint not found", domainErr.Message)

	svc = NewClientService(&fakeComplaintRepo{hideAffected: 1}, &fakeFeedbackRepo{}, &fakeBlobStore{})
	assert.NoError(t, svc.HideComplaint(context.Background(), 5, 7))
}

func TestMyComplaintsExcludesHidden(t *testing.T) {
	staffID := int64(7)
	repo := &fakeComplaintRepo{complaints: []domain.Complaint{
		{ID: 1, AssignedTo: &staffID, VisibleToStaff: true},
		{ID: 2, AssignedTo: &staffID, VisibleToStaff: false},
		{ID: 3, VisibleToStaff: true},
	}}
	svc := NewClientService(repo, &fakeFeedbackRepo{}, &fakeBlobStore{})

	complaints, err := svc.MyComplaints(context.Background(), staffID)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, int64(1), complaints[0].ID)
}

func TestSubmitFeedbackStartsPrivate(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewClientService(&fakeComplaintRepo{}, repo, &fakeBlobStore{})

	feedback, err := svc.SubmitFeedback(context.Background(), "Client", "c@example.com", "Great service")
	require.NoError(t, err)
	assert.False(t, feedback.IsPublic)
}

func TestPublicFeedbackOmitsEmail(t *testing.T) {
	repo := &fakeFeedbackRepo{setPublicAffected: 1}
	svc := NewClientService(&fakeComplaintRepo{}, repo, &fakeBlobStore{})
	ctx := context.Background()

	feedback, err := svc.SubmitFeedback(ctx, "Client", "secret@example.com", "Great service")
	require.NoError(t, err)
	require.NoError(t, svc.SetFeedbackPublic(ctx, feedback.ID, true))

	public, err := svc.PublicFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Client", public[0].Name)
	assert.Equal(t, "Great service", public[0].Message)
}

func TestSetFeedbackPublicUnknownID(t *testing.T) {
	svc := NewClientService(&fakeComplaintRepo{}, &fakeFeedbackRepo{setPublicAffected: 0}, &fakeBlobStore{})

	err := svc.SetFeedbackPublic(context.Background(), 99, true)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
