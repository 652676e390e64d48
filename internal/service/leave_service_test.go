package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

func TestApplyRequiresAllFields(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})
	ctx := context.Background()

	cases := []struct {
		name     string
		staffID  int64
		from, to string
		reason   string
	}{
		{"missing staff", 0, "2025-03-01", "2025-03-02", "sick"},
		{"missing from", 7, "", "2025-03-02", "sick"},
		{"missing to", 7, "2025-03-01", "", "sick"},
		{"missing reason", 7, "2025-03-01", "2025-03-02", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, tc.staffID, tc.from, tc.to, tc.reason)
			require.Error(t, err)
			assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
		})
	}
}

func TestApplyRejectsMalformedDates(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{})

	_, err := svc.Apply(context.Background(), 7, "03/01/2025", "2025-03-02", "sick")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestApplyStartsPending(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo)

	request, err := svc.Apply(context.Background(), 7, "2025-03-01", "2025-03-02", "sick")
	require.NoError(t, err)
	assert.Equal(t, domain.LeavePending, request.Status)
	assert.NotZero(t, request.ID)
	assert.Len(t, repo.requests, 1)
}

func TestUpdateStatusAcceptsOnlyApprovedOrRejected(t *testing.T) {
	repo := &fakeLeaveRepo{updateAffected: 1}
	svc := NewLeaveService(repo)
	ctx := context.Background()

	for _, status := range []domain.LeaveStatus{domain.LeavePending, domain.LeaveStatus("Cancelled"), ""} {
		err := svc.UpdateStatus(ctx, 1, status)
		require.Error(t, err)
		assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	}

	require.NoError(t, svc.UpdateStatus(ctx, 1, domain.LeaveApproved))
	assert.Equal(t, domain.LeaveApproved, repo.updatedStatus)
	require.NoError(t, svc.UpdateStatus(ctx, 1, domain.LeaveRejected))
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{updateAffected: 0})

	err := svc.UpdateStatus(context.Background(), 99, domain.LeaveApproved)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
