package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

func TestSendRequiresTitleAndMessage(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{})
	ctx := context.Background()

	_, err := svc.Send(ctx, "", "body", nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.Send(ctx, "title", "", nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestSendBroadcastKeepsEmptyRecipientList(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	notification, err := svc.Send(context.Background(), "Holiday", "Office closed Friday", nil)
	require.NoError(t, err)
	assert.NotZero(t, notification.ID)
	assert.Empty(t, repo.recipients)
}

func TestSendIndividualPassesRecipients(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	_, err := svc.Send(context.Background(), "Review", "Schedule your review", []int64{7, 8})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, repo.recipients)
}

func TestMarkReadValidatesID(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)
	ctx := context.Background()

	err := svc.MarkRead(ctx, 0, 7)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	assert.Zero(t, repo.markReadCalls)

	require.NoError(t, svc.MarkRead(ctx, 3, 7))
	require.NoError(t, svc.MarkRead(ctx, 3, 7))
	assert.Equal(t, 2, repo.markReadCalls)
}

func TestMyNotificationsPassThrough(t *testing.T) {
	repo := &fakeNotificationRepo{inbox: []domain.StaffNotification{
		{Notification: domain.Notification{ID: 1, Title: "Holiday"}, Type: domain.DeliveryAll, IsRead: false},
		{Notification: domain.Notification{ID: 2, Title: "Review"}, Type: domain.DeliveryIndividual, IsRead: true},
	}}
	svc := NewNotificationService(repo)

	items, err := svc.MyNotifications(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.DeliveryAll, items[0].Type)
	assert.True(t, items[1].IsRead)
}

func TestUpdateValidatesAndReports404(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{updateAffected: 0})
	ctx := context.Background()

	err := svc.Update(ctx, 1, "", "body")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)

	err = svc.Update(ctx, 1, "title", "body")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
