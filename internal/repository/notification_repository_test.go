package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the schema. Without the variable the integration tests are skipped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)
	return pool
}

func createTestStaff(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	ctx := context.Background()
	email := fmt.Sprintf("staff-%d@example.com", time.Now().UnixNano())

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, 'staff') RETURNING id`,
		"Test Staff", email, "unused").Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

func TestListForStaffReturnsOverlappingNotificationOnce(t *testing.T) {
	pool := testPool(t)
	repo := NewNotificationRepository(pool)
	ctx := context.Background()
	staffID := createTestStaff(t, pool)

	notification := &domain.Notification{Title: "Holiday", Message: "Office closed Friday"}
	require.NoError(t, repo.CreateWithRecipients(ctx, notification, []int64{staffID}))
	t.Cleanup(func() {
		_ = repo.Delete(ctx, notification.ID)
	})

	// The same staff member is now covered twice: targeted and broadcast.
	_, err := pool.Exec(ctx,
		`INSERT INTO notification_recipients (notification_id, recipient_id) VALUES ($1, NULL)`,
		notification.ID)
	require.NoError(t, err)

	items, err := repo.ListForStaff(ctx, staffID)
	require.NoError(t, err)

	seen := 0
	for _, item := range items {
		if item.ID == notification.ID {
			seen++
			assert.Equal(t, domain.DeliveryAll, item.Type)
			assert.False(t, item.IsRead)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestMarkReadTwiceKeepsOneRow(t *testing.T) {
	pool := testPool(t)
	repo := NewNotificationRepository(pool)
	ctx := context.Background()
	staffID := createTestStaff(t, pool)

	notification := &domain.Notification{Title: "Review", Message: "Schedule your review"}
	require.NoError(t, repo.CreateWithRecipients(ctx, notification, nil))
	t.Cleanup(func() {
		_ = repo.Delete(ctx, notification.ID)
	})

	require.NoError(t, repo.MarkRead(ctx, notification.ID, staffID))
	require.NoError(t, repo.MarkRead(ctx, notification.ID, staffID))

	var reads int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notification_reads WHERE notification_id = $1 AND staff_id = $2`,
		notification.ID, staffID).Scan(&reads))
	assert.Equal(t, 1, reads)

	items, err := repo.ListForStaff(ctx, staffID)
	require.NoError(t, err)
	for _, item := range items {
		if item.ID == notification.ID {
			assert.True(t, item.IsRead)
		}
	}
}
