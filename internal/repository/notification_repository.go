package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
)

// NotificationRepository persists notifications, their recipient rows and
// per-staff read markers. A notification without at least one recipient row
// (including the NULL broadcast row) is unreachable by staff queries.
type NotificationRepository interface {
	CreateWithRecipients(ctx context.Context, notification *domain.Notification, recipientIDs []int64) error
	ListForStaff(ctx context.Context, staffID int64) ([]domain.StaffNotification, error)
	MarkRead(ctx context.Context, notificationID, staffID int64) error
	MarkAllRead(ctx context.Context, staffID int64) error
	ListAll(ctx context.Context) ([]domain.AdminNotification, error)
	UpdateContent(ctx context.Context, id int64, title, message string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

// CreateWithRecipients inserts the notification row and its recipient rows in
// one transaction. An empty recipientIDs slice means broadcast: a single row
// with a NULL recipient id.
func (r *notificationRepository) CreateWithRecipients(ctx context.Context, notification *domain.Notification, recipientIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insertNotification = `
        INSERT INTO notifications (title, message)
        VALUES ($1, $2)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertNotification, notification.Title, notification.Message).
		Scan(&notification.ID, &notification.CreatedAt); err != nil {
		return err
	}

	const insertRecipient = `
        INSERT INTO notification_recipients (notification_id, recipient_id)
        VALUES ($1, $2)`
	if len(recipientIDs) > 0 {
		for _, recipientID := range recipientIDs {
			if _, err := tx.Exec(ctx, insertRecipient, notification.ID, recipientID); err != nil {
				return err
			}
		}
	} else {
		if _, err := tx.Exec(ctx, insertRecipient, notification.ID, nil); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListForStaff returns each visible notification once, even when the staff
// member is both individually targeted and covered by a broadcast row.
func (r *notificationRepository) ListForStaff(ctx context.Context, staffID int64) ([]domain.StaffNotification, error) {
	const query = `
        SELECT n.id, n.title, n.message, n.created_at,
               BOOL_OR(nr.recipient_id IS NULL) AS broadcast,
               EXISTS(
                   SELECT 1 FROM notification_reads rd
                   WHERE rd.notification_id = n.id AND rd.staff_id = $1
               ) AS is_read
        FROM notifications n
        JOIN notification_recipients nr ON nr.notification_id = n.id
        WHERE nr.recipient_id = $1 OR nr.recipient_id IS NULL
        GROUP BY n.id, n.title, n.message, n.created_at
        ORDER BY n.created_at DESC`

	rows, err := r.pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffNotification
	for rows.Next() {
		var (
			item      domain.StaffNotification
			broadcast bool
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Message, &item.CreatedAt, &broadcast, &item.IsRead); err != nil {
			return nil, err
		}
		if broadcast {
			item.Type = domain.DeliveryAll
		} else {
			item.Type = domain.DeliveryIndividual
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// MarkRead is idempotent; re-marking an already-read notification is a no-op.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, staffID int64) error {
	const query = `
        INSERT INTO notification_reads (notification_id, staff_id)
        VALUES ($1, $2)
        ON CONFLICT (notification_id, staff_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, notificationID, staffID)
	return err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, staffID int64) error {
	const query = `
        INSERT INTO notification_reads (notification_id, staff_id)
        SELECT DISTINCT n.id, $1
        FROM notifications n
        JOIN notification_recipients nr ON nr.notification_id = n.id
        WHERE nr.recipient_id = $1 OR nr.recipient_id IS NULL
        ON CONFLICT (notification_id, staff_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, staffID)
	return err
}

func (r *notificationRepository) ListAll(ctx context.Context) ([]domain.AdminNotification, error) {
	const query = `
        SELECT n.id, n.title, n.message, n.created_at,
               ARRAY_AGG(CASE WHEN nr.recipient_id IS NULL THEN 'All Staff' ELSE nr.recipient_id::text END) AS recipients
        FROM notifications n
        JOIN notification_recipients nr ON nr.notification_id = n.id
        GROUP BY n.id, n.title, n.message, n.created_at
        ORDER BY n.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdminNotification
	for rows.Next() {
		var item domain.AdminNotification
		if err := rows.Scan(&item.ID, &item.Title, &item.Message, &item.CreatedAt, &item.Recipients); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// UpdateContent mutates title and message only, never recipients.
func (r *notificationRepository) UpdateContent(ctx context.Context, id int64, title, message string) (int64, error) {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE notifications SET title=$1, message=$2 WHERE id=$3`, title, message, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// Delete removes reads, then recipients, then the notification itself; the
// referential constraints require that order.
func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM notification_reads WHERE notification_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM notification_recipients WHERE notification_id=$1`, id); err != nil {
		return err
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}
