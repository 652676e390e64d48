package domain

import "time"

// DeliveryType distinguishes broadcast rows from individually targeted ones.
type DeliveryType string

const (
	DeliveryAll        DeliveryType = "all"
	DeliveryIndividual DeliveryType = "individual"
)

// Notification holds the content; delivery and read state live in the
// recipient and read tables, never on the notification itself.
type Notification struct {
	ID        int64
	Title     string
	Message   string
	CreatedAt time.Time
}

// StaffNotification annotates a notification for one staff member's inbox.
type StaffNotification struct {
	Notification
	Type   DeliveryType
	IsRead bool
}

// AdminNotification annotates a notification with its recipient summary for
// the admin listing ("All Staff" stands in for the broadcast row).
type AdminNotification struct {
	Notification
	Recipients []string
}
