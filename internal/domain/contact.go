package domain

import "time"

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
