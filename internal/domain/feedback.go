package domain

import "time"

// Feedback is submitted publicly and stays private until an admin publishes it.
type Feedback struct {
	ID          int64
	Name        string
	Email       string
	Message     string
	IsPublic    bool
	SubmittedAt time.Time
}

// PublicFeedback is the read-only projection exposed on the public feed.
type PublicFeedback struct {
	Name        string
	Message     string
	SubmittedAt time.Time
}
