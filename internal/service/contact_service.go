package service

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	mailer "github.com/WebArtifcatsind/my-project-backend/internal/mail"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

var phonePattern = regexp.MustCompile(`^(\+91[\-\s]?)?[6-9]\d{9}$`)

// ContactService handles the public contact form. The submission is durable
// once the row is written; the two notification emails afterwards are best
// effort and never fail the request.
type ContactService struct {
	contacts     repository.ContactRepository
	mailer       mailer.Mailer
	companyInbox string
	logger       *zap.Logger
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, m mailer.Mailer, companyInbox string, logger *zap.Logger) *ContactService {
	return &ContactService{contacts: contacts, mailer: m, companyInbox: companyInbox, logger: logger}
}

// Submit validates, persists the message, then sends an acknowledgement to
// the sender and a copy to the company inbox.
func (s *ContactService) Submit(ctx context.Context, name, email, phone, message string) (*domain.ContactMessage, error) {
	details := map[string]any{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "name is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		details["email"] = "a valid email is required"
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		details["phone"] = "a valid Indian phone number is required"
	}
	if len(strings.TrimSpace(message)) < 10 {
		details["message"] = "message must be at least 10 characters"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid contact submission", details)
	}

	contact := &domain.ContactMessage{Name: name, Email: email, Phone: phone, Message: message}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.MapError(err)
	}

	ack := fmt.Sprintf("Hi %s,\n\nThanks for reaching out to WebArtifacts. "+
		"We have received your message and will get back to you shortly.\n\n"+
		"Your message:\n%s\n", name, message)
	if err := s.mailer.Send(email, "We received your message", ack); err != nil {
		s.logger.Warn("contact acknowledgement mail failed",
			zap.String("to", email), zap.Error(err))
	}

	copyBody := fmt.Sprintf("New contact submission\n\nName: %s\nEmail: %s\nPhone: %s\n\n%s\n",
		name, email, phone, message)
	if err := s.mailer.Send(s.companyInbox, "New contact form submission", copyBody); err != nil {
		s.logger.Warn("contact inbox mail failed",
			zap.String("to", s.companyInbox), zap.Error(err))
	}

	return contact, nil
}
