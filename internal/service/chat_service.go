package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/ai"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// ChatService runs the public chatbot. History lives in the session store
// under the caller-supplied session ID and expires on its own.
type ChatService struct {
	client  ai.ChatClient
	history ai.HistoryStore
	logger  *zap.Logger
}

// NewChatService builds the service.
func NewChatService(client ai.ChatClient, history ai.HistoryStore, logger *zap.Logger) *ChatService {
	return &ChatService{client: client, history: history, logger: logger}
}

// Ask sends the message with the session's prior turns and appends both the
// question and the reply to the stored history. Saving the refreshed history
// also resets its expiry.
func (s *ChatService) Ask(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(message) == "" {
		return "", apperrors.NewValidationError("sessionId and message are required", nil)
	}

	history, err := s.history.Load(ctx, sessionID)
	if err != nil {
		return "", apperrors.NewDependencyError("session store", err)
	}

	reply, err := s.client.Complete(ctx, history, message)
	if err != nil {
		return "", apperrors.NewDependencyError("chat model", err)
	}

	history = append(history,
		ai.Message{Role: "user", Text: message},
		ai.Message{Role: "model", Text: reply},
	)
	if err := s.history.Save(ctx, sessionID, history); err != nil {
		s.logger.Warn("chat history save failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	return reply, nil
}

// Reset discards the session's history.
func (s *ChatService) Reset(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return apperrors.NewValidationError("sessionId is required", nil)
	}
	if err := s.history.Reset(ctx, sessionID); err != nil {
		return apperrors.NewDependencyError("session store", err)
	}
	return nil
}
