package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HistoryStore keeps per-session conversation history. Entries expire on
// their own; nothing accumulates for the process lifetime.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]Message, error)
	Save(ctx context.Context, sessionID string, history []Message) error
	Reset(ctx context.Context, sessionID string) error
}

type redisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisHistoryStore builds a Redis-backed history store with TTL eviction.
func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) HistoryStore {
	return &redisHistoryStore{client: client, ttl: ttl}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}

func (s *redisHistoryStore) Load(ctx context.Context, sessionID string) ([]Message, error) {
	raw, err := s.client.Get(ctx, historyKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var history []Message
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *redisHistoryStore) Save(ctx context.Context, sessionID string, history []Message) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, historyKey(sessionID), raw, s.ttl).Err()
}

func (s *redisHistoryStore) Reset(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, historyKey(sessionID)).Err()
}
