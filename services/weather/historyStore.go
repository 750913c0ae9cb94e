// File: services/weather/historyStore.go
package weather

import (
	"context"
	"encoding/json"
	"time"

	"courtside/models"

	"github.com/go-redis/redis/v8"
)

const chatHistoryPrefix = "weather:chat:"

// maxHistoryMessages bounds the stored conversation per user.
const maxHistoryMessages = 20

// HistoryStore keeps the assistant conversation history in Redis.
type HistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHistoryStore(client *redis.Client, ttl time.Duration) *HistoryStore {
	return &HistoryStore{client: client, ttl: ttl}
}

func (s *HistoryStore) Get(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	key := chatHistoryPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *HistoryStore) Append(ctx context.Context, userID string, msgs ...models.ChatMessage) error {
	history, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	history = append(history, msgs...)
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatHistoryPrefix+userID, b, s.ttl).Err()
}

func (s *HistoryStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, chatHistoryPrefix+userID).Err()
}
