// File: services/aid/sessionStore.go
package aid

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtside/models"

	"github.com/go-redis/redis/v8"
)

const aidDraftPrefix = "aid:draft:"

// SessionStore keeps in-progress wizard drafts in Redis with a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// storedSession is the Redis-side shape of a wizard session. The API-facing
// AidSession hides attachment bytes behind json:"-", so the store carries them
// in a parallel slice and reattaches them on read.
type storedSession struct {
	Session  models.AidSession `json:"session"`
	Contents [][]byte          `json:"contents,omitempty"`
}

func encodeSession(session *models.AidSession) ([]byte, error) {
	stored := storedSession{Session: *session}
	if n := len(session.Draft.Documents); n > 0 {
		stored.Contents = make([][]byte, n)
		for i, doc := range session.Draft.Documents {
			stored.Contents[i] = doc.Content
		}
	}
	return json.Marshal(stored)
}

func decodeSession(data []byte) (*models.AidSession, error) {
	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	for i := range stored.Contents {
		if i < len(stored.Session.Draft.Documents) {
			stored.Session.Draft.Documents[i].Content = stored.Contents[i]
		}
	}
	return &stored.Session, nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.AidSession, error) {
	key := aidDraftPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("application session not found or expired")
	}
	if err != nil {
		return nil, err
	}
	return decodeSession([]byte(data))
}

func (s *SessionStore) Set(ctx context.Context, session *models.AidSession) error {
	key := aidDraftPrefix + session.SessionID
	b, err := encodeSession(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	key := aidDraftPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
