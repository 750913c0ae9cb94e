package aid

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"courtside/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, time.Hour), mr
}

func createWizardSession(sessionID string) *models.AidSession {
	now := time.Now()
	return &models.AidSession{
		SessionID: sessionID,
		UserID:    "user-1",
		Step:      5,
		Draft:     createValidDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSessionRoundTripKeepsAttachmentBytes(t *testing.T) {
	store, _ := createTestSessionStore(t)
	ctx := context.Background()

	session := createWizardSession("sess-1")
	require.NoError(t, store.Set(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Draft.Documents, 1)
	assert.Equal(t, "income.pdf", got.Draft.Documents[0].FileName)
	// The API-facing struct hides file bytes; the store must still carry
	// them so submission uploads real content.
	assert.Equal(t, []byte("pdf"), got.Draft.Documents[0].Content)
}

func TestSessionAPIShapeStillHidesAttachmentBytes(t *testing.T) {
	session := createWizardSession("sess-2")

	data, err := json.Marshal(session)
	require.NoError(t, err)

	var echoed models.AidSession
	require.NoError(t, json.Unmarshal(data, &echoed))
	require.Len(t, echoed.Draft.Documents, 1)
	assert.Nil(t, echoed.Draft.Documents[0].Content)
}

func TestGetUnknownSessionFails(t *testing.T) {
	store, _ := createTestSessionStore(t)

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or expired")
}

func TestGetExpiredSessionFails(t *testing.T) {
	store, mr := createTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, createWizardSession("sess-3")))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "sess-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or expired")
}
