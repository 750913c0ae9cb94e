// File: services/aid/attachments.go
package aid

import (
	"context"
	"fmt"
	"time"

	"courtside/models"
)

// AppendDocuments merges a new pick into the existing list, enforcing the
// cap. A pick that would overflow is silently truncated; files beyond the
// cap are dropped without error.
func AppendDocuments(existing, picked []models.AidAttachment) []models.AidAttachment {
	room := models.MaxAidDocuments - len(existing)
	if room <= 0 {
		return existing
	}
	if len(picked) > room {
		picked = picked[:room]
	}
	return append(existing, picked...)
}

// RemoveDocumentAt removes the entry at index, preserving the relative order
// of the rest.
func RemoveDocumentAt(docs []models.AidAttachment, index int) ([]models.AidAttachment, error) {
	if index < 0 || index >= len(docs) {
		return docs, fmt.Errorf("document index %d out of range", index)
	}
	out := make([]models.AidAttachment, 0, len(docs)-1)
	out = append(out, docs[:index]...)
	out = append(out, docs[index+1:]...)
	return out, nil
}

// AddDocuments appends picked files to the session draft.
func (s *DefaultAidService) AddDocuments(sessionID string, docs []models.AidAttachment) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, fmt.Errorf("application has already been submitted")
	}

	session.Draft.Documents = AppendDocuments(session.Draft.Documents, docs)
	session.UpdatedAt = time.Now()

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save documents: %w", err)
	}
	return session, nil
}

// RemoveDocument removes the attachment at the given index from the draft.
func (s *DefaultAidService) RemoveDocument(sessionID string, index int) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, fmt.Errorf("application has already been submitted")
	}

	docs, err := RemoveDocumentAt(session.Draft.Documents, index)
	if err != nil {
		return nil, err
	}
	session.Draft.Documents = docs
	session.UpdatedAt = time.Now()

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save documents: %w", err)
	}
	return session, nil
}
