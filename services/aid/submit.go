// File: services/aid/submit.go
package aid

import (
	"context"
	"fmt"
	"time"

	"courtside/models"

	"github.com/google/uuid"
)

const documentFolder = "aid-documents"

// Submit finalizes the wizard session: the terms gate and every step gate
// must pass, then documents are uploaded and the application persisted. On
// failure neither the draft nor the step is touched.
func (s *DefaultAidService) Submit(sessionID string) (*models.AidApplication, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, fmt.Errorf("application has already been submitted")
	}

	app, err := s.persistDraft(ctx, session.UserID, session.Draft)
	if err != nil {
		return nil, err
	}

	// The draft is discarded after a success response; a failed delete is
	// tolerable since the TTL reaps it anyway.
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.logWarn("failed to delete submitted session", sessionID, err)
	}
	return app, nil
}

// SubmitDirect persists a draft that arrived fully assembled in a single
// multipart request.
func (s *DefaultAidService) SubmitDirect(userID string, draft models.AidDraft) (*models.AidApplication, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.persistDraft(ctx, userID, draft)
}

func (s *DefaultAidService) persistDraft(ctx context.Context, userID string, draft models.AidDraft) (*models.AidApplication, error) {
	// The terms gate is checked before any side effect.
	if !draft.TermsAccepted {
		return nil, fmt.Errorf("you must accept the terms to submit")
	}
	if errs := ValidateAll(draft); len(errs) > 0 {
		return nil, fmt.Errorf("application is incomplete: %s", firstError(errs))
	}

	docs := make([]models.AidAttachment, len(draft.Documents))
	copy(docs, draft.Documents)
	for i := range docs {
		publicID, err := s.uploadDocument(ctx, docs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to upload document %s: %w", docs[i].FileName, err)
		}
		docs[i].PublicID = publicID
		docs[i].Content = nil
	}

	app := &models.AidApplication{
		ID:             uuid.New().String(),
		UserID:         userID,
		PersonalInfo:   draft.PersonalInfo,
		SportsInfo:     draft.SportsInfo,
		FinancialInfo:  draft.FinancialInfo,
		ReferenceInfo:  draft.ReferenceInfo,
		Documents:      docs,
		SupportingText: draft.SupportingText,
		Status:         models.AidStatusSubmitted,
	}
	if err := s.Repo.Create(app); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	return app, nil
}

func firstError(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return ""
}
