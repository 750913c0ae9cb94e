// File: services/aid/steps.go
package aid

import (
	"context"
	"fmt"
	"time"

	"courtside/models"

	"github.com/google/uuid"
)

// StartSession creates an empty draft at step 1.
func (s *DefaultAidService) StartSession(userID string) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	session := &models.AidSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      FirstStep,
		Draft:     models.AidDraft{Documents: []models.AidAttachment{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start application session: %w", err)
	}
	return session, nil
}

// GetSession retrieves the current wizard state.
func (s *DefaultAidService) GetSession(sessionID string) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Sessions.Get(ctx, sessionID)
}

// UpdateDraft applies a partial field-by-field mutation to the draft
// without moving the step.
func (s *DefaultAidService) UpdateDraft(sessionID string, update DraftUpdate) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, fmt.Errorf("application has already been submitted")
	}

	if update.PersonalInfo != nil {
		session.Draft.PersonalInfo = *update.PersonalInfo
	}
	if update.SportsInfo != nil {
		session.Draft.SportsInfo = *update.SportsInfo
	}
	if update.FinancialInfo != nil {
		session.Draft.FinancialInfo = *update.FinancialInfo
	}
	if update.ReferenceInfo != nil {
		session.Draft.ReferenceInfo = *update.ReferenceInfo
	}
	if update.SupportingText != nil {
		session.Draft.SupportingText = *update.SupportingText
	}
	if update.TermsAccepted != nil {
		session.Draft.TermsAccepted = *update.TermsAccepted
	}
	session.UpdatedAt = time.Now()

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return session, nil
}

// Next validates the current step and advances when the gate is clear. The
// returned error map is non-empty when advancement was blocked; the step is
// left unchanged in that case.
func (s *DefaultAidService) Next(sessionID string) (*models.AidSession, map[string]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Submitted {
		return nil, nil, fmt.Errorf("application has already been submitted")
	}

	if errs := ValidateStep(session.Step, session.Draft); len(errs) > 0 {
		return session, errs, nil
	}
	if session.Step < LastStep {
		session.Step++
		session.UpdatedAt = time.Now()
		if err := s.Sessions.Set(ctx, session); err != nil {
			return nil, nil, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return session, nil, nil
}

// Back moves one step backwards. Always allowed, never re-validates.
func (s *DefaultAidService) Back(sessionID string) (*models.AidSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > FirstStep {
		session.Step--
		session.UpdatedAt = time.Now()
		if err := s.Sessions.Set(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return session, nil
}
