// File: services/aid/admin.go
package aid

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// documentURLTTL bounds how long a signed document link stays valid.
const documentURLTTL = 15 * time.Minute

// GetApplication returns a persisted application for admin review.
func (s *DefaultAidService) GetApplication(id string) (*models.AidApplication, error) {
	return s.Repo.GetByID(id)
}

// ListApplications returns one admin page of applications.
func (s *DefaultAidService) ListApplications(filter models.AidApplicationFilter, params models.ListParams) (models.PagedResult[models.AidApplication], error) {
	apps, total, err := s.Repo.List(filter, params)
	if err != nil {
		return models.PagedResult[models.AidApplication]{}, err
	}
	return models.NewPagedResult(apps, params, total), nil
}

// UpdateApplicationStatus moves an application through review.
func (s *DefaultAidService) UpdateApplicationStatus(id, status string) error {
	switch status {
	case models.AidStatusSubmitted, models.AidStatusInReview, models.AidStatusApproved, models.AidStatusRejected:
	default:
		return fmt.Errorf("invalid application status %q", status)
	}
	return s.Repo.UpdateStatus(id, status)
}

// DocumentURL returns a signed, short-lived download link for one of an
// application's supporting documents.
func (s *DefaultAidService) DocumentURL(id string, index int) (string, error) {
	app, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(app.Documents) {
		return "", fmt.Errorf("document index %d out of range", index)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Storage.GetSecureDownloadURL(ctx, "raw", app.Documents[index].PublicID, documentURLTTL)
}

// DeleteApplication removes an application and its stored documents. A
// document that fails to delete is logged and skipped so the record itself
// still goes away.
func (s *DefaultAidService) DeleteApplication(id string) error {
	app, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, doc := range app.Documents {
		if doc.PublicID == "" {
			continue
		}
		if err := s.Storage.DeleteFile(ctx, doc.PublicID); err != nil {
			utils.GetLogger().Warn("failed to delete stored document",
				zap.String("applicationID", id), zap.String("publicID", doc.PublicID), zap.Error(err))
		}
	}
	return s.Repo.Delete(id)
}

func (s *DefaultAidService) uploadDocument(ctx context.Context, doc models.AidAttachment) (string, error) {
	return s.Storage.UploadStream(ctx, bytes.NewReader(doc.Content), doc.FileName, documentFolder)
}

func (s *DefaultAidService) logWarn(msg, sessionID string, err error) {
	utils.GetLogger().Warn(msg, zap.String("sessionID", sessionID), zap.Error(err))
}
