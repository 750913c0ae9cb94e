package aid

import (
	"courtside/database/repository/aid"
	"courtside/models"
	"courtside/services/storage"
)

// FirstStep and LastStep bound the linear wizard.
const (
	FirstStep = 1
	LastStep  = 6
)

// DraftUpdate carries a partial, field-by-field mutation of the draft.
// Nil sections are left untouched.
type DraftUpdate struct {
	PersonalInfo   *models.AidPersonalInfo  `json:"personalInfo,omitempty"`
	SportsInfo     *models.AidSportsInfo    `json:"sportsInfo,omitempty"`
	FinancialInfo  *models.AidFinancialInfo `json:"financialInfo,omitempty"`
	ReferenceInfo  *models.AidReferenceInfo `json:"referenceInfo,omitempty"`
	SupportingText *string                  `json:"supportingText,omitempty"`
	TermsAccepted  *bool                    `json:"termsAccepted,omitempty"`
}

// AidService drives the six-step financial aid application wizard.
type AidService interface {
	StartSession(userID string) (*models.AidSession, error)
	GetSession(sessionID string) (*models.AidSession, error)
	UpdateDraft(sessionID string, update DraftUpdate) (*models.AidSession, error)
	Next(sessionID string) (*models.AidSession, map[string]string, error)
	Back(sessionID string) (*models.AidSession, error)
	AddDocuments(sessionID string, docs []models.AidAttachment) (*models.AidSession, error)
	RemoveDocument(sessionID string, index int) (*models.AidSession, error)
	Submit(sessionID string) (*models.AidApplication, error)

	// SubmitDirect persists a fully-assembled draft arriving as one multipart
	// request, bypassing the server-held session.
	SubmitDirect(userID string, draft models.AidDraft) (*models.AidApplication, error)

	// Admin review operations.
	GetApplication(id string) (*models.AidApplication, error)
	ListApplications(filter models.AidApplicationFilter, params models.ListParams) (models.PagedResult[models.AidApplication], error)
	UpdateApplicationStatus(id, status string) error
	DocumentURL(id string, index int) (string, error)
	DeleteApplication(id string) error
}

// DefaultAidService is the production implementation.
type DefaultAidService struct {
	Repo     aidRepo.AidRepository
	Sessions *SessionStore
	Storage  storage.StorageService
}
