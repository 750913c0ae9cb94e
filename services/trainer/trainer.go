package trainer

import (
	"fmt"
	"regexp"
	"strings"

	trainerRepo "courtside/database/repository/trainer"
	"courtside/models"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ApplicationRequest is a coach's request to join the platform.
type ApplicationRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Specialty  string `json:"specialty" binding:"required"`
	Experience string `json:"experience"`
}

// TrainerService defines trainer catalogue and application operations.
type TrainerService interface {
	List(filter models.TrainerFilter, params models.ListParams) (models.PagedResult[models.Trainer], error)
	GetByID(id string) (*models.Trainer, error)
	Create(trainer *models.Trainer) (*models.Trainer, error)
	Update(trainer *models.Trainer) (*models.Trainer, error)
	Delete(id string) error

	Apply(req ApplicationRequest) (*models.TrainerApplication, error)
	ListApplications(status string, params models.ListParams) (models.PagedResult[models.TrainerApplication], error)
	ReviewApplication(id, status string) error
}

// DefaultTrainerService is the production implementation.
type DefaultTrainerService struct {
	Repo trainerRepo.TrainerRepository
}

// List returns one page of trainers matching the filter.
func (s *DefaultTrainerService) List(filter models.TrainerFilter, params models.ListParams) (models.PagedResult[models.Trainer], error) {
	trainers, total, err := s.Repo.List(filter, params)
	if err != nil {
		return models.PagedResult[models.Trainer]{}, err
	}
	return models.NewPagedResult(trainers, params, total), nil
}

// GetByID returns a single trainer.
func (s *DefaultTrainerService) GetByID(id string) (*models.Trainer, error) {
	return s.Repo.GetByID(id)
}

// Create inserts a new trainer.
func (s *DefaultTrainerService) Create(trainer *models.Trainer) (*models.Trainer, error) {
	if strings.TrimSpace(trainer.FullName) == "" {
		return nil, fmt.Errorf("trainer name is required")
	}
	trainer.ID = uuid.New().String()
	trainer.Active = true
	if err := s.Repo.Create(trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Update persists trainer changes.
func (s *DefaultTrainerService) Update(trainer *models.Trainer) (*models.Trainer, error) {
	if strings.TrimSpace(trainer.FullName) == "" {
		return nil, fmt.Errorf("trainer name is required")
	}
	if err := s.Repo.Update(trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// Delete removes a trainer.
func (s *DefaultTrainerService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// Apply records a new trainer application in submitted status.
func (s *DefaultTrainerService) Apply(req ApplicationRequest) (*models.TrainerApplication, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, fmt.Errorf("email is not valid")
	}
	app := &models.TrainerApplication{
		ID:         uuid.New().String(),
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Status:     "submitted",
	}
	if err := s.Repo.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications returns one admin page of trainer applications.
func (s *DefaultTrainerService) ListApplications(status string, params models.ListParams) (models.PagedResult[models.TrainerApplication], error) {
	apps, total, err := s.Repo.ListApplications(status, params)
	if err != nil {
		return models.PagedResult[models.TrainerApplication]{}, err
	}
	return models.NewPagedResult(apps, params, total), nil
}

// ReviewApplication approves or rejects a trainer application. Approval
// also creates the trainer record.
func (s *DefaultTrainerService) ReviewApplication(id, status string) error {
	if status != "approved" && status != "rejected" {
		return fmt.Errorf("invalid application status %q", status)
	}
	app, err := s.Repo.GetApplicationByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateApplicationStatus(id, status); err != nil {
		return err
	}
	if status == "approved" {
		trainer := &models.Trainer{
			ID:        uuid.New().String(),
			FullName:  app.FullName,
			Specialty: app.Specialty,
			Bio:       app.Experience,
			Active:    true,
		}
		if err := s.Repo.Create(trainer); err != nil {
			return fmt.Errorf("application approved but trainer creation failed: %w", err)
		}
	}
	return nil
}
