package facility

import (
	"fmt"
	"strings"

	facilityRepo "courtside/database/repository/facility"
	"courtside/models"

	"github.com/google/uuid"
)

// FacilityService defines facility catalogue operations.
type FacilityService interface {
	List(filter models.FacilityFilter, params models.ListParams) (models.PagedResult[models.Facility], error)
	GetByID(id string) (*models.Facility, error)
	Create(facility *models.Facility) (*models.Facility, error)
	Update(facility *models.Facility) (*models.Facility, error)
	Delete(id string) error
}

// DefaultFacilityService is the production implementation.
type DefaultFacilityService struct {
	Repo facilityRepo.FacilityRepository
}

// List returns one page of facilities matching the filter.
func (s *DefaultFacilityService) List(filter models.FacilityFilter, params models.ListParams) (models.PagedResult[models.Facility], error) {
	facilities, total, err := s.Repo.List(filter, params)
	if err != nil {
		return models.PagedResult[models.Facility]{}, err
	}
	return models.NewPagedResult(facilities, params, total), nil
}

// GetByID returns a single facility.
func (s *DefaultFacilityService) GetByID(id string) (*models.Facility, error) {
	return s.Repo.GetByID(id)
}

// Create validates and inserts a new facility.
func (s *DefaultFacilityService) Create(facility *models.Facility) (*models.Facility, error) {
	if err := validateFacility(facility); err != nil {
		return nil, err
	}
	facility.ID = uuid.New().String()
	facility.Active = true
	if err := s.Repo.Create(facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// Update validates and persists facility changes.
func (s *DefaultFacilityService) Update(facility *models.Facility) (*models.Facility, error) {
	if err := validateFacility(facility); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// Delete removes a facility from the catalogue.
func (s *DefaultFacilityService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func validateFacility(f *models.Facility) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("facility name is required")
	}
	if f.PricePerHour < 0 {
		return fmt.Errorf("price per hour cannot be negative")
	}
	if f.Capacity <= 0 {
		return fmt.Errorf("facility capacity must be at least 1")
	}
	if f.OpenMinute < 0 || f.CloseMinute > 24*60 || f.CloseMinute <= f.OpenMinute {
		return fmt.Errorf("invalid opening hours")
	}
	return nil
}
