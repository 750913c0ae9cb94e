package facilityRepo

import "courtside/models"

// FacilityRepository defines persistence operations for facilities.
type FacilityRepository interface {
	Create(facility *models.Facility) error
	Update(facility *models.Facility) error
	Delete(id string) error
	GetByID(id string) (*models.Facility, error)
	List(filter models.FacilityFilter, params models.ListParams) ([]models.Facility, int64, error)
	Count() (int64, error)
}
