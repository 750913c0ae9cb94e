package trainerRepo

import "courtside/models"

// TrainerRepository defines persistence operations for trainers and
// trainer applications.
type TrainerRepository interface {
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	Delete(id string) error
	GetByID(id string) (*models.Trainer, error)
	List(filter models.TrainerFilter, params models.ListParams) ([]models.Trainer, int64, error)
	Count() (int64, error)

	CreateApplication(app *models.TrainerApplication) error
	GetApplicationByID(id string) (*models.TrainerApplication, error)
	ListApplications(status string, params models.ListParams) ([]models.TrainerApplication, int64, error)
	UpdateApplicationStatus(id, status string) error
}
