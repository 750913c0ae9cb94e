package trainer

import (
	"fmt"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTrainerRepo keeps trainers and applications in memory.
type fakeTrainerRepo struct {
	trainers     map[string]*models.Trainer
	applications map[string]*models.TrainerApplication
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{
		trainers:     map[string]*models.Trainer{},
		applications: map[string]*models.TrainerApplication{},
	}
}

func (r *fakeTrainerRepo) Create(trainer *models.Trainer) error {
	r.trainers[trainer.ID] = trainer
	return nil
}

func (r *fakeTrainerRepo) Update(trainer *models.Trainer) error {
	r.trainers[trainer.ID] = trainer
	return nil
}

func (r *fakeTrainerRepo) Delete(id string) error {
	delete(r.trainers, id)
	return nil
}

func (r *fakeTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	if tr, ok := r.trainers[id]; ok {
		return tr, nil
	}
	return nil, fmt.Errorf("trainer with id %s not found", id)
}

func (r *fakeTrainerRepo) List(filter models.TrainerFilter, params models.ListParams) ([]models.Trainer, int64, error) {
	return nil, 0, nil
}

func (r *fakeTrainerRepo) Count() (int64, error) { return int64(len(r.trainers)), nil }

func (r *fakeTrainerRepo) CreateApplication(app *models.TrainerApplication) error {
	r.applications[app.ID] = app
	return nil
}

func (r *fakeTrainerRepo) GetApplicationByID(id string) (*models.TrainerApplication, error) {
	if app, ok := r.applications[id]; ok {
		return app, nil
	}
	return nil, fmt.Errorf("application with id %s not found", id)
}

func (r *fakeTrainerRepo) ListApplications(status string, params models.ListParams) ([]models.TrainerApplication, int64, error) {
	return nil, 0, nil
}

func (r *fakeTrainerRepo) UpdateApplicationStatus(id, status string) error {
	app, ok := r.applications[id]
	if !ok {
		return fmt.Errorf("application with id %s not found", id)
	}
	app.Status = status
	return nil
}

func createValidApplication() ApplicationRequest {
	return ApplicationRequest{
		FullName:   "Coach Otieno",
		Email:      "otieno@example.com",
		Phone:      "+254700111222",
		Specialty:  "tennis",
		Experience: "Ten seasons coaching juniors.",
	}
}

func TestApplyCreatesSubmittedApplication(t *testing.T) {
	repo := newFakeTrainerRepo()
	svc := &DefaultTrainerService{Repo: repo}

	app, err := svc.Apply(createValidApplication())
	require.NoError(t, err)
	assert.Equal(t, "submitted", app.Status)
	assert.NotEmpty(t, app.ID)
	assert.Len(t, repo.applications, 1)
}

func TestApplyRejectsInvalidEmail(t *testing.T) {
	svc := &DefaultTrainerService{Repo: newFakeTrainerRepo()}

	req := createValidApplication()
	req.Email = "not-an-email"
	_, err := svc.Apply(req)
	assert.ErrorContains(t, err, "email is not valid")
}

func TestReviewApplicationApprovalCreatesTrainer(t *testing.T) {
	repo := newFakeTrainerRepo()
	svc := &DefaultTrainerService{Repo: repo}

	app, err := svc.Apply(createValidApplication())
	require.NoError(t, err)

	require.NoError(t, svc.ReviewApplication(app.ID, "approved"))
	assert.Equal(t, "approved", repo.applications[app.ID].Status)
	require.Len(t, repo.trainers, 1)
	for _, tr := range repo.trainers {
		assert.Equal(t, "Coach Otieno", tr.FullName)
		assert.Equal(t, "tennis", tr.Specialty)
		assert.True(t, tr.Active)
	}
}

func TestReviewApplicationRejectionCreatesNoTrainer(t *testing.T) {
	repo := newFakeTrainerRepo()
	svc := &DefaultTrainerService{Repo: repo}

	app, err := svc.Apply(createValidApplication())
	require.NoError(t, err)

	require.NoError(t, svc.ReviewApplication(app.ID, "rejected"))
	assert.Empty(t, repo.trainers)
}

func TestReviewApplicationRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultTrainerService{Repo: newFakeTrainerRepo()}
	err := svc.ReviewApplication("any", "stalled")
	assert.ErrorContains(t, err, "invalid application status")
}
