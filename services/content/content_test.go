package content

import (
	"fmt"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContentRepo keeps testimonials and categories in memory.
type fakeContentRepo struct {
	testimonials map[string]*models.Testimonial
	categories   map[string]*models.Category
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		testimonials: map[string]*models.Testimonial{},
		categories:   map[string]*models.Category{},
	}
}

func (r *fakeContentRepo) CreateTestimonial(t *models.Testimonial) error {
	t.Approved = false
	r.testimonials[t.ID] = t
	return nil
}

func (r *fakeContentRepo) ListTestimonials(approvedOnly bool, params models.ListParams) ([]models.Testimonial, int64, error) {
	var out []models.Testimonial
	for _, t := range r.testimonials {
		if approvedOnly && !t.Approved {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContentRepo) ApproveTestimonial(id string) error {
	t, ok := r.testimonials[id]
	if !ok {
		return fmt.Errorf("testimonial with id %s not found", id)
	}
	t.Approved = true
	return nil
}

func (r *fakeContentRepo) DeleteTestimonial(id string) error {
	delete(r.testimonials, id)
	return nil
}

func (r *fakeContentRepo) CreateCategory(c *models.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeContentRepo) UpdateCategory(c *models.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeContentRepo) DeleteCategory(id string) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeContentRepo) ListCategories() ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func createValidTestimonial() *models.Testimonial {
	return &models.Testimonial{
		AuthorName: "Brian K.",
		Quote:      "Booked a court in two minutes, great facilities.",
		Rating:     5,
	}
}

func TestSubmitTestimonialStartsUnapproved(t *testing.T) {
	repo := newFakeContentRepo()
	svc := &DefaultContentService{Repo: repo}

	created, err := svc.SubmitTestimonial(createValidTestimonial())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Approved)

	// Public listing hides it until approval.
	page, err := svc.ListTestimonials(false, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	require.NoError(t, svc.ApproveTestimonial(created.ID))
	page, err = svc.ListTestimonials(false, models.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestSubmitTestimonialRejectsBadInput(t *testing.T) {
	svc := &DefaultContentService{Repo: newFakeContentRepo()}

	bad := createValidTestimonial()
	bad.Quote = "  "
	_, err := svc.SubmitTestimonial(bad)
	assert.Error(t, err)

	bad = createValidTestimonial()
	bad.Rating = 6
	_, err = svc.SubmitTestimonial(bad)
	assert.ErrorContains(t, err, "rating")
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc := &DefaultContentService{Repo: newFakeContentRepo()}

	created, err := svc.CreateCategory(&models.Category{Name: "Indoor  Courts"})
	require.NoError(t, err)
	assert.Equal(t, "indoor-courts", created.Slug)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "olympic-pools", Slugify("  Olympic Pools "))
	assert.Equal(t, "gyms", Slugify("Gyms"))
	assert.Equal(t, "", Slugify("   "))
}
