package contentRepo

import "courtside/models"

// ContentRepository defines persistence operations for testimonials and
// categories.
type ContentRepository interface {
	CreateTestimonial(t *models.Testimonial) error
	ListTestimonials(approvedOnly bool, params models.ListParams) ([]models.Testimonial, int64, error)
	ApproveTestimonial(id string) error
	DeleteTestimonial(id string) error

	CreateCategory(c *models.Category) error
	UpdateCategory(c *models.Category) error
	DeleteCategory(id string) error
	ListCategories() ([]models.Category, error)
}
