package content

import (
	"fmt"
	"strings"

	contentRepo "courtside/database/repository/content"
	"courtside/models"

	"github.com/google/uuid"
)

// ContentService defines testimonial and category operations.
type ContentService interface {
	SubmitTestimonial(t *models.Testimonial) (*models.Testimonial, error)
	ListTestimonials(includeUnapproved bool, params models.ListParams) (models.PagedResult[models.Testimonial], error)
	ApproveTestimonial(id string) error
	DeleteTestimonial(id string) error

	ListCategories() ([]models.Category, error)
	CreateCategory(c *models.Category) (*models.Category, error)
	UpdateCategory(c *models.Category) (*models.Category, error)
	DeleteCategory(id string) error
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

// SubmitTestimonial records a visitor's testimonial pending approval.
func (s *DefaultContentService) SubmitTestimonial(t *models.Testimonial) (*models.Testimonial, error) {
	if strings.TrimSpace(t.AuthorName) == "" || strings.TrimSpace(t.Quote) == "" {
		return nil, fmt.Errorf("author name and quote are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	t.ID = uuid.New().String()
	if err := s.Repo.CreateTestimonial(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTestimonials returns one page of testimonials. Public callers see
// approved ones only.
func (s *DefaultContentService) ListTestimonials(includeUnapproved bool, params models.ListParams) (models.PagedResult[models.Testimonial], error) {
	items, total, err := s.Repo.ListTestimonials(!includeUnapproved, params)
	if err != nil {
		return models.PagedResult[models.Testimonial]{}, err
	}
	return models.NewPagedResult(items, params, total), nil
}

// ApproveTestimonial marks a testimonial for public display.
func (s *DefaultContentService) ApproveTestimonial(id string) error {
	return s.Repo.ApproveTestimonial(id)
}

// DeleteTestimonial removes a testimonial.
func (s *DefaultContentService) DeleteTestimonial(id string) error {
	return s.Repo.DeleteTestimonial(id)
}

// ListCategories returns all categories.
func (s *DefaultContentService) ListCategories() ([]models.Category, error) {
	return s.Repo.ListCategories()
}

// CreateCategory inserts a new category, deriving the slug from its name.
func (s *DefaultContentService) CreateCategory(c *models.Category) (*models.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("category name is required")
	}
	c.ID = uuid.New().String()
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory persists category changes.
func (s *DefaultContentService) UpdateCategory(c *models.Category) (*models.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if err := s.Repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category.
func (s *DefaultContentService) DeleteCategory(id string) error {
	return s.Repo.DeleteCategory(id)
}

// Slugify lowercases a name and joins its words with hyphens.
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}
