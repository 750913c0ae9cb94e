package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves testimonial and category endpoints.
type ContentHandler struct {
	Service content.ContentService
}

// SubmitTestimonialHandler handles POST /testimonials.
func (h *ContentHandler) SubmitTestimonialHandler(c *gin.Context) {
	logger := getLogger(c)

	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.SubmitTestimonial(&t)
	if err != nil {
		logger.Warn("Testimonial rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTestimonialsHandler handles GET /testimonials (approved only).
func (h *ContentHandler) ListTestimonialsHandler(c *gin.Context) {
	params := BindListParams(c)
	result, err := h.Service.ListTestimonials(false, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAllTestimonialsHandler handles GET /admin/testimonials, including
// ones still awaiting approval.
func (h *ContentHandler) ListAllTestimonialsHandler(c *gin.Context) {
	params := BindListParams(c)
	result, err := h.Service.ListTestimonials(true, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApproveTestimonialHandler handles PUT /admin/testimonials/:id/approve.
func (h *ContentHandler) ApproveTestimonialHandler(c *gin.Context) {
	if err := h.Service.ApproveTestimonial(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial approved"})
}

// DeleteTestimonialHandler handles DELETE /admin/testimonials/:id.
func (h *ContentHandler) DeleteTestimonialHandler(c *gin.Context) {
	if err := h.Service.DeleteTestimonial(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// ListCategoriesHandler handles GET /categories.
func (h *ContentHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategoryHandler handles POST /admin/categories.
func (h *ContentHandler) CreateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreateCategory(&cat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCategoryHandler handles PUT /admin/categories/:id.
func (h *ContentHandler) UpdateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cat.ID = c.Param("id")
	updated, err := h.Service.UpdateCategory(&cat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCategoryHandler handles DELETE /admin/categories/:id.
func (h *ContentHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Service.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
