package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/trainer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrainerHandler serves the trainer catalogue and application endpoints.
type TrainerHandler struct {
	Service trainer.TrainerService
}

// ListTrainersHandler handles GET /trainers.
func (h *TrainerHandler) ListTrainersHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter models.TrainerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return
	}
	params := BindListParams(c, "specialty", "facility", "q")

	result, err := h.Service.List(filter, params)
	if err != nil {
		logger.Error("Failed to list trainers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trainers"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTrainerHandler handles GET /trainers/:id.
func (h *TrainerHandler) GetTrainerHandler(c *gin.Context) {
	t, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// ApplyTrainerHandler handles POST /trainers/apply.
func (h *TrainerHandler) ApplyTrainerHandler(c *gin.Context) {
	logger := getLogger(c)

	var req trainer.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	app, err := h.Service.Apply(req)
	if err != nil {
		logger.Error("Failed to submit trainer application", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// CreateTrainerHandler handles POST /admin/trainers.
func (h *TrainerHandler) CreateTrainerHandler(c *gin.Context) {
	var t models.Trainer
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.Create(&t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTrainerHandler handles PUT /admin/trainers/:id.
func (h *TrainerHandler) UpdateTrainerHandler(c *gin.Context) {
	var t models.Trainer
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	t.ID = c.Param("id")
	updated, err := h.Service.Update(&t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTrainerHandler handles DELETE /admin/trainers/:id.
func (h *TrainerHandler) DeleteTrainerHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}

// ListTrainerApplicationsHandler handles GET /admin/trainer-applications.
func (h *TrainerHandler) ListTrainerApplicationsHandler(c *gin.Context) {
	params := BindListParams(c, "status")
	result, err := h.Service.ListApplications(c.Query("status"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReviewTrainerApplicationHandler handles PUT /admin/trainer-applications/:id.
func (h *TrainerHandler) ReviewTrainerApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id := c.Param("id")
	if err := h.Service.ReviewApplication(id, input.Status); err != nil {
		logger.Error("Failed to review application", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application reviewed"})
}
