package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/facility"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FacilityHandler serves the facility catalogue endpoints.
type FacilityHandler struct {
	Service facility.FacilityService
}

// ListFacilitiesHandler handles GET /facilities with filter and pagination
// query parameters.
func (h *FacilityHandler) ListFacilitiesHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter models.FacilityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return
	}
	params := BindListParams(c, "category", "location", "minPrice", "maxPrice", "q")

	result, err := h.Service.List(filter, params)
	if err != nil {
		logger.Error("Failed to list facilities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetFacilityHandler handles GET /facilities/:id.
func (h *FacilityHandler) GetFacilityHandler(c *gin.Context) {
	id := c.Param("id")
	fac, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fac)
}

// CreateFacilityHandler handles POST /admin/facilities.
func (h *FacilityHandler) CreateFacilityHandler(c *gin.Context) {
	logger := getLogger(c)

	var fac models.Facility
	if err := c.ShouldBindJSON(&fac); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.Create(&fac)
	if err != nil {
		logger.Error("Failed to create facility", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateFacilityHandler handles PUT /admin/facilities/:id.
func (h *FacilityHandler) UpdateFacilityHandler(c *gin.Context) {
	logger := getLogger(c)

	var fac models.Facility
	if err := c.ShouldBindJSON(&fac); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	fac.ID = c.Param("id")
	updated, err := h.Service.Update(&fac)
	if err != nil {
		logger.Error("Failed to update facility", zap.String("id", fac.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFacilityHandler handles DELETE /admin/facilities/:id.
func (h *FacilityHandler) DeleteFacilityHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted"})
}
