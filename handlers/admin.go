package handlers

import (
	"net/http"

	"courtside/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the dashboard endpoint.
type AdminHandler struct {
	Service admin.AdminService
}

// DashboardHandler handles GET /admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Service.DashboardStats()
	if err != nil {
		logger.Error("Failed to build dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
