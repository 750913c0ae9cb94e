package handlers

import (
	"net/http"

	"courtside/services/donation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DonationHandler serves the donation endpoints.
type DonationHandler struct {
	Service donation.DonationService
}

// CreateDonationHandler handles POST /donations. The response carries
// the Stripe client secret the frontend needs to complete payment.
func (h *DonationHandler) CreateDonationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req donation.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if id, ok := c.Get("userID"); ok {
		if idStr, isStr := id.(string); isStr {
			req.UserID = idStr
		}
	}

	result, err := h.Service.Create(req)
	if err != nil {
		logger.Error("Failed to create donation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CompleteDonationHandler handles POST /donations/:id/complete, called
// after the frontend confirms the payment intent.
func (h *DonationHandler) CompleteDonationHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	d, err := h.Service.MarkSucceeded(id)
	if err != nil {
		logger.Error("Failed to complete donation", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListDonationsHandler handles GET /admin/donations.
func (h *DonationHandler) ListDonationsHandler(c *gin.Context) {
	params := BindListParams(c, "status")
	result, err := h.Service.List(c.Query("status"), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list donations"})
		return
	}
	c.JSON(http.StatusOK, result)
}
