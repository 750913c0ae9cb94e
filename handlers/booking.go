package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking endpoints. All of them require an
// authenticated user set in the context by JWTAuthMiddleware.
type BookingHandler struct {
	Service booking.BookingService
}

func contextUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return idStr, true
}

// CreateBookingHandler handles POST /bookings. The created booking is
// returned with its confirmation deadline and countdown.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.UserID = userID

	resp, err := h.Service.Create(req)
	if err != nil {
		logger.Error("Failed to create booking", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetBookingHandler handles GET /bookings/:id. The countdown is
// recomputed on every fetch so pollers see it tick down.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	resp, err := h.Service.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBookingHandler handles POST /bookings/:id/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	booked, err := h.Service.Confirm(id, userID)
	if err != nil {
		logger.Warn("Failed to confirm booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booked)
}

// CancelBookingHandler handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	if err := h.Service.Cancel(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ListMyBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	params := BindListParams(c)
	result, err := h.Service.ListByUser(userID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAllBookingsHandler handles GET /admin/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return
	}
	params := BindListParams(c, "status", "facility", "user", "from", "to")
	result, err := h.Service.List(filter, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, result)
}
