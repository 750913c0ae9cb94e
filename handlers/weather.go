package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/weather"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WeatherHandler serves the weather assistant endpoints.
type WeatherHandler struct {
	Service weather.AssistantService
}

// AskWeatherHandler handles POST /weather/ask.
func (h *WeatherHandler) AskWeatherHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.UserID = userID

	resp, err := h.Service.Ask(req)
	if err != nil {
		logger.Error("Weather assistant failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeatherHistoryHandler handles GET /weather/history.
func (h *WeatherHandler) WeatherHistoryHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	messages, err := h.Service.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
