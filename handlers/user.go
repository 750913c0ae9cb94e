package handlers

import (
	"net/http"

	"courtside/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account and admin user-administration endpoints.
type UserHandler struct {
	Service user.UserService
}

// RegisterUserHandler handles POST /auth/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Service.Register(req)
	if err != nil {
		logger.Warn("Registration rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginUserHandler handles POST /auth/login.
func (h *UserHandler) LoginUserHandler(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Service.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMeHandler handles GET /auth/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	u, err := h.Service.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsersHandler handles GET /admin/users.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	params := BindListParams(c)
	result, err := h.Service.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetUserActiveHandler handles PUT /admin/users/:id/active.
func (h *UserHandler) SetUserActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.SetActive(c.Param("id"), *input.Active); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// DeleteUserHandler handles DELETE /admin/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
