package handlers

import (
	"net/http"

	"telemed/models"
	userService "telemed/services/user"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile and doctor directory endpoints.
type UserHandler struct {
	UserService userService.UserService
}

// MeHandler handles GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.UserService.UpdateProfile(userID, req)
	if err != nil {
		logger.Error("Profile update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetDoctorsHandler handles GET /api/users/doctors. Public.
func (h *UserHandler) GetDoctorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctors, err := h.UserService.GetDoctors()
	if err != nil {
		logger.Error("Doctor listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
