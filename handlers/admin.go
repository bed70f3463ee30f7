package handlers

import (
	"net/http"

	adminService "telemed/services/admin"
	userService "telemed/services/user"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	Admin adminService.AdminService
	Users userService.UserService
}

// StatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	stats, err := h.Admin.GetStats()
	if err != nil {
		logger.Error("Stats aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	users, err := h.Users.GetAllUsers()
	if err != nil {
		logger.Error("User listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserStatusHandler handles PUT /api/admin/users/:id/status. It expects a
// JSON payload with a "status" of active or inactive.
func (h *AdminHandler) SetUserStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Users.SetStatus(userID, req.Status)
	if err != nil {
		logger.Error("Status change failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}
