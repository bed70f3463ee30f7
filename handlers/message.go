package handlers

import (
	"net/http"

	"telemed/models"
	messageService "telemed/services/message"
	"telemed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler serves patient/doctor direct messaging.
type MessageHandler struct {
	Messages messageService.MessageService
}

// SendHandler handles POST /api/messages.
func (h *MessageHandler) SendHandler(c *gin.Context) {
	logger := utils.GetLogger()

	senderID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.Messages.Send(senderID, req)
	if err != nil {
		logger.Error("Message send failed", zap.String("sender", senderID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ConversationHandler handles GET /api/messages/:userId and returns the
// thread between the caller and that user, oldest first.
func (h *MessageHandler) ConversationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	callerID, _, ok := callerIdentity(c)
	if !ok {
		return
	}
	otherID := c.Param("userId")

	messages, err := h.Messages.Conversation(callerID, otherID)
	if err != nil {
		logger.Error("Conversation fetch failed", zap.String("caller", callerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// UnreadCountHandler handles GET /api/messages/unread/count.
func (h *MessageHandler) UnreadCountHandler(c *gin.Context) {
	logger := utils.GetLogger()

	callerID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	count, err := h.Messages.UnreadCount(callerID)
	if err != nil {
		logger.Error("Unread count failed", zap.String("caller", callerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
