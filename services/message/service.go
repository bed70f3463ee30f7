package message

import (
	"fmt"
	"strings"

	messageRepo "telemed/database/repository/message"
	userRepo "telemed/database/repository/user"
	"telemed/models"
	"telemed/utils"

	"go.uber.org/zap"
)

// MessageService owns direct messaging between patients and doctors.
type MessageService interface {
	// Send delivers a message from sender to the request's receiver.
	Send(senderID string, req models.SendMessageRequest) (*models.Message, error)
	// Conversation returns the two-party thread, oldest first, and marks
	// messages addressed to the caller as read.
	Conversation(callerID, otherID string) ([]models.Message, error)
	// UnreadCount counts unread messages addressed to the user.
	UnreadCount(userID string) (int64, error)
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo  messageRepo.MessageRepository
	Users userRepo.UserRepository
}

// Send delivers a message from sender to the request's receiver.
func (s *DefaultMessageService) Send(senderID string, req models.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if req.Receiver == senderID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}
	if _, err := s.Users.GetByID(req.Receiver); err != nil {
		return nil, fmt.Errorf("recipient not found")
	}

	msg := &models.Message{
		Sender:   senderID,
		Receiver: req.Receiver,
		Content:  content,
	}
	if err := s.Repo.Create(msg); err != nil {
		utils.GetLogger().Error("Send: failed to persist message", zap.Error(err))
		return nil, fmt.Errorf("failed to send message")
	}
	return msg, nil
}

// Conversation returns the two-party thread, oldest first. Fetching marks
// the other party's messages to the caller as read.
func (s *DefaultMessageService) Conversation(callerID, otherID string) ([]models.Message, error) {
	messages, err := s.Repo.GetConversation(callerID, otherID)
	if err != nil {
		utils.GetLogger().Error("Conversation: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("could not fetch conversation")
	}

	if err := s.Repo.MarkRead(otherID, callerID); err != nil {
		utils.GetLogger().Warn("Conversation: mark read failed", zap.Error(err))
	}
	return messages, nil
}

// UnreadCount counts unread messages addressed to the user.
func (s *DefaultMessageService) UnreadCount(userID string) (int64, error) {
	count, err := s.Repo.CountUnread(userID)
	if err != nil {
		utils.GetLogger().Error("UnreadCount: count failed", zap.Error(err))
		return 0, fmt.Errorf("could not count unread messages")
	}
	return count, nil
}
