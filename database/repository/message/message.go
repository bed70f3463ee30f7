package messageRepo

import "telemed/models"

// MessageRepository defines data access for direct messages.
type MessageRepository interface {
	// Create inserts a new message.
	Create(msg *models.Message) error
	// GetConversation retrieves the two-party conversation, oldest first.
	GetConversation(userA, userB string) ([]models.Message, error)
	// MarkRead flags all messages from sender to receiver as read.
	MarkRead(sender, receiver string) error
	// CountUnread counts unread messages addressed to the user.
	CountUnread(receiver string) (int64, error)
}
