// Package repo – store functions for conversations.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ListConversations returns all conversations in insertion order.
func ListConversations(ctx context.Context, db *gorm.DB) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// InsertConversation appends a conversation thread for a contact. Nothing
// prevents a contact from owning several threads; the uniqueness question is
// deliberately left open.
func InsertConversation(db *gorm.DB, c *domain.Conversation) error {
	return db.Create(c).Error
}

// HasStaffReply reports whether the conversation already contains a
// staff-authored, non-automated message. Used to rebuild suppression state
// for conversations that predate the process.
func HasStaffReply(ctx context.Context, db *gorm.DB, conversationID int) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("conversation_id = ? AND sender = ? AND is_auto = ?", conversationID, domain.StaffSender, false).
		Count(&n).Error
	return n > 0, err
}
