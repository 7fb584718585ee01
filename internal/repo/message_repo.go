// Package repo – store functions for the Message model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ListMessages returns a conversation's messages ordered deterministically
// (CreatedAt ASC, ID ASC).
func ListMessages(ctx context.Context, db *gorm.DB, conversationID int) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// InsertMessage appends a message. CreatedAt must already be set by the
// caller so that ordering within a conversation is decided in one place.
func InsertMessage(db *gorm.DB, m *domain.Message) error {
	return db.Create(m).Error
}

// CountMessages uses a raw COUNT so a missing table surfaces as an error.
func CountMessages(ctx context.Context, db *gorm.DB, conversationID int) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM messages WHERE conversation_id = ?", conversationID).
		Scan(&total).Error
	return total, err
}
