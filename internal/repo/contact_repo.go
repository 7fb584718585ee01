// Package repo implements the in-process store backed by GORM. This file
// provides store functions for the Contact model.
//
// All list functions are context-aware and accept a *gorm.DB handle, making
// them safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition. Cross-entity side effects are owned by
// the service layer.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across the service layer.
var ErrNotFound = gorm.ErrRecordNotFound

// ListContacts returns all contacts in a workspace in insertion order.
// The result is a fresh slice; mutating it never affects stored state.
func ListContacts(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.Contact, error) {
	var out []domain.Contact
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// GetContact fetches a single contact by id, or ErrNotFound.
func GetContact(ctx context.Context, db *gorm.DB, id int) (*domain.Contact, error) {
	var c domain.Contact
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertContact appends a contact, assigning the next integer id. The
// handle may be transaction-bound.
func InsertContact(db *gorm.DB, c *domain.Contact) error {
	if c.WorkspaceID == 0 {
		c.WorkspaceID = DefaultWorkspaceID
	}
	return db.Create(c).Error
}
