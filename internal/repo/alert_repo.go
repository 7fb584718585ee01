// Package repo – store functions for alerts, inventory, and workspace
// settings reference data.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ListAlerts returns a workspace's alerts in insertion order.
func ListAlerts(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.Alert, error) {
	var out []domain.Alert
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// ListInventory returns a workspace's inventory items in insertion order.
func ListInventory(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// GetWorkspace fetches the workspace record, or ErrNotFound.
func GetWorkspace(ctx context.Context, db *gorm.DB, id int) (*domain.Workspace, error) {
	var w domain.Workspace
	if err := db.WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// ListUsers returns a workspace's staff users in insertion order.
func ListUsers(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
