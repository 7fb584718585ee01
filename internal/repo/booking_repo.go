// Package repo – store functions for bookings and booking types.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ListBookings returns all bookings in insertion order, without relation
// enrichment (that is service-layer work).
func ListBookings(ctx context.Context, db *gorm.DB) ([]domain.Booking, error) {
	var out []domain.Booking
	err := db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// InsertBooking appends a booking. A missing status defaults to scheduled.
func InsertBooking(db *gorm.DB, b *domain.Booking) error {
	if b.Status == "" {
		b.Status = domain.BookingScheduled
	}
	return db.Create(b).Error
}

// ListBookingTypes returns the booking-type reference data for a workspace.
func ListBookingTypes(ctx context.Context, db *gorm.DB, workspaceID int) ([]domain.BookingType, error) {
	var out []domain.BookingType
	err := db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
