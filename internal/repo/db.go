// Package repo implements the in-process store that stands in for the
// upstream service, backed by GORM over an in-memory SQLite database. This
// file contains database bootstrapping helpers and schema migration.
//
// The store is the guaranteed fallback of the data-access layer: it is
// seeded at process start and owns no cross-entity behavior. Side effects
// (contact → conversation, booking → form submission) are driven by the
// service layer inside transactions on this handle.
package repo

import (
	"fmt"
	"sync/atomic"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// memSeq disambiguates in-memory databases so every OpenMemory call gets a
// private store. Shared-cache DSNs with the same name would otherwise alias
// each other within the process.
var memSeq atomic.Int64

// OpenMemory opens a private in-memory SQLite database and applies PRAGMAs.
// The store resets on restart by design.
func OpenMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:memstore%d?mode=memory&cache=shared", memSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA synchronous=OFF;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// A shared-cache memory DB must be reached through a single connection,
	// otherwise the schema is not visible across pool members.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate creates the schema for all domain entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Workspace{},
		&domain.User{},
		&domain.Contact{},
		&domain.BookingType{},
		&domain.Booking{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Form{},
		&domain.FormSubmission{},
		&domain.FormResponse{},
		&domain.InventoryItem{},
		&domain.Alert{},
	)
}

// Open migrates and seeds a fresh in-memory store in one call. This is the
// bootstrap entry point used by main and by service-level tests.
func Open() (*gorm.DB, error) {
	db, err := OpenMemory()
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}
