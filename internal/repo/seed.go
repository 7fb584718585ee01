package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// DefaultWorkspaceID scopes the seed dataset; the application is
// single-tenant and every seeded record belongs to this workspace.
const DefaultWorkspaceID = 1

// IntakeFormID is the fixed form that booking-triggered submissions
// reference.
const IntakeFormID = 1

func strptr(s string) *string { return &s }

// Seed loads the fixed demo dataset into an empty store. IDs are assigned
// explicitly so that tests and offline demos are deterministic; subsequent
// inserts continue from the highest seeded id.
func Seed(db *gorm.DB) error {
	now := time.Now().UTC()

	workspaces := []domain.Workspace{
		{ID: 1, Name: "Springfield Wellness", Email: "hello@springfieldwellness.example", Timezone: "America/Chicago", IsActive: true},
	}
	users := []domain.User{
		{ID: 1, WorkspaceID: 1, Name: "Dana Owner", Email: "dana@springfieldwellness.example", Role: "Owner"},
		{ID: 2, WorkspaceID: 1, Name: "Sam Staff", Email: "sam@springfieldwellness.example", Role: "Staff"},
	}
	contacts := []domain.Contact{
		{ID: 1, WorkspaceID: 1, Name: "Alice Johnson", Email: "alice@example.com", Phone: strptr("111-222-3333")},
		{ID: 2, WorkspaceID: 1, Name: "Bob Williams", Email: "bob@example.com", Phone: strptr("444-555-6666")},
		{ID: 3, WorkspaceID: 1, Name: "Charlie Brown", Email: "charlie@example.com", Phone: nil},
	}
	bookingTypes := []domain.BookingType{
		{ID: 1, WorkspaceID: 1, Name: "Initial Consultation", Duration: 60},
		{ID: 2, WorkspaceID: 1, Name: "Follow-up", Duration: 30},
	}
	bookings := []domain.Booking{
		{ID: 1, ContactID: 1, BookingTypeID: 1, ScheduledAt: now.Add(2 * 24 * time.Hour), Status: domain.BookingScheduled},
		{ID: 2, ContactID: 2, BookingTypeID: 2, ScheduledAt: now.Add(3 * 24 * time.Hour), Status: domain.BookingScheduled},
		{ID: 3, ContactID: 1, BookingTypeID: 2, ScheduledAt: now.Add(-5 * 24 * time.Hour), Status: domain.BookingCompleted},
	}
	conversations := []domain.Conversation{
		{ID: 1, ContactID: 1},
		{ID: 2, ContactID: 2},
		{ID: 3, ContactID: 3},
	}
	messages := []domain.Message{
		{ID: 1, ConversationID: 1, Body: "Hi, I'd like to reschedule my appointment.", Sender: "Alice Johnson", IsAuto: false, CreatedAt: now.Add(-10 * time.Minute)},
		{ID: 2, ConversationID: 1, Body: "Of course, Alice. When works for you?", Sender: domain.StaffSender, IsAuto: false, CreatedAt: now.Add(-9 * time.Minute)},
		{ID: 3, ConversationID: 2, Body: "Thanks for the follow-up information.", Sender: "Bob Williams", IsAuto: false, CreatedAt: now.Add(-5 * time.Minute)},
	}
	forms := []domain.Form{
		{ID: IntakeFormID, WorkspaceID: 1, Name: "Post-Booking Intake"},
	}
	formResponses := []domain.FormResponse{
		{ID: 1, Name: "Existing User", Email: "user@example.com", Message: "This is a test submission.", CreatedAt: now},
	}
	inventory := []domain.InventoryItem{
		{ID: 1, WorkspaceID: 1, Name: "Gauze Pads", Quantity: 4, Threshold: 10},
		{ID: 2, WorkspaceID: 1, Name: "Exam Gloves", Quantity: 120, Threshold: 50},
	}
	alerts := []domain.Alert{
		{ID: 1, WorkspaceID: 1, Message: "Inventory for 'Gauze Pads' is low.", CreatedAt: now},
		{ID: 2, WorkspaceID: 1, Message: "A new contact 'Charlie Brown' was created.", CreatedAt: now},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, batch := range []any{
			workspaces, users, contacts, bookingTypes, bookings,
			conversations, messages, forms, formResponses, inventory, alerts,
		} {
			if err := tx.Create(batch).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
