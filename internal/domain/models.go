// Package domain defines the persistence models for the operations console:
// contacts, bookings, conversations, messages, forms, and their reference
// data. These types are mapped with GORM and form the core data layer of the
// application.
//
// Identifiers are positive integers assigned by whichever backend creates the
// record (SQLite rowid semantics in mock mode, the upstream service
// otherwise). Relation fields (Contact on a Booking, etc.) are view-only
// pointers populated by enrichment in the service layer; they are never
// persisted and a nil pointer means "not resolved", not "deleted".
package domain

import "time"

// Booking status values.
const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// FormSubmission status values.
const (
	SubmissionPending  = "pending"
	SubmissionReviewed = "reviewed"
)

// StaffSender is the sender marker for staff-authored messages. Any other
// sender value is a contact display name.
const StaffSender = "staff"

// Workspace is the tenant scope. The application runs single-tenant but
// most records carry a workspace id.
type Workspace struct {
	ID       int    `json:"id"        gorm:"primaryKey"`
	Name     string `json:"name"      gorm:"type:varchar(255);not null"`
	Email    string `json:"email"     gorm:"type:varchar(255);not null"`
	Timezone string `json:"timezone"  gorm:"type:varchar(64);not null"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the database table name for Workspace.
func (Workspace) TableName() string { return "workspaces" }

// User is a staff member of a workspace. Read-only reference data in this
// application; authentication is stubbed.
type User struct {
	ID          int    `json:"id"           gorm:"primaryKey"`
	WorkspaceID int    `json:"workspace_id" gorm:"not null;index"`
	Name        string `json:"name"         gorm:"type:varchar(255);not null"`
	Email       string `json:"email"        gorm:"type:varchar(255);not null"`
	Role        string `json:"role"         gorm:"type:varchar(16);not null;check:role IN ('Owner','Staff')"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Contact is a person the business interacts with. Created via contact
// intake or the public form; never deleted.
//
// Fields:
//   - ID: integer primary key assigned at creation.
//   - WorkspaceID: owning workspace.
//   - Name: display name, non-empty.
//   - Email: contact address; validated at the action layer, not required unique.
//   - Phone: optional; nil when unknown.
type Contact struct {
	ID          int     `json:"id"           gorm:"primaryKey"`
	WorkspaceID int     `json:"workspace_id" gorm:"not null;index"`
	Name        string  `json:"name"         gorm:"type:varchar(255);not null"`
	Email       string  `json:"email"        gorm:"type:varchar(255);not null"`
	Phone       *string `json:"phone"        gorm:"type:varchar(32)"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// BookingType is reference data describing a bookable service and its
// duration in minutes. Immutable at runtime.
type BookingType struct {
	ID          int    `json:"id"           gorm:"primaryKey"`
	WorkspaceID int    `json:"workspace_id" gorm:"not null;index"`
	Name        string `json:"name"         gorm:"type:varchar(255);not null"`
	Duration    int    `json:"duration"     gorm:"not null"`
}

// TableName returns the database table name for BookingType.
func (BookingType) TableName() string { return "booking_types" }

// Booking is an appointment between a contact and the business.
//
// Fields:
//   - ContactID / BookingTypeID: required references; not FK-checked at
//     creation time (dangling references are tolerated by enrichment).
//   - ScheduledAt: appointment time; well-formedness is checked at the action
//     layer, "must be in the future" is not enforced server-side.
//   - Status: scheduled|completed|cancelled, defaults to scheduled.
//   - Contact / BookingType: enrichment-only joins, never persisted.
type Booking struct {
	ID            int       `json:"id"              gorm:"primaryKey"`
	ContactID     int       `json:"contact_id"      gorm:"not null;index"`
	BookingTypeID int       `json:"booking_type_id" gorm:"not null;index"`
	ScheduledAt   time.Time `json:"scheduled_at"    gorm:"not null"`
	Status        string    `json:"status"          gorm:"type:varchar(16);not null;default:'scheduled';check:status IN ('scheduled','completed','cancelled')"`

	Contact     *Contact     `json:"contact,omitempty"      gorm:"-"`
	BookingType *BookingType `json:"booking_type,omitempty" gorm:"-"`
}

// TableName returns the database table name for Booking.
func (Booking) TableName() string { return "bookings" }

// Conversation is a message thread with a single contact. One conversation
// per contact is the working assumption of the seed data, not an enforced
// invariant: creating the same contact twice opens two threads.
type Conversation struct {
	ID        int `json:"id"         gorm:"primaryKey"`
	ContactID int `json:"contact_id" gorm:"not null;index"`

	Contact *Contact `json:"contact,omitempty" gorm:"-"`
}

// TableName returns the database table name for Conversation.
func (Conversation) TableName() string { return "conversations" }

// Message is a single utterance within a conversation.
//
// Fields:
//   - Sender: StaffSender for staff-authored messages, otherwise the
//     contact's display name.
//   - IsAuto: true when the message was system-generated. Automated delivery
//     stops once a staff, non-auto message exists on the conversation; that
//     rule lives in the service layer, not here.
//   - CreatedAt: assigned at creation; list order is CreatedAt ascending.
type Message struct {
	ID             int       `json:"id"              gorm:"primaryKey"`
	ConversationID int       `json:"conversation_id" gorm:"not null;index:idx_conv_msgs,priority:1"`
	Body           string    `json:"body"            gorm:"type:text;not null"`
	Sender         string    `json:"sender"          gorm:"type:varchar(255);not null"`
	IsAuto         bool      `json:"is_auto"         gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"      gorm:"index:idx_conv_msgs,priority:2"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Form is reference data naming a fillable form.
type Form struct {
	ID          int    `json:"id"           gorm:"primaryKey"`
	WorkspaceID int    `json:"workspace_id" gorm:"not null;index"`
	Name        string `json:"name"         gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Form.
func (Form) TableName() string { return "forms" }

// FormSubmission tracks a form a contact still has to fill in (or has
// filled in). Created implicitly when a booking is made, defaulting to the
// intake form and pending status.
type FormSubmission struct {
	ID        int    `json:"id"         gorm:"primaryKey"`
	FormID    int    `json:"form_id"    gorm:"not null;index"`
	ContactID int    `json:"contact_id" gorm:"not null;index"`
	Status    string `json:"status"     gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','reviewed')"`

	Form    *Form    `json:"form,omitempty"    gorm:"-"`
	Contact *Contact `json:"contact,omitempty" gorm:"-"`
}

// TableName returns the database table name for FormSubmission.
func (FormSubmission) TableName() string { return "form_submissions" }

// FormResponse is a public form submission (name/email/message), recorded
// when the public form is served locally.
type FormResponse struct {
	ID        int       `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for FormResponse.
func (FormResponse) TableName() string { return "form_responses" }

// InventoryItem is stock-level reference data; items below their threshold
// feed the seeded low-stock alerts.
type InventoryItem struct {
	ID          int    `json:"id"           gorm:"primaryKey"`
	WorkspaceID int    `json:"workspace_id" gorm:"not null;index"`
	Name        string `json:"name"         gorm:"type:varchar(255);not null"`
	Quantity    int    `json:"quantity"     gorm:"not null"`
	Threshold   int    `json:"threshold"    gorm:"not null"`
}

// TableName returns the database table name for InventoryItem.
func (InventoryItem) TableName() string { return "inventory_items" }

// Alert is an operator-facing notice. Read-only here; seeded, not created
// by any domain operation.
type Alert struct {
	ID          int       `json:"id"           gorm:"primaryKey"`
	WorkspaceID int       `json:"workspace_id" gorm:"not null;index"`
	Message     string    `json:"message"      gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Alert.
func (Alert) TableName() string { return "alerts" }

// InboxRow is one line of the inbox listing: a conversation with its contact
// resolved. The upstream inbox endpoint returns only {id, name}; ContactName
// carries that identifying field so the facade can resolve the contact when
// the id is missing.
type InboxRow struct {
	ID          int      `json:"id"`
	ContactID   int      `json:"contact_id"`
	ContactName string   `json:"name,omitempty"`
	Contact     *Contact `json:"contact,omitempty"`
}
