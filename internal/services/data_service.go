// Package services – DataService, the data-access facade.
//
// This file implements the read side: every fetch presents one stable API
// regardless of which backend ultimately serves the call. When the strategy
// prefers the upstream service, each call tries it first and independently
// falls back to the in-process store on the gateway's unavailable sentinel.
// The fallback is per-call and stateless: no "remote is down" flag is kept,
// so the next call re-attempts the upstream. Relation enrichment (booking →
// contact/booking type, inbox row → contact, submission → form/contact)
// happens here, after the record set is obtained, and produces view-only
// composites; a miss leaves the relation pointer nil rather than failing
// the list.
package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/gateway"
	"github.com/opsdesk/opsdesk-backend/internal/repo"
)

// Backend names a serving side for the routing strategy.
type Backend string

const (
	// BackendRemote prefers the configured upstream service.
	BackendRemote Backend = "remote"
	// BackendMock serves everything from the in-process store.
	BackendMock Backend = "mock"
)

// Strategy is decided once at construction: which backend to prefer and
// whether degrading to the store is permitted. Call sites never consult the
// environment.
type Strategy struct {
	Prefer        Backend
	AllowFallback bool
}

// StrategyFor derives the routing strategy from the upstream base address.
// An empty address selects full mock mode — a designed offline/demo state,
// not an error.
func StrategyFor(baseURL string) Strategy {
	if baseURL == "" {
		return Strategy{Prefer: BackendMock, AllowFallback: false}
	}
	return Strategy{Prefer: BackendRemote, AllowFallback: true}
}

// Upstream is the gateway contract consumed by the facade. *gateway.Client
// satisfies it; tests substitute fakes.
type Upstream interface {
	ListContacts(ctx context.Context, workspaceID int) ([]domain.Contact, error)
	ListBookings(ctx context.Context, workspaceID int) ([]domain.Booking, error)
	ListBookingTypes(ctx context.Context, workspaceID int) ([]domain.BookingType, error)
	ListAlerts(ctx context.Context, workspaceID int) ([]domain.Alert, error)
	ListInbox(ctx context.Context) ([]gateway.InboxEntry, error)
	ListMessages(ctx context.Context, conversationID int) ([]domain.Message, error)
	ListFormSubmissions(ctx context.Context, workspaceID int) ([]domain.FormSubmission, error)
	CreateContact(ctx context.Context, name, email string, phone *string) error
	CreateBooking(ctx context.Context, contactID, bookingTypeID int, scheduledAt time.Time) error
	SendMessage(ctx context.Context, conversationID int, body string) error
	SubmitForm(ctx context.Context, name, email, message string) error
}

// fallbackTotal counts reads and writes that degraded from the upstream to
// the in-process store, by operation.
var fallbackTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dataservice_fallback_total",
		Help: "Operations degraded from the upstream service to the local store.",
	},
	[]string{"operation"},
)

func init() {
	prometheus.MustRegister(fallbackTotal)
}

// DataService is the data-access facade. It owns routing, enrichment, the
// mutation side-effect hooks, and the suppression registry.
type DataService struct {
	// DB is the seeded in-process store, the guaranteed fallback.
	DB *gorm.DB
	// Upstream is the remote gateway; may be nil in pure mock mode.
	Upstream Upstream
	// Strategy decides routing; injected at construction.
	Strategy Strategy
	// WorkspaceID scopes every read; single-tenant in this deployment.
	WorkspaceID int

	// Suppression tracks the automation-stops-on-staff-reply rule.
	Suppression *SuppressionRegistry
	// Notifier receives the public-form confirmation trigger.
	Notifier Notifier

	// ContactHooks and BookingHooks run after the respective primary insert,
	// inside the same transaction on the store path.
	ContactHooks []ContactHook
	BookingHooks []BookingHook
}

// NewDataService constructs the facade with the default side-effect hooks
// (contact → conversation, booking → pending intake submission), an empty
// suppression registry, and the log-backed notifier.
func NewDataService(db *gorm.DB, upstream Upstream, strategy Strategy) *DataService {
	return &DataService{
		DB:           db,
		Upstream:     upstream,
		Strategy:     strategy,
		WorkspaceID:  repo.DefaultWorkspaceID,
		Suppression:  NewSuppressionRegistry(),
		Notifier:     LogNotifier{},
		ContactHooks: []ContactHook{OpenConversation},
		BookingHooks: []BookingHook{SchedulePendingIntake},
	}
}

// remoteFirst reports whether this call should try the upstream before the
// store.
func (s *DataService) remoteFirst() bool {
	return s.Strategy.Prefer == BackendRemote && s.Upstream != nil
}

// degraded decides whether a failed upstream call may be served locally
// instead, recording the degradation when it is. Only the gateway's
// unavailable sentinel qualifies; anything else propagates.
func (s *DataService) degraded(operation string, err error) bool {
	if !errors.Is(err, gateway.ErrUnavailable) || !s.Strategy.AllowFallback {
		return false
	}
	fallbackTotal.WithLabelValues(operation).Inc()
	log.Debug().Str("operation", operation).Msg("serving from local store")
	return true
}

//
// Reads
//

// GetContacts lists the workspace's contacts.
func (s *DataService) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	if s.remoteFirst() {
		out, err := s.Upstream.ListContacts(ctx, s.WorkspaceID)
		if err == nil {
			return out, nil
		}
		if !s.degraded("contacts", err) {
			return nil, err
		}
	}
	return repo.ListContacts(ctx, s.DB, s.WorkspaceID)
}

// GetBookingTypes lists the bookable services.
func (s *DataService) GetBookingTypes(ctx context.Context) ([]domain.BookingType, error) {
	if s.remoteFirst() {
		out, err := s.Upstream.ListBookingTypes(ctx, s.WorkspaceID)
		if err == nil {
			return out, nil
		}
		if !s.degraded("booking_types", err) {
			return nil, err
		}
	}
	return repo.ListBookingTypes(ctx, s.DB, s.WorkspaceID)
}

// GetAlerts lists operator alerts.
func (s *DataService) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	if s.remoteFirst() {
		out, err := s.Upstream.ListAlerts(ctx, s.WorkspaceID)
		if err == nil {
			return out, nil
		}
		if !s.degraded("alerts", err) {
			return nil, err
		}
	}
	return repo.ListAlerts(ctx, s.DB, s.WorkspaceID)
}

// GetBookings lists bookings with their Contact and BookingType attached by
// lookup. Unresolved references leave the field nil; they never fail the
// list.
func (s *DataService) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	served := false
	if s.remoteFirst() {
		out, err := s.Upstream.ListBookings(ctx, s.WorkspaceID)
		if err == nil {
			bookings, served = out, true
		} else if !s.degraded("bookings", err) {
			return nil, err
		}
	}
	if !served {
		var err error
		bookings, err = repo.ListBookings(ctx, s.DB)
		if err != nil {
			return nil, err
		}
	}

	contacts, err := s.GetContacts(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.GetBookingTypes(ctx)
	if err != nil {
		return nil, err
	}

	byContact := contactsByID(contacts)
	byType := make(map[int]*domain.BookingType, len(types))
	for i := range types {
		byType[types[i].ID] = &types[i]
	}
	for i := range bookings {
		bookings[i].Contact = byContact[bookings[i].ContactID]
		bookings[i].BookingType = byType[bookings[i].BookingTypeID]
	}
	return bookings, nil
}

// GetInbox returns one row per conversation with its contact attached. The
// upstream inbox listing carries only {id, name}, so remote rows are
// resolved by display name against the contact set; store rows resolve by
// contact id. A dangling reference yields a row with a nil contact.
func (s *DataService) GetInbox(ctx context.Context) ([]domain.InboxRow, error) {
	contacts, err := s.GetContacts(ctx)
	if err != nil {
		return nil, err
	}

	if s.remoteFirst() {
		entries, err := s.Upstream.ListInbox(ctx)
		if err == nil {
			byName := make(map[string]*domain.Contact, len(contacts))
			for i := range contacts {
				byName[contacts[i].Name] = &contacts[i]
			}
			rows := make([]domain.InboxRow, 0, len(entries))
			for _, e := range entries {
				row := domain.InboxRow{ID: e.ID, ContactName: e.Name}
				if c := byName[e.Name]; c != nil {
					row.ContactID = c.ID
					row.Contact = c
				}
				rows = append(rows, row)
			}
			return rows, nil
		}
		if !s.degraded("inbox", err) {
			return nil, err
		}
	}

	convs, err := repo.ListConversations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	byID := contactsByID(contacts)
	rows := make([]domain.InboxRow, 0, len(convs))
	for _, cv := range convs {
		row := domain.InboxRow{ID: cv.ID, ContactID: cv.ContactID}
		if c := byID[cv.ContactID]; c != nil {
			row.Contact = c
			row.ContactName = c.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetMessages returns a conversation's messages sorted by creation time
// ascending, whichever backend served them.
func (s *DataService) GetMessages(ctx context.Context, conversationID int) ([]domain.Message, error) {
	var msgs []domain.Message
	served := false
	if s.remoteFirst() {
		out, err := s.Upstream.ListMessages(ctx, conversationID)
		if err == nil {
			msgs, served = out, true
		} else if !s.degraded("messages", err) {
			return nil, err
		}
	}
	if !served {
		var err error
		msgs, err = repo.ListMessages(ctx, s.DB, conversationID)
		if err != nil {
			return nil, err
		}
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

// GetFormSubmissions lists submissions with Form and Contact attached, same
// nil-on-miss policy as bookings.
func (s *DataService) GetFormSubmissions(ctx context.Context) ([]domain.FormSubmission, error) {
	var subs []domain.FormSubmission
	served := false
	if s.remoteFirst() {
		out, err := s.Upstream.ListFormSubmissions(ctx, s.WorkspaceID)
		if err == nil {
			subs, served = out, true
		} else if !s.degraded("form_submissions", err) {
			return nil, err
		}
	}
	if !served {
		var err error
		subs, err = repo.ListFormSubmissions(ctx, s.DB)
		if err != nil {
			return nil, err
		}
	}

	contacts, err := s.GetContacts(ctx)
	if err != nil {
		return nil, err
	}
	forms, err := repo.ListForms(ctx, s.DB, s.WorkspaceID)
	if err != nil {
		return nil, err
	}
	byContact := contactsByID(contacts)
	byForm := make(map[int]*domain.Form, len(forms))
	for i := range forms {
		byForm[forms[i].ID] = &forms[i]
	}
	for i := range subs {
		subs[i].Contact = byContact[subs[i].ContactID]
		subs[i].Form = byForm[subs[i].FormID]
	}
	return subs, nil
}

// GetForms lists form reference data. Served from the store; the upstream
// contract has no forms endpoint.
func (s *DataService) GetForms(ctx context.Context) ([]domain.Form, error) {
	return repo.ListForms(ctx, s.DB, s.WorkspaceID)
}

// GetFormResponses lists recorded public form responses (store only).
func (s *DataService) GetFormResponses(ctx context.Context) ([]domain.FormResponse, error) {
	return repo.ListFormResponses(ctx, s.DB)
}

// GetInventory lists inventory reference data (store only).
func (s *DataService) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return repo.ListInventory(ctx, s.DB, s.WorkspaceID)
}

// Settings bundles the workspace record with its staff users.
type Settings struct {
	Workspace *domain.Workspace `json:"workspace"`
	Users     []domain.User     `json:"users"`
}

// GetSettings returns the workspace settings view (store only).
func (s *DataService) GetSettings(ctx context.Context) (*Settings, error) {
	ws, err := repo.GetWorkspace(ctx, s.DB, s.WorkspaceID)
	if err != nil {
		return nil, err
	}
	users, err := repo.ListUsers(ctx, s.DB, s.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return &Settings{Workspace: ws, Users: users}, nil
}

// contactsByID indexes a contact slice by id for enrichment lookups.
func contactsByID(contacts []domain.Contact) map[int]*domain.Contact {
	m := make(map[int]*domain.Contact, len(contacts))
	for i := range contacts {
		m[contacts[i].ID] = &contacts[i]
	}
	return m
}
