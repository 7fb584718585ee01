// Package services – DataService mutations and side-effect hooks.
//
// Cross-entity side effects are expressed as an explicit post-insert hook
// list owned by the facade, not by the storage primitives: creating a
// contact opens a conversation, creating a booking schedules a pending
// intake submission. On the store path the primary insert and its hooks run
// in one transaction, so readers never observe a partial application. On the
// upstream path the remote service is trusted to perform its own side
// effects; the facade does not compensate when it silently doesn't.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/repo"
)

// ContactHook runs after a contact insert, inside the same transaction.
type ContactHook func(tx *gorm.DB, c *domain.Contact) error

// BookingHook runs after a booking insert, inside the same transaction.
type BookingHook func(tx *gorm.DB, b *domain.Booking) error

// OpenConversation is the default contact hook: every new contact gets a
// conversation thread.
func OpenConversation(tx *gorm.DB, c *domain.Contact) error {
	return repo.InsertConversation(tx, &domain.Conversation{ContactID: c.ID})
}

// SchedulePendingIntake is the default booking hook: every new booking
// leaves a pending intake-form submission for its contact.
func SchedulePendingIntake(tx *gorm.DB, b *domain.Booking) error {
	return repo.InsertFormSubmission(tx, &domain.FormSubmission{
		FormID:    repo.IntakeFormID,
		ContactID: b.ContactID,
		Status:    domain.SubmissionPending,
	})
}

// AddContact creates a contact. Presence/format validation happens at the
// action layer before this point; the facade only normalizes the display
// name. When served locally the returned record carries the assigned id and
// the contact hooks have run; when the upstream accepted the write the
// record is nil and callers re-fetch.
func (s *DataService) AddContact(ctx context.Context, name, email string, phone *string) (*domain.Contact, error) {
	tr := otel.Tracer("services/DataService")
	ctx, span := tr.Start(ctx, "AddContact")
	defer span.End()

	name = normalizeDisplayName(name)

	if s.remoteFirst() {
		err := s.Upstream.CreateContact(ctx, name, email, phone)
		if err == nil {
			// The upstream owns the conversation side effect; if it skips it,
			// the contact stays off the inbox until a thread appears.
			log.Debug().Str("contact", name).Msg("contact accepted upstream")
			return nil, nil
		}
		if !s.degraded("add_contact", err) {
			return nil, err
		}
	}

	var created *domain.Contact
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := &domain.Contact{WorkspaceID: s.WorkspaceID, Name: name, Email: email, Phone: phone}
		if err := repo.InsertContact(tx, c); err != nil {
			return err
		}
		for _, hook := range s.ContactHooks {
			if err := hook(tx, c); err != nil {
				return err
			}
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("contact.id", created.ID))
	return created, nil
}

// AddBooking creates a booking with status scheduled. Foreign keys are not
// checked before insert; a dangling reference surfaces later as an
// unresolved relation, never as a failure here.
func (s *DataService) AddBooking(ctx context.Context, contactID, bookingTypeID int, scheduledAt time.Time) (*domain.Booking, error) {
	tr := otel.Tracer("services/DataService")
	ctx, span := tr.Start(ctx, "AddBooking",
		trace.WithAttributes(
			attribute.Int("contact.id", contactID),
			attribute.Int("booking_type.id", bookingTypeID),
		),
	)
	defer span.End()

	if s.remoteFirst() {
		err := s.Upstream.CreateBooking(ctx, contactID, bookingTypeID, scheduledAt)
		if err == nil {
			return nil, nil
		}
		if !s.degraded("add_booking", err) {
			return nil, err
		}
	}

	var created *domain.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b := &domain.Booking{
			ContactID:     contactID,
			BookingTypeID: bookingTypeID,
			ScheduledAt:   scheduledAt.UTC(),
			Status:        domain.BookingScheduled,
		}
		if err := repo.InsertBooking(tx, b); err != nil {
			return err
		}
		for _, hook := range s.BookingHooks {
			if err := hook(tx, b); err != nil {
				return err
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SendMessage records a staff-authored, non-automated message on the
// conversation and flips the suppression flag, halting any further
// automated messages there. The returned record (store path only) is not
// guaranteed to match a subsequent list byte for byte; callers re-fetch the
// conversation rather than trusting it as final.
func (s *DataService) SendMessage(ctx context.Context, conversationID int, body string) (*domain.Message, error) {
	tr := otel.Tracer("services/DataService")
	ctx, span := tr.Start(ctx, "SendMessage",
		trace.WithAttributes(attribute.Int("conversation.id", conversationID)),
	)
	defer span.End()

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	if s.remoteFirst() {
		err := s.Upstream.SendMessage(ctx, conversationID, body)
		if err == nil {
			s.Suppression.Suppress(conversationID)
			return nil, nil
		}
		if !s.degraded("send_message", err) {
			return nil, err
		}
	}

	m := &domain.Message{
		ConversationID: conversationID,
		Body:           body,
		Sender:         domain.StaffSender,
		IsAuto:         false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.InsertMessage(s.DB.WithContext(ctx), m); err != nil {
		return nil, err
	}
	s.Suppression.Suppress(conversationID)
	return m, nil
}

// RecordAutoMessage is the entry point for the automated-dispatch
// collaborator. It refuses with ErrAutoSuppressed once a staff reply exists
// on the conversation; otherwise it records the message with is_auto set.
// The registry only knows about sends within this process, so stored staff
// replies (seeded or from an earlier run) are consulted as well and cached
// back into the registry.
func (s *DataService) RecordAutoMessage(ctx context.Context, conversationID int, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if s.Suppression.Suppressed(conversationID) {
		return nil, ErrAutoSuppressed
	}
	replied, err := repo.HasStaffReply(ctx, s.DB, conversationID)
	if err != nil {
		return nil, err
	}
	if replied {
		s.Suppression.Suppress(conversationID)
		return nil, ErrAutoSuppressed
	}
	m := &domain.Message{
		ConversationID: conversationID,
		Body:           body,
		Sender:         domain.StaffSender,
		IsAuto:         true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.InsertMessage(s.DB.WithContext(ctx), m); err != nil {
		return nil, err
	}
	return m, nil
}

// SubmitForm records a public form response. On the store path it also
// fires the notification trigger; content and delivery of the confirmation
// are the notifier's business.
func (s *DataService) SubmitForm(ctx context.Context, name, email, message string) (*domain.FormResponse, error) {
	if s.remoteFirst() {
		err := s.Upstream.SubmitForm(ctx, name, email, message)
		if err == nil {
			return nil, nil
		}
		if !s.degraded("submit_form", err) {
			return nil, err
		}
	}

	r := &domain.FormResponse{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.InsertFormResponse(s.DB.WithContext(ctx), r); err != nil {
		return nil, err
	}
	s.Notifier.FormReceived(ctx, *r)
	return r, nil
}

// uniformCaser title-cases intake names that arrive in a single case.
var uniformCaser = cases.Title(language.Und)

// normalizeDisplayName collapses whitespace and, when the name arrives
// entirely lower- or upper-cased (public form keyboards), title-cases it.
// Mixed-case input is preserved as typed.
func normalizeDisplayName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return name
	}
	if name == strings.ToLower(name) || name == strings.ToUpper(name) {
		return uniformCaser.String(strings.ToLower(name))
	}
	return name
}
