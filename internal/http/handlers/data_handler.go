// Console data read endpoints.
//
// This file exposes the read side of the API:
//   - GET /contacts, /bookings, /booking-types, /alerts, /inbox
//   - GET /messages/{id}
//   - GET /form-submissions, /forms, /form-responses, /inventory
//   - GET /dashboard, /settings
//
// Handlers are transport-thin: they parse input, call the data facade, and
// translate results into HTTP responses. Which backend served a read is
// invisible here.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/gateway"
	"github.com/opsdesk/opsdesk-backend/internal/repo"
	"github.com/opsdesk/opsdesk-backend/internal/services"
	"github.com/opsdesk/opsdesk-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// DataProvider defines the facade operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DataProvider interface {
	GetContacts(ctx context.Context) ([]domain.Contact, error)
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	GetBookingTypes(ctx context.Context) ([]domain.BookingType, error)
	GetAlerts(ctx context.Context) ([]domain.Alert, error)
	GetInbox(ctx context.Context) ([]domain.InboxRow, error)
	GetMessages(ctx context.Context, conversationID int) ([]domain.Message, error)
	GetFormSubmissions(ctx context.Context) ([]domain.FormSubmission, error)
	GetForms(ctx context.Context) ([]domain.Form, error)
	GetFormResponses(ctx context.Context) ([]domain.FormResponse, error)
	GetInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetSettings(ctx context.Context) (*services.Settings, error)
	GetDashboard(ctx context.Context) (*services.Dashboard, error)

	AddContact(ctx context.Context, name, email string, phone *string) (*domain.Contact, error)
	AddBooking(ctx context.Context, contactID, bookingTypeID int, scheduledAt time.Time) (*domain.Booking, error)
	SendMessage(ctx context.Context, conversationID int, body string) (*domain.Message, error)
	SubmitForm(ctx context.Context, name, email, message string) (*domain.FormResponse, error)
}

// Drafter produces email drafts for booking confirmations.
type Drafter interface {
	Draft(ctx context.Context, req services.DraftRequest) (services.DraftResult, error)
}

//
// Handler wiring
//

// Handlers groups the console's HTTP endpoints. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	data   DataProvider
	drafts Drafter
}

// New constructs a Handlers instance bound to the given services.
func New(data DataProvider, drafts Drafter) *Handlers {
	return &Handlers{data: data, drafts: drafts}
}

// listFailed maps a facade read error to the HTTP layer. A read only fails
// when neither backend could serve it, so the gateway sentinel maps to 502.
func listFailed(c *gin.Context, err error) {
	if errors.Is(err, gateway.ErrUnavailable) {
		fail(c, http.StatusBadGateway, ErrCodeUpstream, "upstream unavailable")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
}

//
// Handlers
//

// ListContacts godoc
// @ID          listContacts
// @Summary     List contacts
// @Description Returns the workspace's contacts.
// @Tags        Contacts
// @Produce     json
// @Success     200  {array}   domain.Contact
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	out, err := h.data.GetContacts(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListBookings godoc
// @ID          listBookings
// @Summary     List bookings
// @Description Returns bookings with contact and booking type attached where resolvable.
// @Tags        Bookings
// @Produce     json
// @Success     200  {array}   domain.Booking
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /bookings [get]
func (h *Handlers) ListBookings(c *gin.Context) {
	out, err := h.data.GetBookings(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListBookingTypes godoc
// @ID          listBookingTypes
// @Summary     List booking types
// @Tags        Bookings
// @Produce     json
// @Success     200  {array}   domain.BookingType
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /booking-types [get]
func (h *Handlers) ListBookingTypes(c *gin.Context) {
	out, err := h.data.GetBookingTypes(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListAlerts godoc
// @ID          listAlerts
// @Summary     List operator alerts
// @Tags        Dashboard
// @Produce     json
// @Success     200  {array}   domain.Alert
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /alerts [get]
func (h *Handlers) ListAlerts(c *gin.Context) {
	out, err := h.data.GetAlerts(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListInbox godoc
// @ID          listInbox
// @Summary     List inbox rows
// @Description One row per conversation, with the contact attached where resolvable.
// @Tags        Inbox
// @Produce     json
// @Success     200  {array}   domain.InboxRow
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /inbox [get]
func (h *Handlers) ListInbox(c *gin.Context) {
	out, err := h.data.GetInbox(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List a conversation's messages
// @Description Returns the conversation's messages sorted by creation time ascending.
// @Tags        Inbox
// @Produce     json
// @Param       id  path  int  true  "Conversation ID"  minimum(1)
// @Success     200  {array}   domain.Message
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /messages/{id} [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "conversation id must be a positive integer")
		return
	}
	out, err := h.data.GetMessages(c.Request.Context(), id)
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListFormSubmissions godoc
// @ID          listFormSubmissions
// @Summary     List form submissions
// @Description Returns submissions with form and contact attached where resolvable.
// @Tags        Forms
// @Produce     json
// @Success     200  {array}   domain.FormSubmission
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /form-submissions [get]
func (h *Handlers) ListFormSubmissions(c *gin.Context) {
	out, err := h.data.GetFormSubmissions(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListForms godoc
// @ID          listForms
// @Summary     List forms
// @Tags        Forms
// @Produce     json
// @Success     200  {array}   domain.Form
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /forms [get]
func (h *Handlers) ListForms(c *gin.Context) {
	out, err := h.data.GetForms(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListFormResponses godoc
// @ID          listFormResponses
// @Summary     List public form responses
// @Tags        Forms
// @Produce     json
// @Success     200  {array}   domain.FormResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /form-responses [get]
func (h *Handlers) ListFormResponses(c *gin.Context) {
	out, err := h.data.GetFormResponses(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// ListInventory godoc
// @ID          listInventory
// @Summary     List inventory items
// @Tags        Dashboard
// @Produce     json
// @Success     200  {array}   domain.InventoryItem
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /inventory [get]
func (h *Handlers) ListInventory(c *gin.Context) {
	out, err := h.data.GetInventory(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// GetDashboard godoc
// @ID          getDashboard
// @Summary     Dashboard summary
// @Description Aggregates booking count, alerts, and contact count in one response.
// @Tags        Dashboard
// @Produce     json
// @Success     200  {object}  services.Dashboard
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream unavailable"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	out, err := h.data.GetDashboard(c.Request.Context())
	if err != nil {
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}

// GetSettings godoc
// @ID          getSettings
// @Summary     Workspace settings
// @Description Returns the workspace record with its staff users.
// @Tags        Settings
// @Produce     json
// @Success     200  {object}  services.Settings
// @Failure     404  {object}  handlers.ErrorResponse  "Workspace not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /settings [get]
func (h *Handlers) GetSettings(c *gin.Context) {
	out, err := h.data.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "workspace not found")
			return
		}
		listFailed(c, err)
		return
	}
	ok(c, http.StatusOK, out)
}
