// Console mutation endpoints (the action layer).
//
// This file exposes the write side of the API:
//   - POST /contacts
//   - POST /bookings
//   - POST /messages
//   - POST /public/form
//   - POST /draft-email
//
// Every mutation resolves to an ActionResult {success, message} regardless of
// outcome; validation happens here with gin binding tags before the facade is
// touched. The facade decides which backend serves the write.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk/opsdesk-backend/internal/gateway"
	"github.com/opsdesk/opsdesk-backend/internal/services"
)

//
// DTOs
//

// AddContactRequest is the JSON payload for creating a contact.
type AddContactRequest struct {
	// Name is the contact's display name (at least 2 characters).
	Name string `json:"name" binding:"required,min=2" example:"Dana White"`
	// Email must be a well-formed address.
	Email string `json:"email" binding:"required,email" example:"dana@example.com"`
	// Phone is optional.
	Phone *string `json:"phone,omitempty" example:"555-0100"`
}

// AddBookingRequest is the JSON payload for creating a booking.
type AddBookingRequest struct {
	ContactID     int `json:"contact_id" binding:"required,gt=0" example:"1"`
	BookingTypeID int `json:"booking_type_id" binding:"required,gt=0" example:"2"`
	// ScheduledAt is an RFC3339 timestamp.
	ScheduledAt string `json:"scheduled_at" binding:"required" example:"2026-09-01T10:00:00Z"`
}

// SendMessageRequest is the JSON payload for a staff reply.
type SendMessageRequest struct {
	ConversationID int    `json:"conversation_id" binding:"required,gt=0" example:"3"`
	Body           string `json:"body" binding:"required" example:"Thanks for reaching out!"`
}

// SubmitFormRequest is the JSON payload for the public contact form.
type SubmitFormRequest struct {
	Name    string `json:"name" binding:"required" example:"Dana White"`
	Email   string `json:"email" binding:"required,email" example:"dana@example.com"`
	Message string `json:"message" binding:"required" example:"Do you take walk-ins?"`
}

// DraftEmailRequest is the JSON payload for the email drafting endpoint.
type DraftEmailRequest struct {
	BookingDetails      string `json:"booking_details" binding:"required" example:"Initial Consultation with Alice Johnson on Sep 1, 10:00"`
	SpecialInstructions string `json:"special_instructions" example:"Please arrive 10 minutes early."`
}

// actionError maps a facade mutation error to an ActionResult. The gateway
// sentinel can only reach here when fallback is disabled, which makes it a
// gateway failure rather than an internal one.
func actionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyBody):
		actionFail(c, http.StatusBadRequest, "Message body must not be empty.")
	case errors.Is(err, gateway.ErrUnavailable):
		actionFail(c, http.StatusBadGateway, "The service is temporarily unavailable. Please try again.")
	default:
		actionFail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

//
// Handlers
//

// AddContact godoc
// @ID          addContact
// @Summary     Create a contact
// @Description Creates a contact; a conversation thread is opened for it as a side effect.
// @Tags        Contacts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.AddContactRequest  true  "Contact payload"
// @Success     200  {object}  handlers.ActionResult
// @Failure     400  {object}  handlers.ActionResult  "Validation failed"
// @Failure     500  {object}  handlers.ActionResult  "Internal error"
// @Router      /contacts [post]
func (h *Handlers) AddContact(c *gin.Context) {
	var req AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		actionFail(c, http.StatusBadRequest, "Name (2+ characters) and a valid email are required.")
		return
	}

	if _, err := h.data.AddContact(c.Request.Context(), req.Name, req.Email, req.Phone); err != nil {
		actionError(c, err)
		return
	}
	actionOK(c, "Contact added successfully.")
}

// AddBooking godoc
// @ID          addBooking
// @Summary     Create a booking
// @Description Creates a scheduled booking; a pending intake submission is recorded as a side effect.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.AddBookingRequest  true  "Booking payload"
// @Success     200  {object}  handlers.ActionResult
// @Failure     400  {object}  handlers.ActionResult  "Validation failed"
// @Failure     500  {object}  handlers.ActionResult  "Internal error"
// @Router      /bookings [post]
func (h *Handlers) AddBooking(c *gin.Context) {
	var req AddBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		actionFail(c, http.StatusBadRequest, "A contact, a booking type, and a scheduled time are required.")
		return
	}
	when, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		actionFail(c, http.StatusBadRequest, "scheduled_at must be an RFC3339 timestamp.")
		return
	}

	if _, err := h.data.AddBooking(c.Request.Context(), req.ContactID, req.BookingTypeID, when); err != nil {
		actionError(c, err)
		return
	}
	actionOK(c, "Booking created successfully.")
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a staff message
// @Description Records a staff reply on a conversation and halts automated messages there.
// @Tags        Inbox
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SendMessageRequest  true  "Message payload"
// @Success     200  {object}  handlers.ActionResult
// @Failure     400  {object}  handlers.ActionResult  "Validation failed"
// @Failure     500  {object}  handlers.ActionResult  "Internal error"
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		actionFail(c, http.StatusBadRequest, "A conversation and a non-empty message body are required.")
		return
	}

	if _, err := h.data.SendMessage(c.Request.Context(), req.ConversationID, req.Body); err != nil {
		actionError(c, err)
		return
	}
	actionOK(c, "Message sent.")
}

// SubmitForm godoc
// @ID          submitForm
// @Summary     Submit the public contact form
// @Description Records a public form response and triggers the confirmation notification.
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SubmitFormRequest  true  "Form payload"
// @Success     200  {object}  handlers.ActionResult
// @Failure     400  {object}  handlers.ActionResult  "Validation failed"
// @Failure     500  {object}  handlers.ActionResult  "Internal error"
// @Router      /public/form [post]
func (h *Handlers) SubmitForm(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		actionFail(c, http.StatusBadRequest, "Name, a valid email, and a message are required.")
		return
	}

	if _, err := h.data.SubmitForm(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		actionError(c, err)
		return
	}
	actionOK(c, "Thanks! We received your message and will be in touch shortly.")
}

// DraftEmail godoc
// @ID          draftEmail
// @Summary     Draft a booking confirmation email
// @Description Produces a plain-text confirmation draft for a booking summary.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.DraftEmailRequest  true  "Draft payload"
// @Success     200  {object}  services.DraftResult
// @Failure     400  {object}  handlers.ActionResult      "Validation failed"
// @Failure     502  {object}  handlers.ActionResult      "Drafting unavailable"
// @Router      /draft-email [post]
func (h *Handlers) DraftEmail(c *gin.Context) {
	var req DraftEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		actionFail(c, http.StatusBadRequest, "booking_details is required.")
		return
	}

	res, err := h.drafts.Draft(c.Request.Context(), services.DraftRequest{
		BookingDetails:      req.BookingDetails,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		if errors.Is(err, services.ErrDraftUnavailable) {
			actionFail(c, http.StatusBadGateway, "Drafting is unavailable right now. Please try again.")
			return
		}
		actionFail(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	ok(c, http.StatusOK, res)
}
