// Package gateway translates domain operations into HTTP calls against the
// configurable upstream service.
//
// Every failure mode — network error, non-2xx status, malformed payload —
// is normalized into the single ErrUnavailable sentinel so callers never
// branch on failure kind. The cause is logged here with endpoint context and
// then dropped; the data-access layer reacts to ErrUnavailable by serving
// the in-process store instead.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// ErrUnavailable is the one failure surface of the gateway. It covers
// network errors, non-2xx responses, and undecodable bodies alike.
var ErrUnavailable = errors.New("upstream unavailable")

// defaultTimeout bounds a single upstream call. There is no retry here; the
// caller re-attempts on its next operation.
const defaultTimeout = 10 * time.Second

// Client issues REST-ish calls against BaseURL. The zero BaseURL means the
// upstream is unconfigured and the application runs fully offline.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for baseURL. Trailing slashes are trimmed so path
// joining stays predictable.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Configured reports whether a base address is set. An unconfigured gateway
// is a designed state (offline/demo mode), not a misconfiguration.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != ""
}

// InboxEntry is the upstream inbox row shape: conversation id plus the
// contact's display name, nothing more. Contact resolution happens in the
// data-access layer.
type InboxEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// getJSON performs a GET and decodes the body into out. A 204 leaves out
// untouched (empty list semantics). Any failure returns ErrUnavailable.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.degrade(path, "build request", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return c.degrade(path, "network", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.degrade(path, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.degrade(path, "decode", err)
	}
	return nil
}

// postQuery performs a POST with all parameters carried in the query string,
// per the upstream write contract. A 204 means success with no body.
func (c *Client) postQuery(ctx context.Context, path string, query url.Values) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return c.degrade(path, "build request", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return c.degrade(path, "network", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.degrade(path, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}

// degrade logs the real cause and collapses it into the sentinel.
func (c *Client) degrade(path, stage string, err error) error {
	log.Warn().
		Err(err).
		Str("endpoint", path).
		Str("stage", stage).
		Msg("upstream call failed; serving local store")
	return ErrUnavailable
}

func wsQuery(workspaceID int) url.Values {
	return url.Values{"workspace_id": {strconv.Itoa(workspaceID)}}
}

//
// Reads
//

// ListContacts fetches /contacts scoped to a workspace.
func (c *Client) ListContacts(ctx context.Context, workspaceID int) ([]domain.Contact, error) {
	var out []domain.Contact
	if err := c.getJSON(ctx, "/contacts", wsQuery(workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBookings fetches /bookings scoped to a workspace. Payloads arrive
// unenriched; relation resolution is the caller's job.
func (c *Client) ListBookings(ctx context.Context, workspaceID int) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.getJSON(ctx, "/bookings", wsQuery(workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBookingTypes fetches /booking-types scoped to a workspace.
func (c *Client) ListBookingTypes(ctx context.Context, workspaceID int) ([]domain.BookingType, error) {
	var out []domain.BookingType
	if err := c.getJSON(ctx, "/booking-types", wsQuery(workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAlerts fetches /alerts scoped to a workspace.
func (c *Client) ListAlerts(ctx context.Context, workspaceID int) ([]domain.Alert, error) {
	var out []domain.Alert
	if err := c.getJSON(ctx, "/alerts", wsQuery(workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInbox fetches /inbox. The upstream listing omits contact detail
// beyond the display name.
func (c *Client) ListInbox(ctx context.Context) ([]InboxEntry, error) {
	var out []InboxEntry
	if err := c.getJSON(ctx, "/inbox", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMessages fetches /messages/{conversation_id}.
func (c *Client) ListMessages(ctx context.Context, conversationID int) ([]domain.Message, error) {
	var out []domain.Message
	path := "/messages/" + strconv.Itoa(conversationID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFormSubmissions fetches /form-submissions scoped to a workspace.
func (c *Client) ListFormSubmissions(ctx context.Context, workspaceID int) ([]domain.FormSubmission, error) {
	var out []domain.FormSubmission
	if err := c.getJSON(ctx, "/form-submissions", wsQuery(workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

//
// Writes (query-string-encoded POSTs)
//

// CreateContact posts /public/contact.
func (c *Client) CreateContact(ctx context.Context, name, email string, phone *string) error {
	q := url.Values{"name": {name}, "email": {email}}
	if phone != nil && *phone != "" {
		q.Set("phone", *phone)
	}
	return c.postQuery(ctx, "/public/contact", q)
}

// CreateBooking posts /public/book. The upstream names the timestamp
// parameter "date" and expects RFC 3339.
func (c *Client) CreateBooking(ctx context.Context, contactID, bookingTypeID int, scheduledAt time.Time) error {
	q := url.Values{
		"contact_id":      {strconv.Itoa(contactID)},
		"booking_type_id": {strconv.Itoa(bookingTypeID)},
		"date":            {scheduledAt.UTC().Format(time.RFC3339)},
	}
	return c.postQuery(ctx, "/public/book", q)
}

// SendMessage posts /send-message.
func (c *Client) SendMessage(ctx context.Context, conversationID int, body string) error {
	q := url.Values{
		"conv_id": {strconv.Itoa(conversationID)},
		"body":    {body},
	}
	return c.postQuery(ctx, "/send-message", q)
}

// SubmitForm posts /submit-form.
func (c *Client) SubmitForm(ctx context.Context, name, email, message string) error {
	q := url.Values{
		"name":    {name},
		"email":   {email},
		"message": {message},
	}
	return c.postQuery(ctx, "/submit-form", q)
}
