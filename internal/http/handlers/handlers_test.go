package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/gateway"
	"github.com/opsdesk/opsdesk-backend/internal/repo"
	"github.com/opsdesk/opsdesk-backend/internal/services"
)

// ----- Fakes -----

// fakeData satisfies DataProvider with canned payloads and a single error
// switch. Mutation arguments are captured for assertions.
type fakeData struct {
	err error

	contacts    []domain.Contact
	bookings    []domain.Booking
	types       []domain.BookingType
	alerts      []domain.Alert
	inbox       []domain.InboxRow
	messages    []domain.Message
	submissions []domain.FormSubmission
	forms       []domain.Form
	responses   []domain.FormResponse
	inventory   []domain.InventoryItem
	settings    *services.Settings
	dashboard   *services.Dashboard

	gotMessagesConvID int

	addedName  string
	addedEmail string
	addedPhone *string

	bookedContact int
	bookedType    int
	bookedAt      time.Time

	sentConv int
	sentBody string

	formName, formEmail, formMessage string
}

func (f *fakeData) GetContacts(ctx context.Context) ([]domain.Contact, error) {
	return f.contacts, f.err
}
func (f *fakeData) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, f.err
}
func (f *fakeData) GetBookingTypes(ctx context.Context) ([]domain.BookingType, error) {
	return f.types, f.err
}
func (f *fakeData) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	return f.alerts, f.err
}
func (f *fakeData) GetInbox(ctx context.Context) ([]domain.InboxRow, error) {
	return f.inbox, f.err
}
func (f *fakeData) GetMessages(ctx context.Context, conversationID int) ([]domain.Message, error) {
	f.gotMessagesConvID = conversationID
	return f.messages, f.err
}
func (f *fakeData) GetFormSubmissions(ctx context.Context) ([]domain.FormSubmission, error) {
	return f.submissions, f.err
}
func (f *fakeData) GetForms(ctx context.Context) ([]domain.Form, error) {
	return f.forms, f.err
}
func (f *fakeData) GetFormResponses(ctx context.Context) ([]domain.FormResponse, error) {
	return f.responses, f.err
}
func (f *fakeData) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return f.inventory, f.err
}
func (f *fakeData) GetSettings(ctx context.Context) (*services.Settings, error) {
	return f.settings, f.err
}
func (f *fakeData) GetDashboard(ctx context.Context) (*services.Dashboard, error) {
	return f.dashboard, f.err
}

func (f *fakeData) AddContact(ctx context.Context, name, email string, phone *string) (*domain.Contact, error) {
	f.addedName, f.addedEmail, f.addedPhone = name, email, phone
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Contact{ID: 4, Name: name, Email: email, Phone: phone}, nil
}

func (f *fakeData) AddBooking(ctx context.Context, contactID, bookingTypeID int, scheduledAt time.Time) (*domain.Booking, error) {
	f.bookedContact, f.bookedType, f.bookedAt = contactID, bookingTypeID, scheduledAt
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: 4, ContactID: contactID, BookingTypeID: bookingTypeID, ScheduledAt: scheduledAt}, nil
}

func (f *fakeData) SendMessage(ctx context.Context, conversationID int, body string) (*domain.Message, error) {
	f.sentConv, f.sentBody = conversationID, body
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Message{ID: 4, ConversationID: conversationID, Body: body}, nil
}

func (f *fakeData) SubmitForm(ctx context.Context, name, email, message string) (*domain.FormResponse, error) {
	f.formName, f.formEmail, f.formMessage = name, email, message
	if f.err != nil {
		return nil, f.err
	}
	return &domain.FormResponse{ID: 2, Name: name, Email: email, Message: message}, nil
}

type fakeDrafter struct {
	gotReq services.DraftRequest
	out    services.DraftResult
	err    error
}

func (d *fakeDrafter) Draft(_ context.Context, req services.DraftRequest) (services.DraftResult, error) {
	d.gotReq = req
	return d.out, d.err
}

// ----- Harness -----

func newRouter(f *fakeData, d Drafter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(f, d)

	r.GET("/contacts", h.ListContacts)
	r.POST("/contacts", h.AddContact)
	r.GET("/bookings", h.ListBookings)
	r.POST("/bookings", h.AddBooking)
	r.GET("/booking-types", h.ListBookingTypes)
	r.GET("/alerts", h.ListAlerts)
	r.GET("/inbox", h.ListInbox)
	r.GET("/messages/:id", h.ListMessages)
	r.POST("/messages", h.SendMessage)
	r.GET("/form-submissions", h.ListFormSubmissions)
	r.GET("/forms", h.ListForms)
	r.GET("/form-responses", h.ListFormResponses)
	r.GET("/inventory", h.ListInventory)
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/settings", h.GetSettings)
	r.POST("/public/form", h.SubmitForm)
	r.POST("/draft-email", h.DraftEmail)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAction(t *testing.T, w *httptest.ResponseRecorder) ActionResult {
	t.Helper()
	var res ActionResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode action result: %v (body %q)", err, w.Body.String())
	}
	return res
}

// ----- Reads -----

func TestListContacts_OK(t *testing.T) {
	f := &fakeData{contacts: []domain.Contact{{ID: 1, Name: "Alice Johnson", Email: "alice@example.com"}}}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodGet, "/contacts", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var out []domain.Contact
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Alice Johnson" {
		t.Fatalf("body = %+v; want one Alice Johnson", out)
	}
}

func TestListContacts_UpstreamUnavailable(t *testing.T) {
	f := &fakeData{err: gateway.ErrUnavailable}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodGet, "/contacts", "")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", w.Code)
	}
	var res ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Code != ErrCodeUpstream {
		t.Errorf("code = %q; want %q", res.Code, ErrCodeUpstream)
	}
}

func TestListMessages_ValidatesID(t *testing.T) {
	f := &fakeData{}
	r := newRouter(f, &fakeDrafter{})

	for _, path := range []string{"/messages/0", "/messages/-3", "/messages/abc"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d; want 400", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/messages/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if f.gotMessagesConvID != 7 {
		t.Errorf("conversation id = %d; want 7", f.gotMessagesConvID)
	}
}

func TestGetSettings_NotFound(t *testing.T) {
	f := &fakeData{err: repo.ErrNotFound}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodGet, "/settings", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	var res ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Code != ErrCodeNotFound {
		t.Errorf("code = %q; want %q", res.Code, ErrCodeNotFound)
	}
}

func TestGetSettings_GenericError(t *testing.T) {
	f := &fakeData{err: errors.New("disk on fire")}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodGet, "/settings", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500 for a generic error", w.Code)
	}
}

func TestGetDashboard_OK(t *testing.T) {
	f := &fakeData{dashboard: &services.Dashboard{Bookings: 3, ContactsCount: 3, Alerts: []domain.Alert{{ID: 1}}}}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodGet, "/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var d services.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Bookings != 3 || d.ContactsCount != 3 || len(d.Alerts) != 1 {
		t.Errorf("dashboard = %+v; want 3/3/1", d)
	}
}

// ----- Actions -----

func TestAddContact_Validation(t *testing.T) {
	f := &fakeData{}
	r := newRouter(f, &fakeDrafter{})

	cases := map[string]string{
		"missing name":  `{"email":"a@example.com"}`,
		"short name":    `{"name":"A","email":"a@example.com"}`,
		"missing email": `{"name":"Alice"}`,
		"bad email":     `{"name":"Alice","email":"not-an-email"}`,
		"not json":      `{{{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/contacts", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", w.Code)
			}
			res := decodeAction(t, w)
			if res.Success {
				t.Errorf("success = true on a rejected payload")
			}
			if res.Message == "" {
				t.Errorf("message empty; want a human-readable reason")
			}
		})
	}
	if f.addedName != "" {
		t.Errorf("facade called despite validation failure")
	}
}

func TestAddContact_OK(t *testing.T) {
	f := &fakeData{}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/contacts",
		`{"name":"Dana White","email":"dana@example.com","phone":"555-0100"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	res := decodeAction(t, w)
	if !res.Success {
		t.Fatalf("success = false; body %q", w.Body.String())
	}
	if f.addedName != "Dana White" || f.addedEmail != "dana@example.com" {
		t.Errorf("facade got %q/%q", f.addedName, f.addedEmail)
	}
	if f.addedPhone == nil || *f.addedPhone != "555-0100" {
		t.Errorf("phone = %v; want 555-0100", f.addedPhone)
	}
}

func TestAddBooking_RejectsBadTimestamp(t *testing.T) {
	f := &fakeData{}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/bookings",
		`{"contact_id":1,"booking_type_id":2,"scheduled_at":"tomorrow at noon"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if res := decodeAction(t, w); res.Success {
		t.Errorf("success = true on a malformed timestamp")
	}
}

func TestAddBooking_OK(t *testing.T) {
	f := &fakeData{}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/bookings",
		`{"contact_id":1,"booking_type_id":2,"scheduled_at":"2026-09-01T10:00:00Z"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %q)", w.Code, w.Body.String())
	}
	if !decodeAction(t, w).Success {
		t.Fatalf("success = false")
	}
	if f.bookedContact != 1 || f.bookedType != 2 {
		t.Errorf("facade got %d/%d; want 1/2", f.bookedContact, f.bookedType)
	}
	want := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if !f.bookedAt.Equal(want) {
		t.Errorf("scheduled_at = %v; want %v", f.bookedAt, want)
	}
}

func TestSendMessage_EmptyBodyFromService(t *testing.T) {
	f := &fakeData{err: services.ErrEmptyBody}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/messages",
		`{"conversation_id":3,"body":"   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if res := decodeAction(t, w); res.Success {
		t.Errorf("success = true on an empty body")
	}
}

func TestSendMessage_OK(t *testing.T) {
	f := &fakeData{}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/messages",
		`{"conversation_id":3,"body":"hello there"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if f.sentConv != 3 || f.sentBody != "hello there" {
		t.Errorf("facade got %d/%q", f.sentConv, f.sentBody)
	}
}

func TestSubmitForm_OK(t *testing.T) {
	f := &fakeData{}
	w := doJSON(t, newRouter(f, &fakeDrafter{}), http.MethodPost, "/public/form",
		`{"name":"Dana","email":"dana@example.com","message":"Do you take walk-ins?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if !decodeAction(t, w).Success {
		t.Fatalf("success = false")
	}
	if f.formEmail != "dana@example.com" || f.formMessage != "Do you take walk-ins?" {
		t.Errorf("facade got %q/%q", f.formEmail, f.formMessage)
	}
}

func TestSubmitForm_RequiresAllFields(t *testing.T) {
	f := &fakeData{}
	r := newRouter(f, &fakeDrafter{})
	for name, body := range map[string]string{
		"no message": `{"name":"Dana","email":"dana@example.com"}`,
		"no email":   `{"name":"Dana","message":"hi"}`,
		"bad email":  `{"name":"Dana","email":"nope","message":"hi"}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/public/form", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d; want 400", name, w.Code)
		}
	}
}

func TestDraftEmail_OK(t *testing.T) {
	d := &fakeDrafter{out: services.DraftResult{EmailDraft: "Hello,\n..."}}
	w := doJSON(t, newRouter(&fakeData{}, d), http.MethodPost, "/draft-email",
		`{"booking_details":"Initial Consultation","special_instructions":"arrive early"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var res services.DraftResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.EmailDraft == "" {
		t.Fatalf("email_draft empty")
	}
	if d.gotReq.BookingDetails != "Initial Consultation" || d.gotReq.SpecialInstructions != "arrive early" {
		t.Errorf("drafter got %+v", d.gotReq)
	}
}

func TestDraftEmail_RequiresDetails(t *testing.T) {
	w := doJSON(t, newRouter(&fakeData{}, &fakeDrafter{}), http.MethodPost, "/draft-email",
		`{"special_instructions":"arrive early"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestDraftEmail_Unavailable(t *testing.T) {
	d := &fakeDrafter{err: services.ErrDraftUnavailable}
	w := doJSON(t, newRouter(&fakeData{}, d), http.MethodPost, "/draft-email",
		`{"booking_details":"Initial Consultation"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", w.Code)
	}
}
