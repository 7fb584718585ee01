package services

import (
	"context"
	"errors"
	"testing"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
	"github.com/opsdesk/opsdesk-backend/internal/gateway"
)

func TestGetDashboard_MockMode(t *testing.T) {
	s := mockService(t)

	d, err := s.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if d.Bookings != 3 {
		t.Errorf("bookings = %d; want 3", d.Bookings)
	}
	if d.ContactsCount != 3 {
		t.Errorf("contacts = %d; want 3", d.ContactsCount)
	}
	if len(d.Alerts) != 2 {
		t.Errorf("alerts = %d; want 2", len(d.Alerts))
	}
}

func TestGetDashboard_RemoteMode(t *testing.T) {
	up := newFakeUpstream()
	up.bookings = []domain.Booking{
		{ID: 1, ContactID: 1, BookingTypeID: 1, Status: domain.BookingScheduled},
	}
	up.contacts = []domain.Contact{
		{ID: 1, Name: "Remote One", Email: "one@example.com"},
		{ID: 2, Name: "Remote Two", Email: "two@example.com"},
	}
	up.alerts = []domain.Alert{{ID: 1, Message: "remote alert"}}
	s := remoteService(t, up)

	d, err := s.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if d.Bookings != 1 || d.ContactsCount != 2 || len(d.Alerts) != 1 {
		t.Errorf("dashboard = %+v; want remote counts 1/2/1", d)
	}
}

func TestGetDashboard_FallsBackWhenUpstreamDown(t *testing.T) {
	up := newFakeUpstream()
	up.err = gateway.ErrUnavailable
	s := remoteService(t, up)

	d, err := s.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if d.Bookings != 3 || d.ContactsCount != 3 || len(d.Alerts) != 2 {
		t.Errorf("dashboard = %+v; want seeded counts 3/3/2", d)
	}
}

func TestGetDashboard_PropagatesHardErrors(t *testing.T) {
	up := newFakeUpstream()
	up.err = errors.New("auth rejected")
	s := remoteService(t, up)

	if _, err := s.GetDashboard(context.Background()); err == nil {
		t.Fatalf("GetDashboard succeeded; want the non-degradable error to propagate")
	}
}
