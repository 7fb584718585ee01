// Package services – dashboard aggregation.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Dashboard summarizes the workspace for the landing view.
type Dashboard struct {
	Bookings      int            `json:"bookings"`
	Alerts        []domain.Alert `json:"alerts"`
	ContactsCount int            `json:"contacts_count"`
}

// GetDashboard issues its three constituent reads concurrently and joins on
// all of them. The reads are independent, so ordering between them is
// irrelevant; each one routes and degrades on its own.
func (s *DataService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	tr := otel.Tracer("services/DataService")
	ctx, span := tr.Start(ctx, "GetDashboard")
	defer span.End()

	var (
		bookings []domain.Booking
		alerts   []domain.Alert
		contacts []domain.Contact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.GetBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.GetAlerts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.GetContacts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Bookings:      len(bookings),
		Alerts:        alerts,
		ContactsCount: len(contacts),
	}, nil
}
