package marketplace

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// Dashboard aggregates the landing-page data fetched from five endpoints.
type Dashboard struct {
	Overview             Overview
	Reports              Reports
	PendingVerifications []Verification
	OpenTickets          []Ticket
	TopDoctors           []TopDoctor
}

// LoadDashboard fetches all dashboard sections in parallel and waits for all
// of them to settle. Any failure cancels the rest and fails the whole load;
// the caller renders either a complete dashboard or an error, never a
// partial one.
func (s *Service) LoadDashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		payload, err := s.api.Get(gctx, "/api/admin/dashboard/overview")
		if err != nil {
			return err
		}
		d.Overview, err = api.Decode[Overview](api.ExtractRecord(payload))
		return err
	})
	g.Go(func() error {
		payload, err := s.api.Get(gctx, "/api/admin/reports")
		if err != nil {
			return err
		}
		d.Reports, err = api.Decode[Reports](api.ExtractRecord(payload))
		return err
	})
	g.Go(func() error {
		var err error
		d.PendingVerifications, err = s.Verifications(gctx,
			VerificationQuery{Type: "doctor", Status: "pending", Limit: 5, Page: 1})
		return err
	})
	g.Go(func() error {
		var err error
		d.OpenTickets, err = s.Tickets(gctx, TicketQuery{Status: "open", Limit: 5, Page: 1})
		return err
	})
	g.Go(func() error {
		var err error
		d.TopDoctors, err = s.TopDoctors(gctx, 5)
		return err
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
