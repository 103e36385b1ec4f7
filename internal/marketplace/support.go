package marketplace

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// TicketQuery filters the support ticket list; zero values are omitted.
type TicketQuery struct {
	Status string
	Limit  int
	Page   int
}

func (q TicketQuery) encode() string {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Service) Tickets(ctx context.Context, q TicketQuery) ([]Ticket, error) {
	payload, err := s.api.Get(ctx, "/api/admin/support/tickets"+q.encode())
	if err != nil {
		return nil, err
	}
	return api.DecodeList[Ticket](payload)
}

func (s *Service) UpdateTicketStatus(ctx context.Context, id, status string) error {
	_, err := s.api.Patch(ctx, "/api/admin/support/tickets/"+id+"/status",
		map[string]string{"status": status})
	return err
}
