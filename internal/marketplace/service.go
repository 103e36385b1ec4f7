package marketplace

import (
	"context"
	"errors"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// Service wraps the API client with one method per admin operation. Methods
// group by resource across the files of this package.
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Ping checks backend reachability; any HTTP reply, even an error status,
// means the server is up.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.api.Get(ctx, "/api/health")
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return nil
	}
	return err
}
