package marketplace

import (
	"context"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	payload, err := s.api.Get(ctx, "/api/admin/settings")
	if err != nil {
		return Settings{}, err
	}
	return api.Decode[Settings](api.ExtractRecord(payload))
}

func (s *Service) UpdateSettings(ctx context.Context, settings Settings) error {
	_, err := s.api.Put(ctx, "/api/admin/settings", settings)
	return err
}
