package marketplace

import (
	"context"
	"errors"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// ErrPasswordTooShort is returned by CreateAdmin before any request is sent.
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

func (s *Service) Users(ctx context.Context) ([]User, error) {
	payload, err := s.api.Get(ctx, "/api/admin/users")
	if err != nil {
		return nil, err
	}
	return api.DecodeList[User](payload)
}

func (s *Service) User(ctx context.Context, id string) (User, error) {
	payload, err := s.api.Get(ctx, "/api/admin/users/"+id)
	if err != nil {
		return User{}, err
	}
	return api.Decode[User](api.ExtractRecord(payload))
}

func (s *Service) UpdateUserRole(ctx context.Context, id, role string) error {
	_, err := s.api.Put(ctx, "/api/admin/users/"+id+"/role", map[string]string{"role": role})
	return err
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, "/api/admin/users/"+id)
	return err
}

// BulkDeleteUsers removes every listed user in one call.
func (s *Service) BulkDeleteUsers(ctx context.Context, ids []string) error {
	_, err := s.api.Post(ctx, "/api/admin/users/bulk-delete", map[string]any{"userIds": ids})
	return err
}

// AdminInput carries the fields for registering a new admin account.
type AdminInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAdmin registers a new admin account. The minimum password length
// mirrors the backend's; checking it here saves a round trip. The response
// may carry a token for the new account, which is ignored: the operator's
// own session stays in place.
func (s *Service) CreateAdmin(ctx context.Context, input AdminInput) error {
	if len(input.Password) < 6 {
		return ErrPasswordTooShort
	}
	_, err := s.api.Post(ctx, "/api/admin/sign-up", input)
	return err
}
