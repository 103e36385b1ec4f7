package marketplace

import (
	"context"
	"errors"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
)

// ErrNoToken is returned when a sign-in response carries no usable token.
var ErrNoToken = errors.New("sign-in response missing token")

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult is the backend's sign-in response: the bearer token plus the
// signed-in profile. The caller decides whether to adopt it as a session.
type SignInResult struct {
	Token string
	User  Profile
}

type signInDTO struct {
	Token       string  `json:"token"`
	AccessToken string  `json:"accessToken"`
	User        Profile `json:"user"`
}

// SignIn authenticates against the backend. It does not persist anything.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (SignInResult, error) {
	payload, err := s.api.Post(ctx, "/api/auth/sign-in", creds)
	if err != nil {
		return SignInResult{}, err
	}

	dto, err := api.Decode[signInDTO](api.ExtractRecord(payload))
	if err != nil {
		return SignInResult{}, err
	}

	tok := dto.Token
	if tok == "" {
		tok = dto.AccessToken
	}
	if tok == "" {
		return SignInResult{}, ErrNoToken
	}
	return SignInResult{Token: tok, User: dto.User}, nil
}

// SignOut invalidates the session server-side.
func (s *Service) SignOut(ctx context.Context) error {
	_, err := s.api.Post(ctx, "/api/auth/sign-out", nil)
	return err
}

// CurrentProfile fetches the profile bound to the current token.
func (s *Service) CurrentProfile(ctx context.Context) (Profile, error) {
	payload, err := s.api.Get(ctx, "/api/profile/me")
	if err != nil {
		return Profile{}, err
	}
	return api.Decode[Profile](api.ExtractRecord(payload))
}
