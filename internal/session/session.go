// Package session tracks who is signed in. It owns the admin-only policy:
// a token is adopted only after the profile behind it proves to be an admin
// account, so non-admin credentials never reach the token store.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/logging"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/token"
)

// ErrNotAdmin is returned when valid credentials belong to a non-admin account.
var ErrNotAdmin = errors.New("account does not have admin access")

const adminRole = "admin"

// Manager binds the backend auth operations to the local token store and
// remembers the signed-in profile for the lifetime of the process.
type Manager struct {
	svc    *marketplace.Service
	tokens token.Store
	log    logging.Logger

	mu   sync.RWMutex
	user *marketplace.Profile
}

func NewManager(svc *marketplace.Service, tokens token.Store, log logging.Logger) *Manager {
	return &Manager{svc: svc, tokens: tokens, log: log}
}

// Bootstrap restores a session from a previously persisted token. A token
// the backend no longer accepts is discarded silently; only transport-level
// failures surface as errors.
func (m *Manager) Bootstrap(ctx context.Context) error {
	tok, err := m.tokens.Get()
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}

	profile, err := m.svc.CurrentProfile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			m.log.Info(ctx, "stored token rejected, signing out")
			return nil
		}
		return err
	}
	if profile.Role != adminRole {
		m.log.Warn(ctx, "stored token belongs to a non-admin account, discarding")
		if err := m.tokens.Clear(); err != nil {
			return err
		}
		return nil
	}

	m.setUser(&profile)
	return nil
}

// Login signs in with the given credentials. The token is persisted only
// after the admin-role check passes.
func (m *Manager) Login(ctx context.Context, creds marketplace.Credentials) error {
	res, err := m.svc.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	if res.User.Role != adminRole {
		return ErrNotAdmin
	}
	if err := m.tokens.Set(res.Token); err != nil {
		return err
	}
	m.setUser(&res.User)
	return nil
}

// Logout clears the session. The server-side sign-out is best effort: the
// local token is cleared even when the backend call fails.
func (m *Manager) Logout(ctx context.Context) error {
	if m.IsAuthenticated() {
		if err := m.svc.SignOut(ctx); err != nil {
			m.log.Warn(ctx, "server sign-out failed", "error", err.Error())
		}
	}
	m.setUser(nil)
	return m.tokens.Clear()
}

// IsAuthenticated reports whether a token is stored and a profile has been
// adopted. A 401/403 response clears the token store, so this turns false
// as soon as the backend rejects a request.
func (m *Manager) IsAuthenticated() bool {
	tok, err := m.tokens.Get()
	if err != nil || tok == "" {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// User returns the signed-in profile, or false when signed out.
func (m *Manager) User() (marketplace.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return marketplace.Profile{}, false
	}
	return *m.user, true
}

// TokenExpiry reads the expiry claim from the stored token without
// verifying the signature. Verification is the backend's job; this is only
// used to tell the operator when they will be signed out.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	tok, err := m.tokens.Get()
	if err != nil || tok == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (m *Manager) setUser(p *marketplace.Profile) {
	m.mu.Lock()
	m.user = p
	m.mu.Unlock()
}
