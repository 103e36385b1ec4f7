package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/logging"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/token"
)

type fixture struct {
	manager *Manager
	tokens  token.Store
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := token.NewMemoryStore()
	client, err := api.NewClient(srv.Client(), srv.URL, tokens, logging.NewDefault())
	require.NoError(t, err)

	svc := marketplace.NewService(client)
	return &fixture{
		manager: NewManager(svc, tokens, logging.NewDefault()),
		tokens:  tokens,
	}
}

func storedToken(t *testing.T, s token.Store) string {
	t.Helper()
	tok, err := s.Get()
	require.NoError(t, err)
	return tok
}

func TestLogin_AdminAdoptsSession(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/sign-in", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"a1","name":"Ada","role":"admin"}}`))
	}))

	err := f.manager.Login(context.Background(),
		marketplace.Credentials{Email: "ada@doorspital.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", storedToken(t, f.tokens))
	assert.True(t, f.manager.IsAuthenticated())

	user, ok := f.manager.User()
	require.True(t, ok)
	assert.Equal(t, "Ada", user.Name)
}

func TestLogin_NonAdminRejectedWithoutPersisting(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"_id":"p1","role":"patient"}}`))
	}))

	err := f.manager.Login(context.Background(), marketplace.Credentials{})
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Empty(t, storedToken(t, f.tokens))
	assert.False(t, f.manager.IsAuthenticated())
}

func TestLogin_BadCredentials(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))

	err := f.manager.Login(context.Background(), marketplace.Credentials{})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, f.manager.IsAuthenticated())
}

func TestBootstrap_RestoresAdminSession(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"_id":"a1","name":"Ada","role":"admin"}}`))
	}))
	require.NoError(t, f.tokens.Set("tok-1"))

	require.NoError(t, f.manager.Bootstrap(context.Background()))
	assert.True(t, f.manager.IsAuthenticated())
}

func TestBootstrap_NoTokenSkipsBackend(t *testing.T) {
	called := false
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	require.NoError(t, f.manager.Bootstrap(context.Background()))
	assert.False(t, called)
	assert.False(t, f.manager.IsAuthenticated())
}

func TestBootstrap_RejectedTokenIsCleared(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
	}))
	require.NoError(t, f.tokens.Set("stale"))

	require.NoError(t, f.manager.Bootstrap(context.Background()))
	assert.Empty(t, storedToken(t, f.tokens))
	assert.False(t, f.manager.IsAuthenticated())
}

func TestBootstrap_NonAdminTokenIsDiscarded(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"_id":"p1","role":"patient"}}`))
	}))
	require.NoError(t, f.tokens.Set("tok-1"))

	require.NoError(t, f.manager.Bootstrap(context.Background()))
	assert.Empty(t, storedToken(t, f.tokens))
	assert.False(t, f.manager.IsAuthenticated())
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/sign-in":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-1","user":{"role":"admin"}}`))
		case "/api/auth/sign-out":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	require.NoError(t, f.manager.Login(context.Background(), marketplace.Credentials{}))

	require.NoError(t, f.manager.Logout(context.Background()))
	assert.Empty(t, storedToken(t, f.tokens))
	assert.False(t, f.manager.IsAuthenticated())
}

func TestTokenExpiry(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler())

	_, ok := f.manager.TokenExpiry()
	assert.False(t, ok, "no token stored")

	require.NoError(t, f.tokens.Set("not-a-jwt"))
	_, ok = f.manager.TokenExpiry()
	assert.False(t, ok, "opaque token has no claims")

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, f.tokens.Set(signed))

	got, ok := f.manager.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}
