package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/cache"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/config"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/logging"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/session"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/token"
)

// App wires the admin console together: backend client, session, snapshot
// cache, and the interactive REPL.
type App struct {
	config    *config.Config
	log       logging.Logger
	svc       *marketplace.Service
	session   *session.Manager
	snapshots *cache.Snapshots

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	tokens := newTokenStore(cfg)

	client, err := api.NewClient(&http.Client{}, cfg.BaseURL, tokens, log)
	if err != nil {
		return nil, err
	}
	svc := marketplace.NewService(client)

	app := &App{
		config:  cfg,
		log:     log,
		svc:     svc,
		session: session.NewManager(svc, tokens, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// The cache is advisory: a failure to open it degrades to online-only,
	// it never blocks startup.
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0o700); err != nil {
		log.Warn(ctx, "cache directory unavailable", "error", err.Error())
		return app, nil
	}
	snaps, err := cache.Open(ctx, cfg.CachePath)
	if err != nil {
		log.Warn(ctx, "snapshot cache unavailable", "error", err.Error())
		return app, nil
	}
	app.snapshots = snaps
	return app, nil
}

func newTokenStore(cfg *config.Config) token.Store {
	switch cfg.TokenBackend {
	case "file":
		return token.NewFileStore(cfg.TokenFile)
	case "memory":
		return token.NewMemoryStore()
	default:
		return token.NewKeyringStore()
	}
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err.Error())
	}
	if user, ok := a.session.User(); ok {
		a.log.Info(ctx, "session restored", "user", user.Email)
	}

	runREPL(ctx, a, a.status, a.reader)

	a.Close()
}

func (a *App) Close() {
	if a.snapshots != nil {
		_ = a.snapshots.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is the REPL prompt suffix: the signed-in admin's email, if any.
// It goes through IsAuthenticated so that a mid-session 401, which clears
// the token store, drops the profile from the prompt immediately.
func (a *App) status() string {
	if !a.session.IsAuthenticated() {
		return ""
	}
	user, _ := a.session.User()
	return "(" + user.Email + ")"
}
