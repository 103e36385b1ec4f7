package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and opens an admin session. Non-admin
// accounts are rejected without persisting the token.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.session.Login(ctx, marketplace.Credentials{Email: email, Password: password})
	switch {
	case err == nil:
		user, _ := a.session.User()
		fmt.Fprintf(a.out, "Signed in as %s\n", user.Email)
		return nil
	case errors.Is(err, session.ErrNotAdmin):
		fmt.Fprintln(a.out, "This console is for admin accounts only")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Backend is unreachable, try again later")
	default:
		fmt.Fprintf(a.out, "Sign-in failed: %s\n", err.Error())
	}
	return err
}

// Logout ends the session and drops the local snapshot cache.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout did not fully clear local state", "error", err.Error())
	}
	if a.snapshots != nil {
		if err := a.snapshots.Clear(ctx); err != nil {
			a.log.Warn(ctx, "could not clear snapshot cache", "error", err.Error())
		}
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// WhoAmI prints the signed-in profile and, when the token carries an expiry
// claim, how long the session has left.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Session expires %s (%s)\n",
			exp.Format(time.RFC822), time.Until(exp).Round(time.Minute))
	}
	return nil
}
