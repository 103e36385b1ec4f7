package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Doctors(ctx context.Context) error
	Verifications(ctx context.Context) error
	Products(ctx context.Context) error
	Orders(ctx context.Context) error
	Appointments(ctx context.Context) error
	Articles(ctx context.Context) error
	FAQs(ctx context.Context) error
	Tickets(ctx context.Context) error
	Settings(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, exit"
	helpSignedIn  = "Available commands: dashboard, users, doctors, verifications, products, " +
		"orders, appointments, articles, faqs, tickets, settings, whoami, logout, exit"
)

// runREPL starts a read-eval-print loop over the admin console.
//
// It reads a line from the reader, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on EOF or when the user types "exit" or "quit".
// The same reader is shared with the interactive prompts inside command
// handlers, so a single buffer sees all input.
//
// Every command except login/help/exit requires a signed-in admin; the
// dispatch rejects the rest with a hint instead of calling the handler, so
// handlers can assume an authenticated session.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	guarded := map[string]func(context.Context) error{
		"dashboard":     a.Dashboard,
		"users":         a.Users,
		"doctors":       a.Doctors,
		"verifications": a.Verifications,
		"products":      a.Products,
		"orders":        a.Orders,
		"appointments":  a.Appointments,
		"articles":      a.Articles,
		"faqs":          a.FAQs,
		"tickets":       a.Tickets,
		"settings":      a.Settings,
		"whoami":        a.WhoAmI,
		"logout":        a.Logout,
	}

	for {
		printlnFn(fmt.Sprintf("doorspital %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		atEOF := err != nil
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if atEOF {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			handler, ok := guarded[cmd]
			switch {
			case !ok:
				printlnFn("Unknown command:", cmd)
			case !a.isLoggedIn():
				printlnFn("Please sign in first (type 'login')")
			default:
				_ = handler(ctx)
			}
		}

		if atEOF {
			return
		}
	}
}
