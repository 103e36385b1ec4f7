package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error        { return f.record("whoami") }
func (f *fakeExec) Dashboard(ctx context.Context) error     { return f.record("dashboard") }
func (f *fakeExec) Users(ctx context.Context) error         { return f.record("users") }
func (f *fakeExec) Doctors(ctx context.Context) error       { return f.record("doctors") }
func (f *fakeExec) Verifications(ctx context.Context) error { return f.record("verifications") }
func (f *fakeExec) Products(ctx context.Context) error      { return f.record("products") }
func (f *fakeExec) Orders(ctx context.Context) error        { return f.record("orders") }
func (f *fakeExec) Appointments(ctx context.Context) error  { return f.record("appointments") }
func (f *fakeExec) Articles(ctx context.Context) error      { return f.record("articles") }
func (f *fakeExec) FAQs(ctx context.Context) error          { return f.record("faqs") }
func (f *fakeExec) Tickets(ctx context.Context) error       { return f.record("tickets") }
func (f *fakeExec) Settings(ctx context.Context) error      { return f.record("settings") }

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(f *fakeExec, script ...string) {
	reader := bufio.NewReader(strings.NewReader(strings.Join(script, "\n") + "\n"))
	runREPL(context.Background(), f, func() string { return "" }, reader)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)
	f := &fakeExec{}

	runScript(f, "login", "dashboard", "users", "settings", "logout", "exit")

	want := []string{"login", "dashboard", "users", "settings", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestRunREPL_GuardsCommandsWhenSignedOut(t *testing.T) {
	out := muteOutput(t)
	f := &fakeExec{}

	runScript(f, "users", "exit")

	if len(f.calls) != 0 {
		t.Fatalf("expected no handler calls, got %v", f.calls)
	}
	found := false
	for _, line := range *out {
		if strings.Contains(line, "sign in first") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sign-in hint, got %v", *out)
	}
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := muteOutput(t)
	f := &fakeExec{loggedIn: true}

	runScript(f, "frobnicate", "exit")

	found := false
	for _, line := range *out {
		if strings.Contains(line, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown-command message, got %v", *out)
	}
}

func TestRunREPL_HelpTracksLoginState(t *testing.T) {
	out := muteOutput(t)
	f := &fakeExec{}

	runScript(f, "help", "login", "help", "exit")

	var sawSignedOut, sawSignedIn bool
	for _, line := range *out {
		if line == helpSignedOut {
			sawSignedOut = true
		}
		if line == helpSignedIn {
			sawSignedIn = true
		}
	}
	if !sawSignedOut || !sawSignedIn {
		t.Errorf("help output missing variants: out=%v in=%v", sawSignedOut, sawSignedIn)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)
	f := &fakeExec{loggedIn: true}

	// No exit command: the loop must stop at EOF after the last line.
	runScript(f, "users")

	if len(f.calls) != 1 || f.calls[0] != "users" {
		t.Fatalf("calls = %v, want [users]", f.calls)
	}
}
