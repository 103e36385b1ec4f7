package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  admin@doorspital.com  \n"))

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "admin@doorspital.com" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter email") {
		t.Errorf("prompt missing from output: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "no-newline" {
		t.Errorf("got %q", got)
	}
}

func TestGetSimpleText_EmptyInputAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(reader, "Prompt", &out); err == nil {
		t.Error("expected error on empty EOF")
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Errorf("prompt missing from output: %q", out.String())
	}
}
