package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"bukvoed/internal/words"
)

func guess(t *testing.T, s string) words.Word {
	t.Helper()
	w, err := words.Normalize(s)
	if err != nil {
		t.Fatalf("Normalize(%q) failed: %v", s, err)
	}
	return w
}

func TestFeedbackParsesValidInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("01020\n"), &out)

	p, err := c.Feedback(guess(t, "опера"))
	if err != nil {
		t.Fatalf("Feedback failed: %v", err)
	}
	if p.String() != "01020" {
		t.Errorf("pattern = %s, want 01020", p)
	}
	if !strings.Contains(out.String(), "ОПЕРА") {
		t.Errorf("output should show the guess in caps: %q", out.String())
	}
}

func TestFeedbackRepromptsOnMalformedInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("абвгд\n0102\n012345\n22222\n"), &out)

	p, err := c.Feedback(guess(t, "осень"))
	if err != nil {
		t.Fatalf("Feedback failed: %v", err)
	}
	if !p.Solved() {
		t.Errorf("pattern = %s, want 22222", p)
	}
	if got := strings.Count(out.String(), "Invalid input"); got != 3 {
		t.Errorf("expected 3 re-prompts, got %d: %q", got, out.String())
	}
}

func TestFeedbackTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  00000 \n"), &out)

	p, err := c.Feedback(guess(t, "осень"))
	if err != nil {
		t.Fatalf("Feedback failed: %v", err)
	}
	if p.String() != "00000" {
		t.Errorf("pattern = %s, want 00000", p)
	}
}

func TestFeedbackEndOfInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	_, err := c.Feedback(guess(t, "осень"))
	if !errors.Is(err, io.EOF) {
		t.Errorf("error = %v, want io.EOF", err)
	}
}
