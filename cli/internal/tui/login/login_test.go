// ABOUTME: Tests for login form validation and submit behavior
// ABOUTME: Drives the form with key messages and inspects field errors

package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressEnter(l *Login) (*Login, tea.Cmd) {
	return l.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func typeText(l *Login, text string) *Login {
	for _, r := range text {
		l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return l
}

func TestSubmitEmptyForm(t *testing.T) {
	l := New()

	// Enter on the identifier field moves focus; enter on password submits.
	l, _ = pressEnter(l)
	l, cmd := pressEnter(l)

	if cmd != nil {
		t.Error("expected no submit command for invalid form")
	}

	errs := l.FieldErrors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
	if errs[0] != "Username or email is required" {
		t.Errorf("unexpected identifier error: %q", errs[0])
	}
	if errs[1] != "Password is required" {
		t.Errorf("unexpected password error: %q", errs[1])
	}
}

func TestSubmitShortPassword(t *testing.T) {
	l := New()
	l = typeText(l, "testuser")
	l, _ = pressEnter(l)
	l = typeText(l, "short")
	l, cmd := pressEnter(l)

	if cmd != nil {
		t.Error("expected no submit command for short password")
	}

	errs := l.FieldErrors()
	if len(errs) != 1 || errs[0] != "Password must be at least 8 characters" {
		t.Errorf("expected short-password error, got %v", errs)
	}
}

func TestSubmitValidForm(t *testing.T) {
	l := New()
	l = typeText(l, "testuser")
	l, _ = pressEnter(l)
	l = typeText(l, "password123")
	l, cmd := pressEnter(l)

	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", cmd())
	}
	if msg.Identifier != "testuser" {
		t.Errorf("got identifier %q, want testuser", msg.Identifier)
	}
	if msg.Password != "password123" {
		t.Errorf("got password %q, want password123", msg.Password)
	}
	if len(l.FieldErrors()) != 0 {
		t.Errorf("expected no field errors, got %v", l.FieldErrors())
	}
}

func TestRevalidationClearsErrors(t *testing.T) {
	l := New()
	l, _ = pressEnter(l)
	l, _ = pressEnter(l)
	if len(l.FieldErrors()) == 0 {
		t.Fatal("expected errors from empty submit")
	}

	l.Reset()
	l = typeText(l, "john@example.com")
	l, _ = pressEnter(l)
	l = typeText(l, "securepass")
	l, cmd := pressEnter(l)

	if cmd == nil {
		t.Fatal("expected a submit command after fixing the form")
	}
	if len(l.FieldErrors()) != 0 {
		t.Errorf("expected no field errors, got %v", l.FieldErrors())
	}
}

func TestSubmittingBlocksInput(t *testing.T) {
	l := New()
	l.SetSubmitting(true)

	l = typeText(l, "ignored")
	l, cmd := pressEnter(l)
	if cmd != nil {
		t.Error("expected input to be ignored while submitting")
	}

	if !strings.Contains(l.View(), "Signing in...") {
		t.Error("expected in-flight indicator in view")
	}
}

func TestAuthErrorShown(t *testing.T) {
	l := New()
	l.SetAuthError("Incorrect username/email or password")

	view := l.View()
	if !strings.Contains(view, "Authentication Error") {
		t.Error("expected auth error heading in view")
	}
	if !strings.Contains(view, "Incorrect username/email or password") {
		t.Error("expected backend detail in view")
	}
}
