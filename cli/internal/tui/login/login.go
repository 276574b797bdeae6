// ABOUTME: Login form component with per-field validation
// ABOUTME: Collects username/email and password, reporting submit attempts upward

package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/styles"
)

// minPasswordLength matches the backend's password policy.
const minPasswordLength = 8

// SubmitMsg is sent when the form passes validation and the user submits.
type SubmitMsg struct {
	Identifier string
	Password   string
}

const (
	fieldIdentifier = iota
	fieldPassword
	fieldCount
)

// Login is the sign-in form.
type Login struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	fieldErrs  [fieldCount]string
	submitting bool
	authErr    string
}

// New creates the login form with the identifier field focused.
func New() *Login {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.CharLimit = 128
	identifier.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &Login{
		inputs: [fieldCount]textinput.Model{identifier, password},
	}
}

// SetSubmitting toggles the in-flight indicator and disables input.
func (l *Login) SetSubmitting(submitting bool) {
	l.submitting = submitting
	if submitting {
		l.authErr = ""
	}
}

// SetAuthError shows a failed-attempt message from the backend.
func (l *Login) SetAuthError(detail string) {
	l.submitting = false
	l.authErr = detail
}

// Reset clears both fields and all errors.
func (l *Login) Reset() {
	for i := range l.inputs {
		l.inputs[i].SetValue("")
		l.fieldErrs[i] = ""
	}
	l.authErr = ""
	l.submitting = false
	l.setFocus(fieldIdentifier)
}

// Update handles key input for the form.
func (l *Login) Update(msg tea.Msg) (*Login, tea.Cmd) {
	if l.submitting {
		return l, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		l.setFocus((l.focus + 1) % fieldCount)
		return l, nil

	case "shift+tab", "up":
		l.setFocus((l.focus + fieldCount - 1) % fieldCount)
		return l, nil

	case "enter":
		if l.focus == fieldIdentifier {
			l.setFocus(fieldPassword)
			return l, nil
		}
		return l, l.submit()
	}

	var cmd tea.Cmd
	l.inputs[l.focus], cmd = l.inputs[l.focus].Update(msg)
	return l, cmd
}

func (l *Login) setFocus(field int) {
	l.focus = field
	for i := range l.inputs {
		if i == field {
			l.inputs[i].Focus()
		} else {
			l.inputs[i].Blur()
		}
	}
}

// submit validates the form. On success it emits a SubmitMsg; on failure
// it records the per-field messages and keeps focus in place.
func (l *Login) submit() tea.Cmd {
	identifier := strings.TrimSpace(l.inputs[fieldIdentifier].Value())
	password := l.inputs[fieldPassword].Value()

	if !l.validate(identifier, password) {
		return nil
	}

	return func() tea.Msg {
		return SubmitMsg{Identifier: identifier, Password: password}
	}
}

func (l *Login) validate(identifier, password string) bool {
	l.fieldErrs = [fieldCount]string{}

	if identifier == "" {
		l.fieldErrs[fieldIdentifier] = "Username or email is required"
	}
	switch {
	case password == "":
		l.fieldErrs[fieldPassword] = "Password is required"
	case len(password) < minPasswordLength:
		l.fieldErrs[fieldPassword] = "Password must be at least 8 characters"
	}

	return l.fieldErrs[fieldIdentifier] == "" && l.fieldErrs[fieldPassword] == ""
}

// FieldErrors returns the current validation messages, empty when valid.
func (l *Login) FieldErrors() []string {
	var errs []string
	for _, e := range l.fieldErrs {
		if e != "" {
			errs = append(errs, e)
		}
	}
	return errs
}

// View renders the form.
func (l *Login) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Sign in"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Use your BestChallenges account"))
	sb.WriteString("\n\n")

	labels := [fieldCount]string{"Username or email", "Password"}
	for i := range l.inputs {
		sb.WriteString(labels[i])
		sb.WriteString("\n")
		sb.WriteString(l.inputs[i].View())
		sb.WriteString("\n")
		if l.fieldErrs[i] != "" {
			sb.WriteString(styles.FieldError.Render(l.fieldErrs[i]))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if l.submitting {
		sb.WriteString(styles.Subtitle.Render("Signing in..."))
		sb.WriteString("\n")
	} else if l.authErr != "" {
		sb.WriteString(styles.StatusError.Render("Authentication Error"))
		sb.WriteString("\n")
		sb.WriteString(l.authErr)
		sb.WriteString("\n")
	}

	return sb.String()
}
