// ABOUTME: Settings screen showing the signed-in account details
// ABOUTME: Account editing is display-only until the backend grows update endpoints

package settings

import (
	"strings"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/styles"
)

// Settings displays the account details for the signed-in user
type Settings struct {
	user  *client.User
	width int
}

// New creates a settings screen for the given user
func New(user *client.User, width int) *Settings {
	return &Settings{user: user, width: width}
}

// SetSize updates the available width
func (s *Settings) SetSize(width int) {
	s.width = width
}

// View renders the settings screen
func (s *Settings) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Settings"))
	sb.WriteString("\n\n")

	if s.user == nil {
		sb.WriteString(styles.Subtitle.Render("Loading account..."))
		return sb.String()
	}

	sb.WriteString("Account\n")
	sb.WriteString("  Username: " + styles.ValueStyle.Render(s.user.Username) + "\n")
	sb.WriteString("  Email:    " + styles.ValueStyle.Render(s.user.Email) + "\n")
	status := styles.StatusOK.Render("active")
	if !s.user.IsActive {
		status = styles.StatusError.Render("inactive")
	}
	sb.WriteString("  Status:   " + status + "\n\n")

	sb.WriteString("Security\n")
	sb.WriteString("  Change password " + styles.Subtitle.Render("(coming soon)") + "\n")

	return sb.String()
}
