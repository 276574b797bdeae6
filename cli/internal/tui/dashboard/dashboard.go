// ABOUTME: Dashboard component displaying the user's challenge stats
// ABOUTME: Renders profile, friends, and challenges cards side by side

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/styles"
)

// Dashboard displays the per-user summary cards
type Dashboard struct {
	user   *client.User
	data   *client.DashboardResponse
	width  int
	height int
}

// New creates a dashboard. Data may be nil until the first load completes.
func New(user *client.User, data *client.DashboardResponse, width, height int) *Dashboard {
	return &Dashboard{
		user:   user,
		data:   data,
		width:  width,
		height: height,
	}
}

// Update replaces the dashboard data after a refresh
func (d *Dashboard) Update(user *client.User, data *client.DashboardResponse) {
	d.user = user
	d.data = data
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.data == nil {
		return styles.Subtitle.Render("Loading dashboard...")
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Dashboard"))
	sb.WriteString("\n")
	if d.user != nil {
		sb.WriteString(styles.Subtitle.Render("Welcome back, " + d.user.Username))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	cardWidth := d.cardWidth()
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel.Width(cardWidth).Render(d.profileCard()),
		styles.Panel.Width(cardWidth).Render(d.friendsCard()),
		styles.Panel.Width(cardWidth).Render(d.challengesCard()),
	)
	sb.WriteString(cards)

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}

func (d *Dashboard) profileCard() string {
	p := d.data.Profile

	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render("Profile"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Points: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", p.Points))))
	sb.WriteString(fmt.Sprintf("Level: %d\n", p.Level))
	sb.WriteString(fmt.Sprintf("Perseverance: %d\n", p.Perseverance))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Resistance: %d\n", p.ResistancePoints))
	sb.WriteString(fmt.Sprintf("Mind: %d\n", p.MindPoints))
	sb.WriteString(fmt.Sprintf("Force: %d\n", p.ForcePoints))
	sb.WriteString(fmt.Sprintf("Flexibility: %d", p.FlexibilityPoints))
	return sb.String()
}

func (d *Dashboard) friendsCard() string {
	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render("Friends"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s friends", styles.StatusOK.Render(fmt.Sprintf("%d", d.data.Friends.Count))))
	return sb.String()
}

func (d *Dashboard) challengesCard() string {
	var sb strings.Builder
	sb.WriteString(styles.ValueStyle.Render("Challenges"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s active", styles.StatusOK.Render(fmt.Sprintf("%d", d.data.Challenges.Count))))
	return sb.String()
}

// cardWidth splits the available width across the three cards
func (d *Dashboard) cardWidth() int {
	w := (d.width - 6) / 3
	if w < 20 {
		w = 20
	}
	return w
}
