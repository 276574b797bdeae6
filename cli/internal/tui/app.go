// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes screens through the session-backed auth guard

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
	"github.com/palomiteras-org/BestChallenges/cli/internal/session"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/dashboard"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/login"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/settings"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenSettings
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4 // Total horizontal padding from panel borders (2 each side)
)

// restoredMsg is sent when the persisted session has been checked
type restoredMsg struct {
	err error
}

// loginResultMsg is sent when a login attempt completes
type loginResultMsg struct {
	err error
}

// dashboardLoadedMsg is sent when dashboard data arrives
type dashboardLoadedMsg struct {
	data *client.DashboardResponse
	err  error
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	session *session.Manager

	screen     Screen
	width      int
	height     int
	err        error
	lastUpdate time.Time

	// Child models
	loginForm *login.Login
	dashView  *dashboard.Dashboard
	settings  *settings.Settings
}

// New creates a new TUI application starting on the login screen.
// Init restores any persisted session and skips straight to the dashboard.
func New(apiClient *client.Client, sess *session.Manager) *App {
	return &App{
		client:    apiClient,
		session:   sess,
		screen:    ScreenLogin,
		loginForm: login.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.restoreSession()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashView != nil {
			a.dashView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.settings != nil {
			a.settings.SetSize(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenDashboard:
			return a.updateDashboard(msg)
		case ScreenSettings:
			return a.updateSettings(msg)
		}

	case login.SubmitMsg:
		a.loginForm.SetSubmitting(true)
		return a, a.doLogin(msg.Identifier, msg.Password)

	case restoredMsg:
		// A rejected or missing token just means the login screen stays up.
		if a.session.IsAuthenticated() {
			return a, a.navigate(ScreenDashboard)
		}
		return a, nil

	case loginResultMsg:
		return a.handleLoginResult(msg)

	case dashboardLoadedMsg:
		return a.handleDashboardLoaded(msg)
	}

	return a, nil
}

// navigate switches to the target screen, bouncing unauthenticated
// sessions back to the login form.
func (a *App) navigate(target Screen) tea.Cmd {
	if target != ScreenLogin && !a.session.IsAuthenticated() {
		a.screen = ScreenLogin
		return nil
	}

	a.screen = target
	switch target {
	case ScreenLogin:
		return nil
	case ScreenDashboard:
		if a.dashView == nil {
			a.dashView = dashboard.New(a.session.CurrentUser(), nil, a.contentWidth(), a.contentHeight())
		}
		return a.loadDashboard()
	case ScreenSettings:
		a.settings = settings.New(a.session.CurrentUser(), a.contentWidth())
	}
	return nil
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.loginForm, cmd = a.loginForm.Update(msg)
	return a, cmd
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.err = nil
		return a, a.loadDashboard()
	case "s":
		return a, a.navigate(ScreenSettings)
	case "l":
		return a.logout("")
	}
	return a, nil
}

func (a *App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b":
		a.screen = ScreenDashboard
		a.settings = nil
		return a, nil
	case "l":
		return a.logout("")
	}
	return a, nil
}

// logout drops the session and returns to a fresh login form. A non-empty
// notice is shown on the form, used when the backend rejected the token.
func (a *App) logout(notice string) (tea.Model, tea.Cmd) {
	a.session.Logout()
	a.dashView = nil
	a.settings = nil
	a.err = nil
	a.loginForm.Reset()
	if notice != "" {
		a.loginForm.SetAuthError(notice)
	}
	a.screen = ScreenLogin
	return a, nil
}

func (a *App) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if msg.err == session.ErrSuperseded {
			return a, nil
		}
		if a.session.IsAuthenticated() {
			// Token committed but the user fetch failed. The guard lets
			// the session through; the dashboard load will retry.
			return a, a.navigate(ScreenDashboard)
		}
		if apiErr, ok := msg.err.(*client.APIError); ok {
			a.loginForm.SetAuthError(apiErr.Detail)
		} else {
			a.loginForm.SetAuthError(msg.err.Error())
		}
		return a, nil
	}

	a.loginForm.SetSubmitting(false)
	return a, a.navigate(ScreenDashboard)
}

func (a *App) handleDashboardLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if client.IsUnauthorized(msg.err) {
			return a.logout("Session expired. Please sign in again.")
		}
		a.err = msg.err
		return a, nil
	}

	a.err = nil
	a.lastUpdate = time.Now()
	if a.dashView == nil {
		a.dashView = dashboard.New(a.session.CurrentUser(), msg.data, a.contentWidth(), a.contentHeight())
	} else {
		a.dashView.Update(a.session.CurrentUser(), msg.data)
	}
	return a, nil
}

// restoreSession checks for a persisted token in the background
func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		return restoredMsg{err: a.session.Restore(context.Background())}
	}
}

// doLogin runs the login attempt in the background
func (a *App) doLogin(identifier, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: a.session.Login(context.Background(), identifier, password)}
	}
}

// loadDashboard fetches dashboard data, hydrating the user record first
// when a pending session is missing it.
func (a *App) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if a.session.CurrentUser() == nil {
			if err := a.session.Refresh(ctx); err != nil {
				return dashboardLoadedMsg{err: err}
			}
		}
		data, err := a.client.Dashboard(ctx)
		return dashboardLoadedMsg{data: data, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.loginForm.View()
	case ScreenDashboard:
		content = a.viewDashboard()
	case ScreenSettings:
		content = a.viewSettings()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewDashboard() string {
	if a.err != nil {
		return styles.StatusError.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Help.Render("Press r to retry")
	}
	if a.dashView == nil {
		return styles.Subtitle.Render("Loading dashboard...")
	}
	return a.dashView.View()
}

func (a *App) viewSettings() string {
	if a.settings == nil {
		return ""
	}
	return a.settings.View()
}

// wrapWithFrame surrounds the content with the header and footer bars
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(styles.ActivePanel.Width(a.contentWidth()).Render(content))
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// contentWidth calculates the width available inside the main panel
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - panelPadding
}

// contentHeight calculates the height available for panel content
func (a *App) contentHeight() int {
	// Header, its trailing newline, panel border and padding, newline
	// before the footer, and the footer itself.
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := " " + titleStyle.Render("BestChallenges")
	leftPlain := " BestChallenges"

	rightText := ""
	rightPlain := ""
	if user := a.session.CurrentUser(); user != nil && a.screen != ScreenLogin {
		rightText = contextStyle.Render(user.Username) + " "
		rightPlain = user.Username + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlain) - lipgloss.Width(rightPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}
	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╭─") + leftText + borderStyle.Render(fill) + rightText + borderStyle.Render("─╮")
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Tab Next field", "Enter Submit", "Esc Quit"}
	case ScreenDashboard:
		shortcuts = []string{"r Refresh", "s Settings", "l Logout", "q Quit"}
	case ScreenSettings:
		shortcuts = []string{"b Back", "l Logout", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}

	leftText := " " + strings.Join(styled, "  ")
	leftPlain := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlain := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenDashboard {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlain = "Updated " + elapsed + " "
	}

	fillWidth := width - 4 - lipgloss.Width(leftPlain) - lipgloss.Width(rightPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}
	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╰─") + leftText + borderStyle.Render(fill) + rightText + borderStyle.Render("─╯")
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// Run starts the TUI
func Run(apiClient *client.Client, sess *session.Manager) error {
	app := New(apiClient, sess)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
