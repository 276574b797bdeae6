// ABOUTME: Root command for the bestchallenges CLI
// ABOUTME: Handles global flags and launches the TUI when run bare

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
	"github.com/palomiteras-org/BestChallenges/cli/internal/session"
	"github.com/palomiteras-org/BestChallenges/cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000"

// rootCmd is the base command. Run without a subcommand it starts the TUI.
var rootCmd = &cobra.Command{
	Use:   "bestchallenges",
	Short: "Terminal client for BestChallenges",
	Long: `bestchallenges is a terminal client for the BestChallenges API.

Run it without arguments to open the interactive dashboard, or use the
subcommands for scripting.

Environment Variables:
  BESTCHALLENGES_API_URL  Backend API URL (default: http://localhost:8000)`,
	Run: func(cmd *cobra.Command, args []string) {
		apiClient, sess := newSession()
		if err := tui.Run(apiClient, sess); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides BESTCHALLENGES_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("BESTCHALLENGES_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession builds the API client and a session manager backed by the
// persisted token, wired so requests carry the session's bearer token.
func newSession() (*client.Client, *session.Manager) {
	apiClient := client.New(GetAPIURL())
	sess := session.New(apiClient, session.NewFileStore(session.DefaultConfigDir()))
	apiClient.SetTokenSource(sess)
	return apiClient, sess
}
