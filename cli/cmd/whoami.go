// ABOUTME: Whoami command for the bestchallenges CLI
// ABOUTME: Resolves the stored token to the signed-in account

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/palomiteras-org/BestChallenges/cli/internal/client"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Long:  `Validate the stored session token against the backend and show the account it belongs to.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runWhoami(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami restores the session and prints the account, returning exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	_, sess := newSession()
	if err := sess.Restore(ctx); err != nil {
		if client.IsUnauthorized(err) {
			fmt.Fprintln(w, "Not logged in")
			return 1
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	user := sess.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Not logged in")
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]interface{}{
			"username":  user.Username,
			"email":     user.Email,
			"is_active": user.IsActive,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "%s <%s>\n", user.Username, user.Email)
	}

	return 0
}
