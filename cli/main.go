// ABOUTME: Entry point for the bestchallenges CLI
// ABOUTME: Terminal client and interactive dashboard for the BestChallenges API

package main

import (
	"fmt"
	"os"

	"github.com/palomiteras-org/BestChallenges/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
