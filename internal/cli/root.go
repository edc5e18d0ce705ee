// Package cli defines the covercomment command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes: 0 covers success and the intentional fork-PR skip, 1 covers
// usage errors, missing configuration and failed comment writes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var rootCmd = &cobra.Command{
	Use:   "covercomment",
	Short: "Post or update a coverage report comment on a GitHub pull request",
	Long:  "Covercomment renders a markdown coverage report and posts it to a pull request, replacing any coverage comment a previous CI run left behind.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print covercomment version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "covercomment version %s\n", version)
	},
}
