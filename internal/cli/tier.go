package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/covercomment/internal/report"
)

var tierCmd = &cobra.Command{
	Use:   "tier <coverage-percent>",
	Short: "Print the emoji, status and badge color for a coverage percentage",
	Long: "Map a numeric coverage percentage onto the guideline tiers used in the report legend " +
		"and print \"<emoji> <status> <badge-color>\" for consumption by CI shell steps. " +
		"A trailing % on the argument is accepted.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimSuffix(strings.TrimSpace(args[0]), "%")
		percent, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid coverage percentage %q", args[0])
		}

		t := report.TierFor(percent)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", t.Emoji, t.Status, t.BadgeColor)
		return nil
	},
}
