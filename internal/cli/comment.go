package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/covercomment/internal/adapter/driven/github"
	"github.com/ericfisherdev/covercomment/internal/application"
	"github.com/ericfisherdev/covercomment/internal/config"
	"github.com/ericfisherdev/covercomment/internal/domain/model"
	"github.com/ericfisherdev/covercomment/internal/event"
	"github.com/ericfisherdev/covercomment/internal/report"
)

var flagDryRun bool

var commentCmd = &cobra.Command{
	Use:   "comment <pr-number> <coverage> <emoji> <status> <badge-color> [report-path]",
	Short: "Post or update the coverage comment on a pull request",
	Long: "Render the coverage report markdown and post it to the given PR. " +
		"An existing bot-authored coverage comment is updated in place; otherwise a new comment is created. " +
		"Fork PRs are skipped (exit 0) since CI lacks write credentials for them.",
	Args: cobra.RangeArgs(5, 6),
	RunE: func(cmd *cobra.Command, args []string) error {
		prNumber, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid PR number %q", args[0])
		}

		sum := model.CoverageSummary{
			Coverage:   args[1],
			Emoji:      args[2],
			Status:     args[3],
			BadgeColor: args[4],
		}
		reportPath := report.DefaultReportPath
		if len(args) == 6 {
			reportPath = args[5]
		}

		if flagDryRun {
			fmt.Fprint(cmd.OutOrStdout(), report.Format(sum, reportPath))
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitFailure
			return nil
		}

		if event.IsForkPR(cfg.EventPath) {
			slog.Info("fork PR detected, skipping comment (no write permissions)")
			return nil
		}

		body := report.Format(sum, reportPath)

		client, err := githubadapter.NewClient(cfg.GitHubToken, cfg.APIBaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitFailure
			return nil
		}

		svc := application.NewCommentService(client)
		if err := svc.Upsert(cmd.Context(), cfg.GitHubRepository, prNumber, body); err != nil {
			slog.Error("posting coverage comment failed", "error", err)
			exitCode = ExitFailure
			return nil
		}

		return nil
	},
}

func init() {
	commentCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Render the comment body to stdout without contacting GitHub")
}
