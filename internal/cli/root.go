package cli

import (
	"fmt"
	"os"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/branding"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/config"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/updater"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` fetches your LeetCode solve counts, ranking, and
contest results, and rewrites the marked section of a README file with them.
Designed to run from a daily scheduled workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up LEETCODE_* vars from a local .env if present.
		_ = godotenv.Load()
		config.Load()

		// Non-blocking banner from the cached release check.
		ch := updater.New(buildVersion)
		ch.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
