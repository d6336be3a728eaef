package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/config"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/leetcode"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/readme"
	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/snapshot"
	"github.com/spf13/cobra"
)

var (
	updateFile   string
	updateUser   string
	updateDryRun bool
)

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "README to rewrite (default from config, or README.md)")
	updateCmd.Flags().StringVarP(&updateUser, "username", "u", "", "LeetCode username (default from config/env)")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Print the rendered block instead of writing the file")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch stats and rewrite the README section",
	Long: `Fetch the configured user's LeetCode statistics and replace the region
between the ` + readme.StartMarker + ` and ` + readme.EndMarker + `
markers in the target file. Everything outside the markers is untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := resolveUsername(updateUser)
		if err != nil {
			return err
		}

		target := updateFile
		if target == "" {
			target = config.ReadmePath()
		}

		opts := updateOptions{
			client:    leetcode.NewClient(),
			username:  username,
			file:      target,
			dryRun:    updateDryRun,
			configDir: config.Dir(),
		}
		return runUpdate(opts, cmd.OutOrStdout())
	},
}

type updateOptions struct {
	client    *leetcode.Client
	username  string
	file      string
	dryRun    bool
	configDir string
}

func runUpdate(opts updateOptions, out io.Writer) error {
	fmt.Fprintf(out, "Fetching LeetCode stats for %s\n", opts.username)

	stats, err := opts.client.FetchStats(opts.username)
	if err != nil {
		return fmt.Errorf("fetching stats for %s: %w", opts.username, err)
	}

	block := readme.Render(stats, time.Now())

	if opts.dryRun {
		fmt.Fprintln(out, block)
		return nil
	}

	if err := readme.UpdateFile(opts.file, block); err != nil {
		return err
	}

	fmt.Fprintf(out, "Updated %s: %d solved (%d easy / %d medium / %d hard)\n",
		opts.file, stats.TotalSolved, stats.EasySolved, stats.MediumSolved, stats.HardSolved)

	// Best-effort delta against the previous run; never fails the update.
	prev, _ := snapshot.Load(opts.configDir)
	if delta, ok := snapshot.SolvedDelta(prev, stats); ok && delta > 0 {
		fmt.Fprintf(out, "+%d solved since last run\n", delta)
	}
	_ = snapshot.Save(opts.configDir, stats)

	return nil
}
