package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HeetPatel8126/Leetcode-Stats-Tracker/internal/leetcode"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	fetchUser   string
	fetchOutput string
)

func init() {
	fetchCmd.Flags().StringVarP(&fetchUser, "username", "u", "", "LeetCode username (default from config/env)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "table", "Output format: table, json, or yaml")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch stats and print them without touching any file",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := resolveUsername(fetchUser)
		if err != nil {
			return err
		}

		stats, err := leetcode.NewClient().FetchStats(username)
		if err != nil {
			return fmt.Errorf("fetching stats for %s: %w", username, err)
		}

		return printStats(cmd.OutOrStdout(), stats, fetchOutput)
	},
}

func printStats(out io.Writer, stats *leetcode.Stats, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling stats: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(stats)
		if err != nil {
			return fmt.Errorf("marshaling stats: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "table":
		fmt.Fprintf(out, "Username:        %s\n", stats.Username)
		fmt.Fprintf(out, "Ranking:         %d\n", stats.Ranking)
		fmt.Fprintf(out, "Total solved:    %d\n", stats.TotalSolved)
		fmt.Fprintf(out, "  Easy:          %d\n", stats.EasySolved)
		fmt.Fprintf(out, "  Medium:        %d\n", stats.MediumSolved)
		fmt.Fprintf(out, "  Hard:          %d\n", stats.HardSolved)
		fmt.Fprintf(out, "Acceptance rate: %.1f%%\n", stats.AcceptanceRate)
		if stats.Contest != nil {
			fmt.Fprintf(out, "Contest rating:  %.2f (%d attended)\n", stats.Contest.Rating, stats.Contest.Attended)
		}
	default:
		return fmt.Errorf("unknown output format %q (want table, json, or yaml)", format)
	}
	return nil
}
