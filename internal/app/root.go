// Package app contains the Cobra command tree for deskwatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagRefresh bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "deskwatch",
	Short: "Support desk reporting dashboard in the terminal",
	Long: `deskwatch renders the support desk's pre-computed CSV summaries as a
terminal dashboard: headline KPIs, year-over-year comparisons, team
scorecards, customer tiers, engineering analysis, and monthly trends.

Run 'deskwatch' with no arguments for the executive summary. Other views:
  team         Agent and contributor scorecards
  customers    Organization volumes and tier bands
  engineering  Escalation summary, team breakdown, categorization
  resolution   Resolution and first-response times by severity
  trends       Monthly volumes and cumulative backlog
  insights     Ranked findings derived from the metrics
  export       Write any displayed table as CSV`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummary,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the deskwatch version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("deskwatch", appVersion)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/deskwatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRefresh, "refresh", false, "Bypass the dataset cache and re-read the files")
	rootCmd.AddCommand(versionCmd)
}
