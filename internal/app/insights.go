package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/insight"
	"github.com/coveline/deskwatch/internal/output"
	"github.com/spf13/cobra"
)

var insightsLimit int

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Ranked findings derived from the metrics",
	Long: `Run the built-in rules over the computed catalogue and list the
findings ranked by impact: worsening severities, rising escalations,
backlog growth, and customer concentration.`,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().IntVar(&insightsLimit, "limit", 0, "Maximum findings to show (0 = all)")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	engine := insight.NewEngine()
	findings := engine.Run(c)
	if insightsLimit > 0 && len(findings) > insightsLimit {
		findings = findings[:insightsLimit]
	}

	if flagJSON {
		return writeJSON(findings)
	}

	fmt.Println(output.Section("Insights"))
	fmt.Println()

	if len(findings) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No findings. Nothing moved in the wrong direction."))
		return nil
	}

	for _, f := range findings {
		title := f.Title
		switch f.Priority {
		case insight.PriorityCritical:
			title = output.StyleError.Render(title)
		case insight.PriorityHigh:
			title = output.StyleWarning.Render(title)
		default:
			title = output.StyleBold.Render(title)
		}

		fmt.Printf(" %s %s\n", title,
			output.StyleMuted.Render(fmt.Sprintf("[%s]", f.Category)))
		fmt.Printf("   %s\n\n", f.Detail)
	}

	return nil
}
