package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var engineeringCmd = &cobra.Command{
	Use:   "engineering",
	Short: "Escalation summary, team breakdown, categorization",
	Long: `Render engineering analysis: the escalation summary metrics, the
per-team ticket breakdown, and the dual-axis ticket categorization
(subject-matter category and ticket type are independent label axes).`,
	RunE: runEngineering,
}

func init() {
	rootCmd.AddCommand(engineeringCmd)
}

func runEngineering(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(c.Engineering)
	}

	renderEngSummary(c)
	renderEngTeams(c)
	renderCategorization(c)
	return nil
}

func renderEngSummary(c *report.Catalog) {
	fmt.Println(output.Section("Engineering Involvement"))

	if !c.Engineering.SummaryAvailable {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Engineering summary data not available"))
		return
	}

	fmt.Println()
	tbl := output.NewTable("Metric",
		fmt.Sprintf("%d", c.Years.Previous),
		fmt.Sprintf("%d", c.Years.Current),
		"Change", "Trend")

	for _, m := range c.Engineering.Summary {
		format := "%.0f"
		if m.Points {
			format = "%.1f%%"
		}
		tbl.AddRow(
			m.Metric,
			m.Previous.Format(format),
			m.Current.Format(format),
			changeCell(m.Change, m.Points),
			trendCell(m.Change, m.Points, true),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderEngTeams(c *report.Catalog) {
	fmt.Println(output.Section("Escalations by Engineering Team"))

	if !c.Engineering.TeamsAvailable {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Engineering team data not available"))
		return
	}

	fmt.Println()
	tbl := output.NewTable("Team",
		fmt.Sprintf("%d", c.Years.Previous),
		fmt.Sprintf("%d", c.Years.Current),
		"Change", "Trend")

	for _, t := range c.Engineering.Teams {
		tbl.AddRow(
			t.Team,
			t.Previous.Format("%.0f"),
			t.Current.Format("%.0f"),
			changeCell(t.Change, false),
			trendCell(t.Change, false, true),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderCategorization(c *report.Catalog) {
	fmt.Println(output.Section("Ticket Categorization"))

	cb := c.Engineering.Categorization
	if !cb.Available {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Categorization data not available"))
		return
	}

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Tickets classified"),
		output.StyleValue.Render(fmt.Sprintf("%d", cb.Tickets)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg confidence"),
		output.StyleValue.Render(cb.AvgConfidence.Format("%.2f")))

	if len(cb.Categories) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("By category:"))
		tbl := output.NewTable("Category", "Tickets", "Share")
		for _, row := range cb.Categories {
			tbl.AddRow(row.Label, fmt.Sprintf("%d", row.Count), fmt.Sprintf("%.0f%%", row.Share))
		}
		tbl.Print()
	}

	if len(cb.Types) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("By ticket type:"))
		tbl := output.NewTable("Type", "Tickets", "Share")
		for _, row := range cb.Types {
			tbl.AddRow(row.Label, fmt.Sprintf("%d", row.Count), fmt.Sprintf("%.0f%%", row.Share))
		}
		tbl.Print()
	}

	fmt.Println()
}
