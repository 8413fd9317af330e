package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Executive summary with headline KPIs and YoY comparison",
	Long: `Render the executive summary: current-year headline KPIs, resolution
time by severity, and the year-over-year comparison table.

Any metric whose source file is missing renders as N/A; the rest of the
report is unaffected.`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(struct {
			Years      report.Years             `json:"years"`
			Summary    report.SummaryKPIs       `json:"summary"`
			Severity   report.SeverityBreakdown `json:"severity"`
			Comparison []report.ComparisonRow   `json:"comparison"`
		}{c.Years, c.Summary, c.Severity, c.Comparison})
	}

	renderHeadline(c)
	renderSeverityCards(c)
	renderComparison(c)
	return nil
}

func renderHeadline(c *report.Catalog) {
	fmt.Println(output.Section(fmt.Sprintf("Headline (%d)", c.Years.Current)))

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total tickets"),
		output.StyleValue.Render(c.Summary.TotalTickets.Format("%.0f")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Engineering involvement"),
		output.StyleValue.Render(c.Summary.EngInvolvement.Format("%.1f%%")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg first response"),
		output.StyleValue.Render(c.Summary.AvgFirstResponse.Format("%.0f hrs")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg resolution"),
		output.StyleValue.Render(c.Summary.AvgResolution.Format("%.0f days")))

	fmt.Println()
}

func renderSeverityCards(c *report.Catalog) {
	fmt.Println(output.Section("Resolution Time by Severity"))
	fmt.Println()

	tbl := output.NewTable("Severity",
		fmt.Sprintf("%d (days)", c.Years.Previous),
		fmt.Sprintf("%d (days)", c.Years.Current),
		"Change", "Trend")

	for _, s := range c.Severity.Resolution {
		tbl.AddRow(
			s.Severity,
			s.Previous.Format("%.0f"),
			s.Current.Format("%.0f"),
			changeCell(s.Change, false),
			trendCell(s.Change, false, true),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderComparison(c *report.Catalog) {
	fmt.Println(output.Section("Year over Year"))
	fmt.Println()

	tbl := output.NewTable("Metric",
		fmt.Sprintf("%d", c.Years.Previous),
		fmt.Sprintf("%d", c.Years.Current),
		"Change", "Trend")

	for _, row := range c.Comparison {
		format := "%.0f"
		if row.Points {
			format = "%.1f%%"
		}
		tbl.AddRow(
			row.Metric,
			row.Previous.Format(format),
			row.Current.Format(format),
			changeCell(row.Change, row.Points),
			trendCell(row.Change, row.Points, row.LowerIsBetter),
		)
	}
	tbl.Print()
	fmt.Println()
}
