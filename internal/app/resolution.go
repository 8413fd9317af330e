package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var resolutionCmd = &cobra.Command{
	Use:   "resolution",
	Short: "Resolution and first-response times by severity",
	RunE:  runResolution,
}

func init() {
	rootCmd.AddCommand(resolutionCmd)
}

func runResolution(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(c.Severity)
	}

	renderSeverityTable(c, "Resolution Time by Severity", "days", c.Severity.Resolution)
	renderSeverityTable(c, "First Response Time by Severity", "hours", c.Severity.FirstResponse)
	return nil
}

func renderSeverityTable(c *report.Catalog, title, unit string, stats []report.SeverityStat) {
	fmt.Println(output.Section(title))
	fmt.Println()

	tbl := output.NewTable("Severity",
		fmt.Sprintf("%d (%s)", c.Years.Previous, unit),
		fmt.Sprintf("%d (%s)", c.Years.Current, unit),
		"Change", "Trend")

	for _, s := range stats {
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
