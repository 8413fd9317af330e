package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var trendsYear int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Monthly volumes and cumulative backlog",
	Long: `Render the monthly created/resolved series with the per-month net
change and the cumulative backlog. The backlog running sum restarts at
each year boundary.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().IntVar(&trendsYear, "year", 0, "Restrict to a single year (default: all years)")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	points := c.Trends.Monthly
	if trendsYear != 0 {
		var filtered []report.MonthlyPoint
		for _, p := range points {
			if p.Year == trendsYear {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	if flagJSON {
		return writeJSON(struct {
			Available bool                  `json:"available"`
			Monthly   []report.MonthlyPoint `json:"monthly"`
		}{c.Trends.Available, points})
	}

	fmt.Println(output.Section("Monthly Volume & Backlog"))

	if !c.Trends.Available {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Monthly data not available"))
		return nil
	}
	if len(points) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render(fmt.Sprintf("No monthly data for %d", trendsYear)))
		return nil
	}

	fmt.Println()
	tbl := output.NewTable("Year", "Month", "Created", "Resolved", "Net", "Backlog")
	for _, p := range points {
		net := fmt.Sprintf("%+.0f", p.Net)
		if p.Net > 0 {
			net = output.StyleWarning.Render(net)
		}
		tbl.AddRow(
			fmt.Sprintf("%d", p.Year),
			p.Month.String()[:3],
			fmt.Sprintf("%.0f", p.Created),
			fmt.Sprintf("%.0f", p.Resolved),
			net,
			fmt.Sprintf("%.0f", p.Backlog),
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
