package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var teamLimit int

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Agent and contributor scorecards",
	Long: `Render the team scorecard: level-1 assignee aggregates with individual
rankings, the year-over-year per-agent comparison, and the level-2
contributor block.`,
	RunE: runTeam,
}

func init() {
	teamCmd.Flags().IntVar(&teamLimit, "limit", 10, "Maximum entries per ranking")
	rootCmd.AddCommand(teamCmd)
}

func runTeam(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(c.Team)
	}

	renderLevel1(c)
	renderAssigneeComparison(c)
	renderLevel2(c)
	return nil
}

func renderLevel1(c *report.Catalog) {
	fmt.Println(output.Section(fmt.Sprintf("Level 1 Agents (%d)", c.Years.Current)))

	l1 := c.Team.Level1
	if !l1.Available {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Assignee performance data not available"))
		return
	}

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Agents"),
		output.StyleValue.Render(fmt.Sprintf("%d", l1.Agents)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg tickets resolved"),
		output.StyleValue.Render(l1.AvgResolved.Format("%.0f")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg resolution time"),
		output.StyleValue.Render(l1.AvgResolutionDays.Format("%.1fd")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg eng escalation"),
		output.StyleValue.Render(l1.AvgEngineeringRate.Format("%.1f%%")))
	if l1.AvgResolutionRate.Available {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Avg resolution rate"),
			output.ScoreBar(l1.AvgResolutionRate.Value, 20))
	} else {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Avg resolution rate"),
			output.StyleValue.Render("N/A"))
	}

	if len(c.Team.AssigneeRankings) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("Individual rankings (tickets resolved):"))
		tbl := output.NewTable("Rank", "Assignee", "Resolved")
		for _, r := range limitRows(c.Team.AssigneeRankings, teamLimit) {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.0f", r.Value))
		}
		tbl.Print()
	}

	fmt.Println()
}

func renderAssigneeComparison(c *report.Catalog) {
	if len(c.Team.AssigneeComparison) == 0 {
		return
	}

	fmt.Println(output.Section("Agents Year over Year"))
	fmt.Println()
	fmt.Printf(" %s\n\n", output.StyleMuted.Render(
		"Agents active in both years; tickets resolved"))

	tbl := output.NewTable("Assignee",
		fmt.Sprintf("%d", c.Years.Previous),
		fmt.Sprintf("%d", c.Years.Current),
		"Delta", "Change")

	for _, d := range c.Team.AssigneeComparison {
		tbl.AddRow(
			d.Entity,
			fmt.Sprintf("%.0f", d.Previous),
			fmt.Sprintf("%.0f", d.Current),
			fmt.Sprintf("%+.0f", d.Delta),
			changeCell(d.PctChange, false),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderLevel2(c *report.Catalog) {
	fmt.Println(output.Section(fmt.Sprintf("Level 2 Contributors (%d)", c.Years.Current)))

	l2 := c.Team.Level2
	if !l2.Available {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Contributor performance data not available"))
		return
	}

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Contributors"),
		output.StyleValue.Render(fmt.Sprintf("%d", l2.Contributors)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Tickets helped"),
		output.StyleValue.Render(l2.TicketsContributed.Format("%.0f")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total comments"),
		output.StyleValue.Render(l2.TotalComments.Format("%.0f")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg comments/ticket"),
		output.StyleValue.Render(l2.AvgCommentsPerTicket.Format("%.1f")))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg velocity/day"),
		output.StyleValue.Render(l2.AvgVelocityPerDay.Format("%.1f")))

	if len(c.Team.ContributorRankings) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("Individual rankings (tickets helped):"))
		tbl := output.NewTable("Rank", "Contributor", "Tickets")
		for _, r := range limitRows(c.Team.ContributorRankings, teamLimit) {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.0f", r.Value))
		}
		tbl.Print()
	}

	fmt.Println()
}

// limitRows truncates a ranking for display. limit <= 0 keeps all rows.
func limitRows(rows []report.RankedRow, limit int) []report.RankedRow {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
