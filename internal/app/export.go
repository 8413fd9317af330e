package app

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Export a computed table as CSV",
	Long: `Write one of the computed tables as CSV to stdout or to a file.

Available tables:
  summary       year-over-year comparison rows
  resolution    resolution time by severity
  frt           first response time by severity
  organizations per-organization volumes and tiers
  tiers         tier band summary
  eng-summary   engineering involvement metrics
  eng-teams     escalations by engineering team
  assignees     assignee resolution rankings
  contributors  contributor comment rankings
  monthly       monthly volumes and backlog`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	name := strings.ToLower(args[0])
	tbl, err := exportTable(c, name)
	if err != nil {
		return err
	}

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	return tbl.WriteCSV(w)
}

func exportTable(c *report.Catalog, name string) (*output.Table, error) {
	switch name {
	case "summary":
		tbl := output.NewTable("Metric",
			fmt.Sprintf("%d", c.Years.Previous),
			fmt.Sprintf("%d", c.Years.Current),
			"Change")
		for _, m := range c.Comparison {
			tbl.AddRow(m.Metric,
				m.Previous.Format("%.1f"),
				m.Current.Format("%.1f"),
				changeText(m.Change, m.Points))
		}
		return tbl, nil

	case "resolution":
		return severityCSV(c, "Resolution Days", c.Severity.Resolution), nil

	case "frt":
		return severityCSV(c, "FRT Hours", c.Severity.FirstResponse), nil

	case "organizations":
		tbl := output.NewTable("Organization",
			fmt.Sprintf("Tickets %d", c.Years.Previous),
			fmt.Sprintf("Tickets %d", c.Years.Current),
			"Change", "Tier")
		for _, o := range c.Customers.Organizations {
			tbl.AddRow(o.Organization,
				o.Previous.Format("%.0f"),
				fmt.Sprintf("%.0f", o.Tickets),
				changeText(o.PctChange, false),
				o.Tier.String())
		}
		return tbl, nil

	case "tiers":
		tbl := output.NewTable("Tier", "Tickets/yr", "Organizations", "Total Tickets")
		for _, t := range c.Customers.Tiers {
			tbl.AddRow(t.Tier.String(), t.Tier.Range(),
				fmt.Sprintf("%d", t.Organizations),
				fmt.Sprintf("%.0f", t.Tickets))
		}
		return tbl, nil

	case "eng-summary":
		tbl := output.NewTable("Metric",
			fmt.Sprintf("%d", c.Years.Previous),
			fmt.Sprintf("%d", c.Years.Current),
			"Change")
		for _, m := range c.Engineering.Summary {
			format := "%.0f"
			if m.Points {
				format = "%.1f"
			}
			tbl.AddRow(m.Metric,
				m.Previous.Format(format),
				m.Current.Format(format),
				changeText(m.Change, m.Points))
		}
		return tbl, nil

	case "eng-teams":
		tbl := output.NewTable("Team",
			fmt.Sprintf("%d", c.Years.Previous),
			fmt.Sprintf("%d", c.Years.Current),
			"Change")
		for _, t := range c.Engineering.Teams {
			tbl.AddRow(t.Team,
				t.Previous.Format("%.0f"),
				t.Current.Format("%.0f"),
				changeText(t.Change, false))
		}
		return tbl, nil

	case "assignees":
		tbl := output.NewTable("Rank", "Assignee", "Resolved")
		for _, r := range c.Team.AssigneeRankings {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.0f", r.Value))
		}
		return tbl, nil

	case "contributors":
		tbl := output.NewTable("Rank", "Contributor", "Tickets")
		for _, r := range c.Team.ContributorRankings {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.0f", r.Value))
		}
		return tbl, nil

	case "monthly":
		tbl := output.NewTable("Year", "Month", "Created", "Resolved", "Net", "Backlog")
		for _, p := range c.Trends.Monthly {
			tbl.AddRow(
				fmt.Sprintf("%d", p.Year),
				fmt.Sprintf("%d", int(p.Month)),
				fmt.Sprintf("%.0f", p.Created),
				fmt.Sprintf("%.0f", p.Resolved),
				fmt.Sprintf("%.0f", p.Net),
				fmt.Sprintf("%.0f", p.Backlog))
		}
		return tbl, nil
	}

	return nil, fmt.Errorf("unknown table %q (available: %s)", name, strings.Join(exportNames(), ", "))
}

func severityCSV(c *report.Catalog, unit string, stats []report.SeverityStat) *output.Table {
	tbl := output.NewTable("Severity",
		fmt.Sprintf("%s %d", unit, c.Years.Previous),
		fmt.Sprintf("%s %d", unit, c.Years.Current),
		"Change")
	for _, s := range stats {
		tbl.AddRow(s.Severity,
			s.Previous.Format("%.1f"),
			s.Current.Format("%.1f"),
			changeText(s.Change, false))
	}
	return tbl
}

func exportNames() []string {
	names := []string{
		"summary", "resolution", "frt", "organizations", "tiers",
		"eng-summary", "eng-teams", "assignees", "contributors", "monthly",
	}
	sort.Strings(names)
	return names
}
