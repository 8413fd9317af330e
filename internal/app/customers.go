package app

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
	"github.com/spf13/cobra"
)

var customersLimit int

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Organization volumes and tier bands",
	Long: `Render customer intelligence: the four-band tier partition by
current-year ticket volume, the top organizations, and the fastest and
slowest resolution rankings.`,
	RunE: runCustomers,
}

func init() {
	customersCmd.Flags().IntVar(&customersLimit, "limit", 10, "Maximum entries per ranking")
	rootCmd.AddCommand(customersCmd)
}

func runCustomers(cmd *cobra.Command, args []string) error {
	c, _, _, err := loadCatalog()
	if err != nil {
		return err
	}

	if flagJSON {
		return writeJSON(c.Customers)
	}

	ci := c.Customers
	if !ci.Available {
		fmt.Println(output.Section("Customer Intelligence"))
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("Organization data not available"))
		return nil
	}

	renderTiers(c)
	renderTopOrganizations(c)
	renderResolutionRankings(c)
	return nil
}

func renderTiers(c *report.Catalog) {
	fmt.Println(output.Section(fmt.Sprintf("Support Tiers (%d volume)", c.Years.Current)))
	fmt.Println()

	tbl := output.NewTable("Tier", "Tickets/yr", "Organizations", "Total Tickets")
	for _, t := range c.Customers.Tiers {
		tbl.AddRow(
			t.Tier.String(),
			t.Tier.Range(),
			fmt.Sprintf("%d", t.Organizations),
			fmt.Sprintf("%.0f", t.Tickets),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderTopOrganizations(c *report.Catalog) {
	fmt.Println(output.Section("Top Organizations by Volume"))
	fmt.Println()

	// Tier lookup for the ranked rows.
	tierOf := make(map[string]report.Tier, len(c.Customers.Organizations))
	changeOf := make(map[string]report.Scalar, len(c.Customers.Organizations))
	for _, o := range c.Customers.Organizations {
		tierOf[o.Organization] = o.Tier
		changeOf[o.Organization] = o.PctChange
	}

	tbl := output.NewTable("Rank", "Organization", "Tickets", "Change", "Tier")
	for _, r := range limitRows(c.Customers.Top, customersLimit) {
		tbl.AddRow(
			fmt.Sprintf("%d", r.Rank),
			r.Key,
			fmt.Sprintf("%.0f", r.Value),
			changeCell(changeOf[r.Key], false),
			tierOf[r.Key].String(),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderResolutionRankings(c *report.Catalog) {
	limit := customersLimit
	if limit > 5 {
		limit = 5
	}

	if len(c.Customers.FastestResolution) > 0 {
		fmt.Println(output.Section("Fastest Resolution"))
		fmt.Println()
		tbl := output.NewTable("Rank", "Organization", "Avg Days")
		for _, r := range limitRows(c.Customers.FastestResolution, limit) {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.1f", r.Value))
		}
		tbl.Print()
	}

	if len(c.Customers.SlowestResolution) > 0 {
		fmt.Println(output.Section("Slowest Resolution"))
		fmt.Println()
		tbl := output.NewTable("Rank", "Organization", "Avg Days")
		for _, r := range limitRows(c.Customers.SlowestResolution, limit) {
			tbl.AddRow(fmt.Sprintf("%d", r.Rank), r.Key, fmt.Sprintf("%.1f", r.Value))
		}
		tbl.Print()
	}

	fmt.Println()
}
