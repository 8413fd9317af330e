package insight

import (
	"fmt"

	"github.com/coveline/deskwatch/internal/report"
)

// worseningThreshold is the percent-change above which a severity's
// resolution time counts as worsening.
const worseningThreshold = 10.0

// WorseningSeverity flags severities whose resolution time grew
// meaningfully year over year. Blockers and criticals outrank the rest.
func WorseningSeverity(c *report.Catalog) []Finding {
	var findings []Finding
	for _, s := range c.Severity.Resolution {
		if !s.Change.Available || s.Change.Value <= worseningThreshold {
			continue
		}
		priority := PriorityMedium
		if s.Severity == "Blocker" || s.Severity == "Critical" {
			priority = PriorityCritical
		}
		findings = append(findings, Finding{
			Category: "resolution",
			Priority: priority,
			Title:    fmt.Sprintf("%s resolution time worsening", s.Severity),
			Detail: fmt.Sprintf("%s tickets now average %.0f days to resolve, up %.1f%% from %.0f days in %d.",
				s.Severity, s.Current.Value, s.Change.Value, s.Previous.Value, c.Years.Previous),
			Impact: s.Change.Value * float64(PriorityCritical+1-priority),
		})
	}
	return findings
}

// SlowerFirstResponse flags a year-over-year increase in mean FRT.
func SlowerFirstResponse(c *report.Catalog) []Finding {
	for _, row := range c.Comparison {
		if row.Metric != "Avg FRT (hours)" {
			continue
		}
		if !row.Change.Available || row.Change.Value <= 0 {
			return nil
		}
		return []Finding{{
			Category: "response",
			Priority: PriorityHigh,
			Title:    "First response time slipping",
			Detail: fmt.Sprintf("Average first response moved from %.0f to %.0f hours (%+.1f%%).",
				row.Previous.Value, row.Current.Value, row.Change.Value),
			Impact: row.Change.Value * 2,
		}}
	}
	return nil
}

// BacklogGrowth flags a current-year backlog that is still climbing at
// the end of the series.
func BacklogGrowth(c *report.Catalog) []Finding {
	if !c.Trends.Available {
		return nil
	}
	var last, prev *report.MonthlyPoint
	for i := range c.Trends.Monthly {
		p := &c.Trends.Monthly[i]
		if p.Year != c.Years.Current {
			continue
		}
		prev = last
		last = p
	}
	if last == nil || last.Backlog <= 0 {
		return nil
	}
	if prev != nil && last.Backlog <= prev.Backlog {
		return nil
	}
	return []Finding{{
		Category: "backlog",
		Priority: PriorityHigh,
		Title:    "Ticket backlog growing",
		Detail: fmt.Sprintf("The %d backlog stands at %.0f tickets as of %s and is still rising.",
			c.Years.Current, last.Backlog, last.Month),
		Impact: last.Backlog,
	}}
}

// EscalatingTeams flags engineering teams whose escalated ticket volume
// grew year over year.
func EscalatingTeams(c *report.Catalog) []Finding {
	if !c.Engineering.TeamsAvailable {
		return nil
	}
	var findings []Finding
	for _, t := range c.Engineering.Teams {
		if !t.Change.Available || t.Change.Value <= worseningThreshold {
			continue
		}
		findings = append(findings, Finding{
			Category: "engineering",
			Priority: PriorityMedium,
			Title:    fmt.Sprintf("Escalations to %s rising", t.Team),
			Detail: fmt.Sprintf("%s received %.0f escalated tickets, up %.1f%% from %.0f.",
				t.Team, t.Current.Value, t.Change.Value, t.Previous.Value),
			Impact: t.Change.Value,
		})
	}
	return findings
}

// concentrationThreshold is the strategic-tier share of total volume
// above which customer concentration is worth calling out.
const concentrationThreshold = 40.0

// VolumeConcentration flags when strategic-tier accounts dominate the
// ticket volume.
func VolumeConcentration(c *report.Catalog) []Finding {
	if !c.Customers.Available {
		return nil
	}
	var total, strategic float64
	for _, t := range c.Customers.Tiers {
		total += t.Tickets
		if t.Tier == report.TierStrategic {
			strategic = t.Tickets
		}
	}
	if total == 0 {
		return nil
	}
	share := strategic / total * 100
	if share <= concentrationThreshold {
		return nil
	}
	return []Finding{{
		Category: "customers",
		Priority: PriorityMedium,
		Title:    "Volume concentrated in strategic accounts",
		Detail: fmt.Sprintf("Strategic-tier accounts generate %.0f%% of ticket volume; their support experience dominates the overall numbers.",
			share),
		Impact: share,
	}}
}

// RisingEngineeringInvolvement flags a year-over-year increase in the
// engineering involvement rate.
func RisingEngineeringInvolvement(c *report.Catalog) []Finding {
	for _, row := range c.Comparison {
		if row.Metric != "Engineering Involvement" {
			continue
		}
		if !row.Change.Available || row.Change.Value <= 0 {
			return nil
		}
		return []Finding{{
			Category: "engineering",
			Priority: PriorityHigh,
			Title:    "More tickets need engineering",
			Detail: fmt.Sprintf("Engineering involvement rose %.1f points to %.1f%%; level-1 resolution coverage is shrinking.",
				row.Change.Value, row.Current.Value),
			Impact: row.Change.Value * 10,
		}}
	}
	return nil
}
