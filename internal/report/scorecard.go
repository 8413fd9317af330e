package report

import "github.com/coveline/deskwatch/internal/dataset"

// computeTeam builds the team scorecard: level-1 assignee aggregates and
// rankings, the year-over-year per-agent comparison, and the level-2
// contributor block. Aggregates cover the current reporting year only;
// the comparison joins both years.
func computeTeam(set dataset.Set, years Years) TeamScorecard {
	ts := TeamScorecard{}

	if assignees, ok := set.Get(dataset.Assignees); ok {
		ts.Level1 = computeLevel1(assignees, years.Current)
		ts.AssigneeRankings = rankEntries(
			assigneeEntries(assignees, years.Current, "Total_Resolved"), true)
		ts.AssigneeComparison = CompareYears(assignees, "Assignee", "Year", "Total_Resolved", years)
	}

	if contributors, ok := set.Get(dataset.Contributors); ok {
		ts.Level2 = computeLevel2(contributors, years.Current)
		ts.ContributorRankings = rankEntries(
			contributorEntries(contributors, years.Current), true)
	}

	return ts
}

// computeLevel1 averages the per-agent scorecard columns over the
// current-year level-1 rows.
func computeLevel1(d *dataset.Dataset, year int) LevelSummary {
	rows := level1Rows(d, year)
	ls := LevelSummary{Available: true, Agents: len(rows)}
	if len(rows) == 0 {
		ls.AvgResolved = Unavailable()
		ls.AvgResolutionDays = Unavailable()
		ls.AvgResolutionRate = Unavailable()
		ls.AvgEngineeringRate = Unavailable()
		return ls
	}
	ls.AvgResolved = meanOfRows(d, rows, "Total_Resolved")
	ls.AvgResolutionDays = meanOfRows(d, rows, "Avg_Resolution_Days")
	ls.AvgResolutionRate = meanOfRows(d, rows, "Resolution_Rate_Pct")
	ls.AvgEngineeringRate = meanOfRows(d, rows, "Engineering_Rate_Pct")
	return ls
}

// computeLevel2 totals and averages the contributor columns for the
// current year.
func computeLevel2(d *dataset.Dataset, year int) ContributorSummary {
	rows := yearRows(d, year)
	cs := ContributorSummary{Available: true, Contributors: len(rows)}
	if len(rows) == 0 {
		cs.TicketsContributed = Unavailable()
		cs.TotalComments = Unavailable()
		cs.AvgCommentsPerTicket = Unavailable()
		cs.AvgVelocityPerDay = Unavailable()
		return cs
	}
	cs.TicketsContributed = sumOfRows(d, rows, "Tickets_Contributed")
	cs.TotalComments = sumOfRows(d, rows, "Total_Comments")
	cs.AvgCommentsPerTicket = meanOfRows(d, rows, "Avg_Comments_Per_Ticket")
	cs.AvgVelocityPerDay = meanOfRows(d, rows, "Comment_Velocity_Per_Day")
	return cs
}

// level1Rows returns the row indexes for level-1 assignees in the given year.
func level1Rows(d *dataset.Dataset, year int) []int {
	var rows []int
	for _, i := range yearRows(d, year) {
		if level, ok := d.Value(i, "Support_Level"); ok && level == "Level 1" {
			rows = append(rows, i)
		}
	}
	return rows
}

// yearRows returns the row indexes whose Year column matches. Datasets
// without a Year column (single-year exports) include every row.
func yearRows(d *dataset.Dataset, year int) []int {
	var rows []int
	for i := 0; i < d.Len(); i++ {
		if d.HasColumn("Year") {
			y, ok := d.Number(i, "Year")
			if !ok || int(y) != year {
				continue
			}
		}
		rows = append(rows, i)
	}
	return rows
}

func assigneeEntries(d *dataset.Dataset, year int, valueCol string) []rankEntry {
	var entries []rankEntry
	for _, i := range level1Rows(d, year) {
		name, ok := d.Value(i, "Assignee")
		if !ok {
			continue
		}
		if v, ok := d.Number(i, valueCol); ok {
			entries = append(entries, rankEntry{name, v})
		}
	}
	return entries
}

func contributorEntries(d *dataset.Dataset, year int) []rankEntry {
	var entries []rankEntry
	for _, i := range yearRows(d, year) {
		name, ok := d.Value(i, "Contributor")
		if !ok {
			continue
		}
		if v, ok := d.Number(i, "Tickets_Contributed"); ok {
			entries = append(entries, rankEntry{name, v})
		}
	}
	return entries
}

// meanOfRows averages a column over the given row indexes.
func meanOfRows(d *dataset.Dataset, rows []int, col string) Scalar {
	var sum float64
	var n int
	for _, i := range rows {
		if v, ok := d.Number(i, col); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return Unavailable()
	}
	return Avail(sum / float64(n))
}

// sumOfRows totals a column over the given row indexes.
func sumOfRows(d *dataset.Dataset, rows []int, col string) Scalar {
	if !d.HasColumn(col) {
		return Unavailable()
	}
	var sum float64
	for _, i := range rows {
		if v, ok := d.Number(i, col); ok {
			sum += v
		}
	}
	return Avail(sum)
}
