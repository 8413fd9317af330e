package report

import (
	"sort"

	"github.com/coveline/deskwatch/internal/dataset"
)

// computeEngineering builds the engineering view: the summary metric
// table, the per-team breakdown, and the dual-axis categorization.
func computeEngineering(set dataset.Set, years Years) EngineeringAnalysis {
	ea := EngineeringAnalysis{}

	if summary, ok := set.Get(dataset.EngSummary); ok {
		ea.SummaryAvailable = true
		ea.Summary = engineeringSummary(summary, years)
	}

	if teams, ok := set.Get(dataset.EngTeams); ok {
		ea.TeamsAvailable = true
		ea.Teams = engineeringTeams(teams, years)
	}

	ea.Categorization = computeCategorization(set)
	return ea
}

// engineeringSummary reads each summary metric's year pair. Values the
// upstream stores percent-suffixed were typed as Percent at load; their
// change is a percentage-point difference, everything else a relative
// percent change.
func engineeringSummary(d *dataset.Dataset, years Years) []MetricYears {
	if !d.HasColumn("Metric") {
		return nil
	}
	prevCol := dataset.YearColumn(years.Previous, "Value")
	currCol := dataset.YearColumn(years.Current, "Value")

	var rows []MetricYears
	for i := 0; i < d.Len(); i++ {
		metric, ok := d.Value(i, "Metric")
		if !ok {
			continue
		}

		row := MetricYears{Metric: metric, Previous: Unavailable(), Current: Unavailable()}
		if c, ok := d.Cell(i, prevCol); ok && c.IsNumeric() {
			row.Previous = Avail(c.Num)
			row.Points = c.Kind == dataset.Percent
		}
		if c, ok := d.Cell(i, currCol); ok && c.IsNumeric() {
			row.Current = Avail(c.Num)
			row.Points = row.Points || c.Kind == dataset.Percent
		}
		if row.Points {
			row.Change = PointChange(row.Previous, row.Current)
		} else {
			row.Change = PercentChange(row.Previous, row.Current)
		}
		rows = append(rows, row)
	}
	return rows
}

// engineeringTeams reads per-team ticket counts for the year pair. The
// change is recomputed from the year columns rather than trusting the
// upstream's pre-formatted Change string.
func engineeringTeams(d *dataset.Dataset, years Years) []TeamChange {
	if !d.HasColumn("Engineering_Team") {
		return nil
	}
	prevCol := dataset.YearColumn(years.Previous, "Tickets")
	currCol := dataset.YearColumn(years.Current, "Tickets")

	var rows []TeamChange
	for i := 0; i < d.Len(); i++ {
		team, ok := d.Value(i, "Engineering_Team")
		if !ok {
			continue
		}
		row := TeamChange{Team: team, Previous: Unavailable(), Current: Unavailable()}
		if v, ok := d.Number(i, prevCol); ok {
			row.Previous = Avail(v)
		}
		if v, ok := d.Number(i, currCol); ok {
			row.Current = Avail(v)
		}
		row.Change = PercentChange(row.Previous, row.Current)
		rows = append(rows, row)
	}
	return rows
}

// computeCategorization summarizes the dual-axis ticket categorization:
// counts per subject-matter category, counts per ticket type, and the
// mean classification confidence.
func computeCategorization(set dataset.Set) CategoryBreakdown {
	cats, ok := set.Get(dataset.Categories)
	if !ok {
		return CategoryBreakdown{AvgConfidence: Unavailable()}
	}

	cb := CategoryBreakdown{
		Available:     true,
		Tickets:       cats.Len(),
		Categories:    countColumn(cats, "category"),
		Types:         countColumn(cats, "type"),
		AvgConfidence: Mean(cats, "confidence"),
	}
	return cb
}

// countColumn tallies the distinct text values of a column, ordered by
// count descending with first-seen order breaking ties.
func countColumn(d *dataset.Dataset, col string) []CountRow {
	if !d.HasColumn(col) {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	total := 0
	for i := 0; i < d.Len(); i++ {
		label, ok := d.Value(i, col)
		if !ok || label == "" {
			continue
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
		total++
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rows := make([]CountRow, 0, len(order))
	for _, label := range order {
		rows = append(rows, CountRow{
			Label: label,
			Count: counts[label],
			Share: float64(counts[label]) / float64(total) * 100,
		})
	}
	return rows
}
