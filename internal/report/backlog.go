package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/coveline/deskwatch/internal/dataset"
)

// computeTrends builds the monthly series with per-year cumulative
// backlog. The computation is a pure function of the monthly dataset:
// re-running it yields an identical sequence.
func computeTrends(set dataset.Set) TrendAnalysis {
	monthly, ok := set.Get(dataset.Monthly)
	if !ok {
		return TrendAnalysis{}
	}
	points := CumulativeBacklog(monthly)
	if points == nil {
		return TrendAnalysis{}
	}
	return TrendAnalysis{Available: true, Monthly: points}
}

// CumulativeBacklog orders each year's months chronologically, computes
// the per-month net change (created minus resolved), and accumulates a
// running sum that restarts at every year boundary. Rows without a
// recognizable month index are skipped.
func CumulativeBacklog(d *dataset.Dataset) []MonthlyPoint {
	if d == nil || !d.HasColumn("Month") || !d.HasColumn("Year") ||
		!d.HasColumn("Created") || !d.HasColumn("Resolved") {
		return nil
	}

	var points []MonthlyPoint
	for i := 0; i < d.Len(); i++ {
		cell, ok := d.Cell(i, "Month")
		if !ok {
			continue
		}
		month, ok := monthIndex(cell)
		if !ok {
			continue
		}
		year, ok := d.Number(i, "Year")
		if !ok {
			continue
		}
		created, ok := d.Number(i, "Created")
		if !ok {
			continue
		}
		resolved, ok := d.Number(i, "Resolved")
		if !ok {
			continue
		}
		points = append(points, MonthlyPoint{
			Year:     int(year),
			Month:    month,
			Created:  created,
			Resolved: resolved,
			Net:      created - resolved,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})

	var running float64
	for i := range points {
		if i == 0 || points[i].Year != points[i-1].Year {
			running = 0
		}
		running += points[i].Net
		points[i].Backlog = running
	}
	return points
}

// monthIndex extracts the month from a Month cell. The upstream export
// has used a numeric index (1-12), English month names, and YYYY-MM
// stamps at different times; all three are accepted.
func monthIndex(c dataset.Cell) (time.Month, bool) {
	if c.Kind == dataset.Number {
		n := int(c.Num)
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return 0, false
	}

	if t, err := time.Parse("January", s); err == nil {
		return t.Month(), true
	}
	if t, err := time.Parse("Jan", s); err == nil {
		return t.Month(), true
	}

	// YYYY-MM stamps carry the month in the second segment.
	if parts := strings.SplitN(s, "-", 2); len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n >= 1 && n <= 12 {
			return time.Month(n), true
		}
	}

	return 0, false
}
