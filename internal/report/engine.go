package report

import "github.com/coveline/deskwatch/internal/dataset"

// EngInvolvementMetric is the engineering summary row the headline KPI
// and the comparison table read.
const EngInvolvementMetric = "Engineering Involvement Rate"

// Severities the per-severity cards cover, in display order.
var Severities = []string{"Blocker", "Critical", "Major", "Minor"}

// Compute derives the full metric catalogue from the loaded datasets.
// It is pure and side-effect-free: the same input set always yields the
// same catalogue, an empty set yields a catalogue with every entry
// unavailable, and no input ever causes a failure.
func Compute(set dataset.Set, years Years) *Catalog {
	return &Catalog{
		Years:       years,
		Summary:     computeSummary(set, years),
		Severity:    computeSeverity(set, years),
		Comparison:  computeComparison(set, years),
		Customers:   computeCustomers(set, years),
		Engineering: computeEngineering(set, years),
		Team:        computeTeam(set, years),
		Trends:      computeTrends(set),
	}
}

// computeSummary derives the current-year headline KPIs.
func computeSummary(set dataset.Set, years Years) SummaryKPIs {
	monthly, _ := set.Get(dataset.Monthly)
	engSummary, _ := set.Get(dataset.EngSummary)
	frt, _ := set.Get(dataset.FRT)
	resolution, _ := set.Get(dataset.Resolution)

	return SummaryKPIs{
		TotalTickets:     SumWhere(monthly, "Created", "Year", float64(years.Current)),
		EngInvolvement:   LookupYear(engSummary, "Metric", EngInvolvementMetric, years.Current, "Value"),
		AvgFirstResponse: Mean(frt, dataset.YearColumn(years.Current, "Avg_Hours")),
		AvgResolution:    Mean(resolution, dataset.YearColumn(years.Current, "Avg_Days")),
	}
}

// computeSeverity derives per-severity year pairs for resolution days
// and first response hours.
func computeSeverity(set dataset.Set, years Years) SeverityBreakdown {
	resolution, _ := set.Get(dataset.Resolution)
	frt, _ := set.Get(dataset.FRT)

	return SeverityBreakdown{
		Resolution:    severityStats(resolution, "Avg_Days", years),
		FirstResponse: severityStats(frt, "Avg_Hours", years),
	}
}

// severityStats builds one SeverityStat per known severity. A severity
// missing from the dataset still gets a row, fully unavailable.
func severityStats(d *dataset.Dataset, field string, years Years) []SeverityStat {
	stats := make([]SeverityStat, 0, len(Severities))
	for _, sev := range Severities {
		prev := LookupYear(d, "Severity", sev, years.Previous, field)
		curr := LookupYear(d, "Severity", sev, years.Current, field)
		stats = append(stats, SeverityStat{
			Severity: sev,
			Previous: prev,
			Current:  curr,
			Change:   PercentChange(prev, curr),
		})
	}
	return stats
}

// computeComparison builds the year-over-year summary table. Every row is
// always present; rows whose dataset is missing carry unavailable values
// so the consumer can render N/A without special cases.
func computeComparison(set dataset.Set, years Years) []ComparisonRow {
	monthly, _ := set.Get(dataset.Monthly)
	engSummary, _ := set.Get(dataset.EngSummary)
	resolution, _ := set.Get(dataset.Resolution)
	frt, _ := set.Get(dataset.FRT)

	rows := make([]ComparisonRow, 0, 6)

	prevTotal := SumWhere(monthly, "Created", "Year", float64(years.Previous))
	currTotal := SumWhere(monthly, "Created", "Year", float64(years.Current))
	rows = append(rows, ComparisonRow{
		Metric:        "Total Tickets",
		Previous:      prevTotal,
		Current:       currTotal,
		Change:        PercentChange(prevTotal, currTotal),
		LowerIsBetter: true,
	})

	prevEng := LookupYear(engSummary, "Metric", EngInvolvementMetric, years.Previous, "Value")
	currEng := LookupYear(engSummary, "Metric", EngInvolvementMetric, years.Current, "Value")
	rows = append(rows, ComparisonRow{
		Metric:        "Engineering Involvement",
		Previous:      prevEng,
		Current:       currEng,
		Change:        PointChange(prevEng, currEng),
		Points:        true,
		LowerIsBetter: true,
	})

	for _, sev := range []string{"Blocker", "Critical"} {
		prev := LookupYear(resolution, "Severity", sev, years.Previous, "Avg_Days")
		curr := LookupYear(resolution, "Severity", sev, years.Current, "Avg_Days")
		rows = append(rows, ComparisonRow{
			Metric:        sev + " Resolution (days)",
			Previous:      prev,
			Current:       curr,
			Change:        PercentChange(prev, curr),
			LowerIsBetter: true,
		})
	}

	prevFRT := Mean(frt, dataset.YearColumn(years.Previous, "Avg_Hours"))
	currFRT := Mean(frt, dataset.YearColumn(years.Current, "Avg_Hours"))
	rows = append(rows, ComparisonRow{
		Metric:        "Avg FRT (hours)",
		Previous:      prevFRT,
		Current:       currFRT,
		Change:        PercentChange(prevFRT, currFRT),
		LowerIsBetter: true,
	})

	prevRes := Mean(resolution, dataset.YearColumn(years.Previous, "Avg_Days"))
	currRes := Mean(resolution, dataset.YearColumn(years.Current, "Avg_Days"))
	rows = append(rows, ComparisonRow{
		Metric:        "Avg Resolution (days)",
		Previous:      prevRes,
		Current:       currRes,
		Change:        PercentChange(prevRes, currRes),
		LowerIsBetter: true,
	})

	return rows
}
