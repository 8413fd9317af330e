// Package report computes the derived metric catalogue for deskwatch.
// Every function here is pure: given the loaded datasets it produces the
// same catalogue, never raises, and degrades each entry to "unavailable"
// when a required dataset, column, or category is missing.
package report

import (
	"fmt"
	"time"
)

// Years is the reporting year pair for year-over-year views.
type Years struct {
	Previous int `json:"previous"`
	Current  int `json:"current"`
}

// Scalar is a single derived value with an availability flag. Unavailable
// is distinct from zero: a missing dataset, a missing category, or a
// division by zero all yield an unavailable scalar, never NaN or a
// silently wrong default.
type Scalar struct {
	Value     float64 `json:"value"`
	Available bool    `json:"available"`
}

// Avail wraps a computed value.
func Avail(v float64) Scalar {
	return Scalar{Value: v, Available: true}
}

// Unavailable is the sentinel for a value that could not be derived.
func Unavailable() Scalar {
	return Scalar{}
}

// Format renders the scalar with the given printf verb, or "N/A" when the
// value is unavailable.
func (s Scalar) Format(format string) string {
	if !s.Available {
		return "N/A"
	}
	return fmt.Sprintf(format, s.Value)
}

// Catalog is the full set of derived results, grouped per view. Every
// entry is always present; availability is carried per value or per block.
type Catalog struct {
	Years       Years                `json:"years"`
	Summary     SummaryKPIs          `json:"summary"`
	Severity    SeverityBreakdown    `json:"severity"`
	Comparison  []ComparisonRow      `json:"comparison"`
	Customers   CustomerIntelligence `json:"customers"`
	Engineering EngineeringAnalysis  `json:"engineering"`
	Team        TeamScorecard        `json:"team"`
	Trends      TrendAnalysis        `json:"trends"`
}

// SummaryKPIs holds the current-year headline numbers.
type SummaryKPIs struct {
	TotalTickets     Scalar `json:"total_tickets"`
	EngInvolvement   Scalar `json:"eng_involvement_pct"`
	AvgFirstResponse Scalar `json:"avg_first_response_hours"`
	AvgResolution    Scalar `json:"avg_resolution_days"`
}

// SeverityStat is a per-severity year pair with its percent change.
type SeverityStat struct {
	Severity string `json:"severity"`
	Previous Scalar `json:"previous"`
	Current  Scalar `json:"current"`
	Change   Scalar `json:"change_pct"`
}

// SeverityBreakdown groups the per-severity stats by source measure.
type SeverityBreakdown struct {
	Resolution    []SeverityStat `json:"resolution_days"`
	FirstResponse []SeverityStat `json:"first_response_hours"`
}

// ComparisonRow is one line of the year-over-year summary table. Points
// marks metrics already expressed as percentages, whose Change is a
// percentage-point difference rather than a relative percent change.
type ComparisonRow struct {
	Metric        string `json:"metric"`
	Previous      Scalar `json:"previous"`
	Current       Scalar `json:"current"`
	Change        Scalar `json:"change"`
	Points        bool   `json:"points"`
	LowerIsBetter bool   `json:"lower_is_better"`
}

// RankedRow is one entry of a ranked list. Rank is dense, starting at 1;
// ties keep their input order.
type RankedRow struct {
	Rank  int     `json:"rank"`
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// EntityDelta is one matched entity of a year-over-year comparison.
// Entities present in only one year are excluded upstream.
type EntityDelta struct {
	Entity    string  `json:"entity"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	PctChange Scalar  `json:"pct_change"`
}

// OrgTier is one organization with its assigned volume tier. Tickets is
// the current-year count the tier derives from; Previous carries the
// prior-year count when the dataset has it.
type OrgTier struct {
	Organization string  `json:"organization"`
	Previous     Scalar  `json:"previous_tickets"`
	Tickets      float64 `json:"tickets"`
	PctChange    Scalar  `json:"pct_change"`
	Tier         Tier    `json:"tier"`
}

// TierSummary aggregates one tier band.
type TierSummary struct {
	Tier          Tier    `json:"tier"`
	Organizations int     `json:"organizations"`
	Tickets       float64 `json:"tickets"`
}

// CustomerIntelligence is the customer view block.
type CustomerIntelligence struct {
	Available         bool          `json:"available"`
	Top               []RankedRow   `json:"top"`
	Organizations     []OrgTier     `json:"organizations"`
	Tiers             []TierSummary `json:"tiers"`
	FastestResolution []RankedRow   `json:"fastest_resolution"`
	SlowestResolution []RankedRow   `json:"slowest_resolution"`
}

// MetricYears is one engineering summary metric across the year pair.
type MetricYears struct {
	Metric   string `json:"metric"`
	Previous Scalar `json:"previous"`
	Current  Scalar `json:"current"`
	Change   Scalar `json:"change"`
	Points   bool   `json:"points"`
}

// TeamChange is one engineering team's ticket volume across the year pair.
type TeamChange struct {
	Team     string `json:"team"`
	Previous Scalar `json:"previous"`
	Current  Scalar `json:"current"`
	Change   Scalar `json:"change_pct"`
}

// CountRow is one label of a categorical breakdown.
type CountRow struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Share float64 `json:"share_pct"`
}

// CategoryBreakdown summarizes the dual-axis ticket categorization:
// subject-matter categories and ticket types are independent label axes.
type CategoryBreakdown struct {
	Available     bool       `json:"available"`
	Tickets       int        `json:"tickets"`
	Categories    []CountRow `json:"categories"`
	Types         []CountRow `json:"types"`
	AvgConfidence Scalar     `json:"avg_confidence"`
}

// EngineeringAnalysis is the engineering view block.
type EngineeringAnalysis struct {
	SummaryAvailable bool              `json:"summary_available"`
	Summary          []MetricYears     `json:"summary"`
	TeamsAvailable   bool              `json:"teams_available"`
	Teams            []TeamChange      `json:"teams"`
	Categorization   CategoryBreakdown `json:"categorization"`
}

// LevelSummary aggregates the level-1 assignees for the current year.
type LevelSummary struct {
	Available          bool   `json:"available"`
	Agents             int    `json:"agents"`
	AvgResolved        Scalar `json:"avg_resolved"`
	AvgResolutionDays  Scalar `json:"avg_resolution_days"`
	AvgResolutionRate  Scalar `json:"avg_resolution_rate_pct"`
	AvgEngineeringRate Scalar `json:"avg_engineering_rate_pct"`
}

// ContributorSummary aggregates the level-2 contributors for the current year.
type ContributorSummary struct {
	Available            bool   `json:"available"`
	Contributors         int    `json:"contributors"`
	TicketsContributed   Scalar `json:"tickets_contributed"`
	TotalComments        Scalar `json:"total_comments"`
	AvgCommentsPerTicket Scalar `json:"avg_comments_per_ticket"`
	AvgVelocityPerDay    Scalar `json:"avg_velocity_per_day"`
}

// TeamScorecard is the team view block.
type TeamScorecard struct {
	Level1              LevelSummary       `json:"level1"`
	AssigneeRankings    []RankedRow        `json:"assignee_rankings"`
	AssigneeComparison  []EntityDelta      `json:"assignee_comparison"`
	Level2              ContributorSummary `json:"level2"`
	ContributorRankings []RankedRow        `json:"contributor_rankings"`
}

// MonthlyPoint is one month of the created/resolved series with the
// running backlog for its year.
type MonthlyPoint struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Created  float64    `json:"created"`
	Resolved float64    `json:"resolved"`
	Net      float64    `json:"net"`
	Backlog  float64    `json:"backlog"`
}

// TrendAnalysis is the trends view block.
type TrendAnalysis struct {
	Available bool           `json:"available"`
	Monthly   []MonthlyPoint `json:"monthly"`
}
