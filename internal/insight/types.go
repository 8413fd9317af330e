// Package insight derives ranked findings from a computed metric
// catalogue. Rules are pure functions over the catalogue; they never
// touch raw datasets or perform I/O.
package insight

import "github.com/coveline/deskwatch/internal/report"

// Priority levels for findings.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Finding is one surfaced observation about the reporting period.
type Finding struct {
	Category string  `json:"category"`
	Priority int     `json:"priority"`
	Title    string  `json:"title"`
	Detail   string  `json:"detail"`
	Impact   float64 `json:"impact_score"`
}

// Rule examines the catalogue and produces zero or more findings.
type Rule func(c *report.Catalog) []Finding
