package insight

import (
	"sort"

	"github.com/coveline/deskwatch/internal/report"
)

// Engine runs all registered rules against a catalogue and collects the
// resulting findings.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			WorseningSeverity,
			SlowerFirstResponse,
			BacklogGrowth,
			EscalatingTeams,
			VolumeConcentration,
			RisingEngineeringInvolvement,
		},
	}
}

// Run executes all registered rules and returns the collected findings
// sorted by impact score, highest first.
func (e *Engine) Run(c *report.Catalog) []Finding {
	var all []Finding
	for _, rule := range e.rules {
		all = append(all, rule(c)...)
	}
	return Rank(all)
}

// Rank sorts findings by impact score descending. The sort is stable so
// rule registration order breaks ties.
func Rank(findings []Finding) []Finding {
	sorted := make([]Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Impact > sorted[j].Impact
	})
	return sorted
}
