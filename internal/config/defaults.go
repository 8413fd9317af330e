// Package config provides configuration loading and defaults for deskwatch.
package config

// DefaultDataDir is the default directory containing the summary CSV files.
const DefaultDataDir = "."

// DefaultConfigDir is the default location for deskwatch configuration.
const DefaultConfigDir = "~/.config/deskwatch"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultCacheTTLSeconds is the freshness window for the raw dataset cache.
// Repeated loads within this window reuse the previously parsed files.
const DefaultCacheTTLSeconds = 10

// Default reporting year pair. The upstream export currently covers
// exactly these two years; year-keyed columns follow {year}_{field}.
const (
	DefaultPreviousYear = 2024
	DefaultCurrentYear  = 2025
)

// DefaultFiles maps logical dataset names to the file names the upstream
// aggregation job writes into the data directory.
var DefaultFiles = map[string]string{
	"organizations": "khelp_organizations_latest.csv",
	"eng_summary":   "khelp_engineering_latest.csv",
	"eng_teams":     "khelp_engineering_by_team_latest.csv",
	"categories":    "khelp_categories_engineering_latest.csv",
	"frt":           "khelp_frt_latest.csv",
	"monthly":       "khelp_monthly_latest.csv",
	"resolution":    "khelp_resolution_latest.csv",
	"assignees":     "khelp_assignee_performance_latest.csv",
	"contributors":  "khelp_contributor_performance_latest.csv",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
