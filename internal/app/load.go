package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coveline/deskwatch/internal/config"
	"github.com/coveline/deskwatch/internal/dataset"
	"github.com/coveline/deskwatch/internal/output"
	"github.com/coveline/deskwatch/internal/report"
)

// loadCatalog loads configuration and datasets and computes the metric
// catalogue. Shared by every view command.
func loadCatalog() (*report.Catalog, []dataset.Result, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoColor()
	}

	loader := dataset.NewLoader(cfg.DataDir, cfg.Files,
		time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if flagRefresh {
		loader.Invalidate()
	}

	set, results, err := loader.Load(context.Background())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading datasets: %w", err)
	}

	reportLoadIssues(results)

	years := report.Years{Previous: cfg.Years.Previous, Current: cfg.Years.Current}
	return report.Compute(set, years), results, cfg, nil
}

// reportLoadIssues warns about files that exist but failed to parse.
// Absent files are normal and stay silent; their metrics render as N/A.
func reportLoadIssues(results []dataset.Result) {
	for _, r := range results {
		if r.State == dataset.Malformed {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", r.File, r.Err)
		}
	}
}

// writeJSON encodes a value to stdout with the shared indentation.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// changeText formats a change scalar without styling. Points changes are
// percentage-point differences and render with a pp suffix. Export tables
// use this directly so CSV output stays free of escape sequences.
func changeText(change report.Scalar, points bool) string {
	if !change.Available {
		return "N/A"
	}
	if points {
		return fmt.Sprintf("%+.1fpp", change.Value)
	}
	return fmt.Sprintf("%+.1f%%", change.Value)
}

// changeCell is changeText with the muted style applied to N/A cells,
// for the on-screen tables.
func changeCell(change report.Scalar, points bool) string {
	if !change.Available {
		return output.StyleMuted.Render("N/A")
	}
	return changeText(change, points)
}

// trendCell renders the styled trend arrow for a change scalar, or an
// empty cell when the change is unavailable.
func trendCell(change report.Scalar, points, lowerIsBetter bool) string {
	if !change.Available {
		return ""
	}
	if points {
		return output.TrendArrow(change.Value, !lowerIsBetter)
	}
	return output.TrendArrowPercent(change.Value, !lowerIsBetter)
}
