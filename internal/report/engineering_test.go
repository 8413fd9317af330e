package report

import (
	"math"
	"testing"

	"github.com/coveline/deskwatch/internal/dataset"
)

func TestEngineeringSummary_PercentMetricsUsePoints(t *testing.T) {
	d := makeDataset("eng_summary",
		[]string{"Metric", "2024_Value", "2025_Value"},
		[]dataset.Cell{txt("Total Escalated"), num(200), num(250)},
		[]dataset.Cell{txt(EngInvolvementMetric), pct(38), pct(42)},
	)

	rows := engineeringSummary(d, testYears)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	total := rows[0]
	if total.Points {
		t.Error("plain count metric should not be a points metric")
	}
	if !total.Change.Available || total.Change.Value != 25 {
		t.Errorf("count change = %+v, want available 25 (percent)", total.Change)
	}

	rate := rows[1]
	if !rate.Points {
		t.Error("percent-typed metric should be a points metric")
	}
	if !rate.Change.Available || rate.Change.Value != 4 {
		t.Errorf("rate change = %+v, want available 4 (points)", rate.Change)
	}
}

func TestEngineeringTeams_RecomputesChange(t *testing.T) {
	d := makeDataset("eng_teams",
		[]string{"Engineering_Team", "2024_Tickets", "2025_Tickets", "Change"},
		[]dataset.Cell{txt("Platform"), num(50), num(75), txt("+99%")},
		[]dataset.Cell{txt("Mobile"), num(0), num(10), txt("+∞")},
	)

	rows := engineeringTeams(d, testYears)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// The change comes from the year columns, not the upstream string.
	if !rows[0].Change.Available || rows[0].Change.Value != 50 {
		t.Errorf("Platform change = %+v, want available 50", rows[0].Change)
	}
	if rows[1].Change.Available {
		t.Errorf("Mobile change over zero base = %+v, want unavailable", rows[1].Change)
	}
}

func TestComputeCategorization(t *testing.T) {
	set := dataset.Set{
		dataset.Categories: makeDataset("categories",
			[]string{"category", "type", "confidence"},
			[]dataset.Cell{txt("Billing"), txt("Bug"), num(0.9)},
			[]dataset.Cell{txt("Billing"), txt("Question"), num(0.8)},
			[]dataset.Cell{txt("API"), txt("Bug"), num(0.7)},
		),
	}

	cb := computeCategorization(set)
	if !cb.Available {
		t.Fatal("categorization should be available")
	}
	if cb.Tickets != 3 {
		t.Errorf("tickets = %d, want 3", cb.Tickets)
	}

	if len(cb.Categories) != 2 || cb.Categories[0].Label != "Billing" || cb.Categories[0].Count != 2 {
		t.Errorf("categories = %+v, want Billing x2 first", cb.Categories)
	}
	if len(cb.Types) != 2 || cb.Types[0].Label != "Bug" || cb.Types[0].Count != 2 {
		t.Errorf("types = %+v, want Bug x2 first", cb.Types)
	}

	wantConf := (0.9 + 0.8 + 0.7) / 3
	if !cb.AvgConfidence.Available || math.Abs(cb.AvgConfidence.Value-wantConf) > 1e-9 {
		t.Errorf("avg confidence = %+v, want available %.4f", cb.AvgConfidence, wantConf)
	}
}

func TestCountColumn_ShareAndTieOrder(t *testing.T) {
	d := makeDataset("categories",
		[]string{"category"},
		[]dataset.Cell{txt("Billing")},
		[]dataset.Cell{txt("API")},
		[]dataset.Cell{txt("Auth")},
		[]dataset.Cell{txt("API")},
	)

	rows := countColumn(d, "category")
	if len(rows) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(rows))
	}
	if rows[0].Label != "API" || rows[0].Share != 50 {
		t.Errorf("top label = %+v, want API at 50%%", rows[0])
	}
	// Billing and Auth tie at 1; first-seen order wins.
	if rows[1].Label != "Billing" || rows[2].Label != "Auth" {
		t.Errorf("tie order = %s, %s; want Billing, Auth", rows[1].Label, rows[2].Label)
	}
}

func TestComputeCategorization_MissingDataset(t *testing.T) {
	cb := computeCategorization(dataset.Set{})
	if cb.Available {
		t.Error("categorization should be unavailable without the dataset")
	}
	if cb.AvgConfidence.Available {
		t.Error("avg confidence should be unavailable without the dataset")
	}
}
