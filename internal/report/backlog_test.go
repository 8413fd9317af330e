package report

import (
	"testing"
	"time"

	"github.com/coveline/deskwatch/internal/dataset"
)

func TestCumulativeBacklog_RunningSum(t *testing.T) {
	d := makeDataset("monthly",
		[]string{"Year", "Month", "Created", "Resolved"},
		[]dataset.Cell{num(2025), num(1), num(100), num(90)},
		[]dataset.Cell{num(2025), num(2), num(110), num(120)},
		[]dataset.Cell{num(2025), num(3), num(105), num(100)},
	)

	points := CumulativeBacklog(d)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	wantBacklog := []float64{10, 0, 5}
	for i, want := range wantBacklog {
		if points[i].Backlog != want {
			t.Errorf("month %d backlog = %.0f, want %.0f", i+1, points[i].Backlog, want)
		}
	}
}

func TestCumulativeBacklog_RestartsPerYear(t *testing.T) {
	d := makeDataset("monthly",
		[]string{"Year", "Month", "Created", "Resolved"},
		[]dataset.Cell{num(2024), num(11), num(100), num(80)},
		[]dataset.Cell{num(2024), num(12), num(90), num(85)},
		[]dataset.Cell{num(2025), num(1), num(100), num(95)},
	)

	points := CumulativeBacklog(d)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	// 2024 accumulates 20 then 25; 2025 restarts at its own net of 5.
	if points[1].Backlog != 25 {
		t.Errorf("Dec 2024 backlog = %.0f, want 25", points[1].Backlog)
	}
	if points[2].Backlog != 5 {
		t.Errorf("Jan 2025 backlog = %.0f, want 5 (restarted)", points[2].Backlog)
	}
}

func TestCumulativeBacklog_SortsUnorderedInput(t *testing.T) {
	d := makeDataset("monthly",
		[]string{"Year", "Month", "Created", "Resolved"},
		[]dataset.Cell{num(2025), num(3), num(10), num(5)},
		[]dataset.Cell{num(2024), num(12), num(10), num(5)},
		[]dataset.Cell{num(2025), num(1), num(10), num(5)},
	)

	points := CumulativeBacklog(d)
	if points[0].Year != 2024 {
		t.Errorf("first point year = %d, want 2024", points[0].Year)
	}
	if points[1].Month != time.January || points[2].Month != time.March {
		t.Errorf("2025 months = %s, %s; want January, March", points[1].Month, points[2].Month)
	}
}

func TestCumulativeBacklog_MissingColumns(t *testing.T) {
	d := makeDataset("monthly", []string{"Year", "Created"}, []dataset.Cell{num(2025), num(10)})

	if points := CumulativeBacklog(d); points != nil {
		t.Errorf("missing columns should yield nil, got %+v", points)
	}
	if points := CumulativeBacklog(nil); points != nil {
		t.Errorf("nil dataset should yield nil, got %+v", points)
	}
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		name string
		cell dataset.Cell
		want time.Month
		ok   bool
	}{
		{"numeric", num(3), time.March, true},
		{"numeric out of range", num(13), 0, false},
		{"full name", txt("March"), time.March, true},
		{"abbreviation", txt("Mar"), time.March, true},
		{"year-month stamp", txt("2025-03"), time.March, true},
		{"garbage", txt("someday"), 0, false},
		{"empty", txt(""), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := monthIndex(tc.cell)
			if ok != tc.ok || got != tc.want {
				t.Errorf("monthIndex(%+v) = %s, %v; want %s, %v", tc.cell, got, ok, tc.want, tc.ok)
			}
		})
	}
}
