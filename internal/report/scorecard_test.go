package report

import (
	"testing"

	"github.com/coveline/deskwatch/internal/dataset"
)

func assigneeDataset() *dataset.Dataset {
	return makeDataset("assignees",
		[]string{"Assignee", "Year", "Support_Level", "Total_Resolved",
			"Avg_Resolution_Days", "Resolution_Rate_Pct", "Engineering_Rate_Pct"},
		[]dataset.Cell{txt("alex"), num(2025), txt("Level 1"), num(120), num(3.0), pct(90), pct(10)},
		[]dataset.Cell{txt("sam"), num(2025), txt("Level 1"), num(80), num(5.0), pct(80), pct(20)},
		[]dataset.Cell{txt("robin"), num(2025), txt("Level 2"), num(40), num(8.0), pct(70), pct(50)},
		[]dataset.Cell{txt("alex"), num(2024), txt("Level 1"), num(100), num(4.0), pct(85), pct(15)},
	)
}

func TestComputeLevel1_CurrentYearLevel1Only(t *testing.T) {
	ls := computeLevel1(assigneeDataset(), 2025)

	if !ls.Available {
		t.Fatal("level 1 summary should be available")
	}
	// robin is level 2 and the 2024 alex row is out of period.
	if ls.Agents != 2 {
		t.Fatalf("agents = %d, want 2", ls.Agents)
	}
	if !ls.AvgResolved.Available || ls.AvgResolved.Value != 100 {
		t.Errorf("avg resolved = %+v, want available 100", ls.AvgResolved)
	}
	if !ls.AvgResolutionDays.Available || ls.AvgResolutionDays.Value != 4 {
		t.Errorf("avg resolution days = %+v, want available 4", ls.AvgResolutionDays)
	}
	if !ls.AvgResolutionRate.Available || ls.AvgResolutionRate.Value != 85 {
		t.Errorf("avg resolution rate = %+v, want available 85", ls.AvgResolutionRate)
	}
}

func TestComputeLevel1_NoMatchingRows(t *testing.T) {
	ls := computeLevel1(assigneeDataset(), 2030)

	if ls.Agents != 0 {
		t.Errorf("agents = %d, want 0", ls.Agents)
	}
	if ls.AvgResolved.Available || ls.AvgResolutionDays.Available {
		t.Error("aggregates over zero agents should be unavailable")
	}
}

func TestComputeTeam_Rankings(t *testing.T) {
	set := dataset.Set{dataset.Assignees: assigneeDataset()}
	ts := computeTeam(set, testYears)

	if len(ts.AssigneeRankings) != 2 {
		t.Fatalf("expected 2 ranked assignees, got %d", len(ts.AssigneeRankings))
	}
	if ts.AssigneeRankings[0].Key != "alex" || ts.AssigneeRankings[0].Rank != 1 {
		t.Errorf("top assignee = %+v, want alex at rank 1", ts.AssigneeRankings[0])
	}

	// alex is the only assignee present in both years.
	if len(ts.AssigneeComparison) != 1 || ts.AssigneeComparison[0].Entity != "alex" {
		t.Fatalf("comparison = %+v, want alex only", ts.AssigneeComparison)
	}
	if ts.AssigneeComparison[0].Delta != 20 {
		t.Errorf("alex delta = %.0f, want 20", ts.AssigneeComparison[0].Delta)
	}
}

func TestComputeLevel2(t *testing.T) {
	contributors := makeDataset("contributors",
		[]string{"Contributor", "Year", "Tickets_Contributed", "Total_Comments",
			"Avg_Comments_Per_Ticket", "Comment_Velocity_Per_Day"},
		[]dataset.Cell{txt("lee"), num(2025), num(50), num(200), num(4.0), num(6.0)},
		[]dataset.Cell{txt("mori"), num(2025), num(30), num(90), num(3.0), num(4.0)},
		[]dataset.Cell{txt("lee"), num(2024), num(40), num(150), num(3.5), num(5.0)},
	)

	cs := computeLevel2(contributors, 2025)
	if cs.Contributors != 2 {
		t.Fatalf("contributors = %d, want 2", cs.Contributors)
	}
	if !cs.TicketsContributed.Available || cs.TicketsContributed.Value != 80 {
		t.Errorf("tickets contributed = %+v, want available 80", cs.TicketsContributed)
	}
	if !cs.TotalComments.Available || cs.TotalComments.Value != 290 {
		t.Errorf("total comments = %+v, want available 290", cs.TotalComments)
	}
	if !cs.AvgCommentsPerTicket.Available || cs.AvgCommentsPerTicket.Value != 3.5 {
		t.Errorf("avg comments per ticket = %+v, want available 3.5", cs.AvgCommentsPerTicket)
	}
}

func TestYearRows_NoYearColumnIncludesAll(t *testing.T) {
	d := makeDataset("contributors",
		[]string{"Contributor", "Tickets_Contributed"},
		[]dataset.Cell{txt("lee"), num(50)},
		[]dataset.Cell{txt("mori"), num(30)},
	)

	rows := yearRows(d, 2025)
	if len(rows) != 2 {
		t.Errorf("single-year export should include every row, got %d", len(rows))
	}
}
