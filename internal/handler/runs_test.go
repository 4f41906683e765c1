package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"portplanner/internal/models"
)

func TestRunWindowFromParams(t *testing.T) {
	run := &models.SimulationRun{
		Params: datatypes.JSON(`{"StartYear": 2020, "Lifecycle": 20}`),
	}
	start, lifecycle := runWindow(run, nil)
	if start != 2020 || lifecycle != 20 {
		t.Fatalf("runWindow = (%d, %d), want (2020, 20)", start, lifecycle)
	}
}

func TestRunWindowFallsBackToElementSpan(t *testing.T) {
	run := &models.SimulationRun{Params: datatypes.JSON(`not json`)}
	elements := []models.RunElement{
		{YearOnline: 2022},
		{YearOnline: 2020},
		{YearOnline: 2027},
	}
	start, lifecycle := runWindow(run, elements)
	if start != 2020 || lifecycle != 8 {
		t.Fatalf("runWindow = (%d, %d), want (2020, 8)", start, lifecycle)
	}
}

func TestTimelineRowsCraneCapacity(t *testing.T) {
	elements := []models.RunElement{
		{Kind: "crane", YearOnline: 2021, Capacity: decimal.NewFromInt(2500)},
		{Kind: "crane", YearOnline: 2022, Capacity: decimal.NewFromInt(2500)},
		{Kind: "laden_stack", YearOnline: 2021, Capacity: decimal.NewFromInt(1800), LandUse: decimal.NewFromInt(9000)},
	}
	rows := timelineRows(2020, 4, elements)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	if rows[0].CraneCap != 0 || rows[0].OnlineCounts["crane"] != 0 {
		t.Fatalf("2020 should have nothing online: %+v", rows[0])
	}
	if rows[1].CraneCap != 2500 || rows[1].OnlineCounts["crane"] != 1 {
		t.Fatalf("2021 crane capacity = %v (count %d), want 2500 (1)", rows[1].CraneCap, rows[1].OnlineCounts["crane"])
	}
	if rows[2].CraneCap != 5000 || rows[2].OnlineCounts["crane"] != 2 {
		t.Fatalf("2022 crane capacity = %v (count %d), want 5000 (2)", rows[2].CraneCap, rows[2].OnlineCounts["crane"])
	}
	if rows[3].LandUse["laden_stack"] != 9000 {
		t.Fatalf("stack land use = %v, want 9000", rows[3].LandUse["laden_stack"])
	}
	// Stack capacity never leaks into the crane column.
	if rows[3].CraneCap != 5000 {
		t.Fatalf("2023 crane capacity = %v, want 5000", rows[3].CraneCap)
	}
}

func TestRunWindowEmpty(t *testing.T) {
	run := &models.SimulationRun{Params: datatypes.JSON(`{}`)}
	start, lifecycle := runWindow(run, nil)
	if start != 0 || lifecycle != 0 {
		t.Fatalf("runWindow = (%d, %d), want (0, 0)", start, lifecycle)
	}
}
