package service

import (
	"testing"

	"portplanner/internal/config"
	"portplanner/internal/terminal"
)

func TestParseVolumes(t *testing.T) {
	sc, err := parseVolumes([]byte(`{"2020": 500000, "2021": 750000}`))
	if err != nil {
		t.Fatalf("parseVolumes: %v", err)
	}
	if len(sc) != 2 {
		t.Fatalf("expected 2 years, got %d", len(sc))
	}
	if sc[2020] != 500000 || sc[2021] != 750000 {
		t.Fatalf("unexpected volumes: %v", sc)
	}
}

func TestParseVolumesRejectsBadYear(t *testing.T) {
	if _, err := parseVolumes([]byte(`{"first": 500000}`)); err == nil {
		t.Fatal("expected error for non-numeric year key")
	}
}

func TestParseVolumesRejectsBadJSON(t *testing.T) {
	if _, err := parseVolumes([]byte(`{"2020": `)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestApplyOverrides(t *testing.T) {
	p := terminal.DefaultParams()
	fee := 725.0
	equip := "rmg"
	applyOverrides(&p, &ParamOverrides{HandlingFee: &fee, StackEquipment: &equip})

	if p.HandlingFee != 725.0 {
		t.Fatalf("handling fee override lost: %v", p.HandlingFee)
	}
	if p.StackEquipment != "rmg" {
		t.Fatalf("stack equipment override lost: %v", p.StackEquipment)
	}
	// Untouched fields keep their defaults.
	if p.StartYear != terminal.DefaultParams().StartYear {
		t.Fatalf("start year changed without an override: %d", p.StartYear)
	}
}

func TestApplyOverridesNilIsNoop(t *testing.T) {
	p := terminal.DefaultParams()
	before := p
	applyOverrides(&p, nil)
	if p != before {
		t.Fatal("nil overrides changed params")
	}
}

func TestBaseParamsMergesConfig(t *testing.T) {
	svc := NewPlannerService(nil, nil, nil, config.SimulationConfig{
		StartYear:   2025,
		HandlingFee: 600,
		Finance: config.FinanceConfig{
			GearingPerc:  50,
			ReturnEquity: 0.12,
			ReturnDebt:   0.25,
			TaxRate:      0.30,
			Inflation:    0.03,
		},
	})
	p := svc.baseParams()
	if p.StartYear != 2025 {
		t.Fatalf("start year not merged: %d", p.StartYear)
	}
	if p.HandlingFee != 600 {
		t.Fatalf("handling fee not merged: %v", p.HandlingFee)
	}
	if p.Finance.GearingPerc != 50 || p.Finance.Inflation != 0.03 {
		t.Fatalf("finance not merged: %+v", p.Finance)
	}
	// Zero config values must not clobber defaults.
	if p.Lifecycle != terminal.DefaultParams().Lifecycle {
		t.Fatalf("lifecycle clobbered by zero config: %d", p.Lifecycle)
	}
}

func TestRunElementsCraneCapacityColumn(t *testing.T) {
	src := []terminal.Element{
		{Kind: terminal.KindCrane, Name: "crane_01", YearOnline: 2022, EffectiveCapacity: 2500},
		{Kind: terminal.KindLadenStack, Name: "laden_stack_01", YearOnline: 2022, Capacity: 1800},
	}
	rows := runElements("run-1", src)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Cranes persist their service rate in the capacity column.
	got, _ := rows[0].Capacity.Float64()
	if got != 2500 {
		t.Fatalf("crane capacity column = %v, want 2500", got)
	}
	got, _ = rows[1].Capacity.Float64()
	if got != 1800 {
		t.Fatalf("stack capacity column = %v, want 1800", got)
	}
	if rows[0].RunID != "run-1" || rows[0].Kind != "crane" {
		t.Fatalf("row metadata wrong: %+v", rows[0])
	}
}

func TestLedgerRows(t *testing.T) {
	ledger := terminal.Ledger{
		{Year: 2020, Capex: 1000.5, Revenue: 0},
		{Year: 2021, Capex: 0, Revenue: 2500.25},
	}
	rows := ledgerRows("run-1", ledger, true)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].RunID != "run-1" || !rows[0].Discounted {
		t.Fatalf("row metadata wrong: %+v", rows[0])
	}
	if rows[0].Year != 2020 || !rows[0].Capex.Equal(rows[0].Capex.Truncate(4)) {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	got, _ := rows[1].Revenue.Float64()
	if got != 2500.25 {
		t.Fatalf("revenue lost precision: %v", got)
	}
}
