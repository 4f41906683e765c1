package terminal

import (
	"context"
	"testing"
)

func constantScenario(start, years int, volume float64) Scenario {
	s := make(Scenario, years)
	for y := start; y < start+years; y++ {
		s[y] = volume
	}
	return s
}

func TestSimulateBuildsQuaysideInFirstYear(t *testing.T) {
	term := newTestTerminal(t, 10, constantScenario(2020, 10, 1_000_000))

	res, err := term.Simulate(context.Background())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	for _, kind := range []Kind{KindBerth, KindQuay, KindCrane} {
		if n := term.Registry().Planned(kind); n < 1 {
			t.Fatalf("no %s created", kind)
		}
	}

	// Occupancy starts unbounded with zero cranes, so the quayside chain
	// must be committed in the opening year.
	if len(res.Reports) != 10 {
		t.Fatalf("got %d year reports, want 10", len(res.Reports))
	}
	added := map[Kind]bool{}
	for _, a := range res.Reports[0].Added {
		added[a.Kind] = true
	}
	for _, kind := range []Kind{KindBerth, KindQuay, KindCrane} {
		if !added[kind] {
			t.Fatalf("year 2020 did not add a %s; added %v", kind, res.Reports[0].Added)
		}
	}

	if n := term.Registry().Planned(KindLadenStack); n < 1 {
		t.Fatalf("no laden stack created for 1M TEU demand")
	}
	if n := term.Registry().Planned(KindGeneral); n != 1 {
		t.Fatalf("general services blocks = %d, want exactly 1", n)
	}
}

func TestSimulateOccupancyConverges(t *testing.T) {
	term := newTestTerminal(t, 10, constantScenario(2020, 10, 1_000_000))

	if _, err := term.Simulate(context.Background()); err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	calls, _, _ := term.VesselCalls(2029)
	occ := term.BerthOccupancy(2029, calls)
	if occ.BerthPlanned > term.Params.AllowableBerthOccupancy {
		t.Fatalf("final planned berth occupancy %v exceeds allowable %v",
			occ.BerthPlanned, term.Params.AllowableBerthOccupancy)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() *Results {
		term := newTestTerminal(t, 10, constantScenario(2020, 10, 750_000))
		res, err := term.Simulate(context.Background())
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a.NPV != b.NPV {
		t.Fatalf("NPV not deterministic: %v vs %v", a.NPV, b.NPV)
	}
	if len(a.Elements) != len(b.Elements) {
		t.Fatalf("element counts differ: %d vs %d", len(a.Elements), len(b.Elements))
	}
	for i := range a.Elements {
		if a.Elements[i].Name != b.Elements[i].Name || a.Elements[i].YearOnline != b.Elements[i].YearOnline {
			t.Fatalf("element %d differs between runs: %+v vs %+v", i, a.Elements[i], b.Elements[i])
		}
	}
}

func TestSimulateGrowingDemandAddsCapacityMonotonically(t *testing.T) {
	s := make(Scenario)
	for i := 0; i < 10; i++ {
		s[2020+i] = 400_000 + float64(i)*150_000
	}
	term := newTestTerminal(t, 10, s)

	var prevTotal int
	term.OnYear = func(r YearReport) {
		total := term.Registry().Len()
		if total < prevTotal {
			t.Fatalf("registry shrank in %d: %d -> %d", r.Year, prevTotal, total)
		}
		prevTotal = total
	}

	if _, err := term.Simulate(context.Background()); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if term.Registry().Planned(KindCrane) < 2 {
		t.Fatalf("growing demand ended with %d cranes, want at least 2", term.Registry().Planned(KindCrane))
	}
}

func TestSimulateCancellation(t *testing.T) {
	term := newTestTerminal(t, 10, constantScenario(2020, 10, 1_000_000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := term.Simulate(ctx); err == nil {
		t.Fatal("Simulate with cancelled context returned nil error")
	}
}

func TestSimulateZeroDemand(t *testing.T) {
	term := newTestTerminal(t, 5, Scenario{})

	res, err := term.Simulate(context.Background())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	// Occupancy starts unbounded regardless of demand, so the minimum
	// quayside chain is still committed once; nothing more after that.
	if n := term.Registry().Planned(KindCrane); n != 1 {
		t.Fatalf("zero demand created %d cranes, want the single opening crane", n)
	}
	for _, row := range res.Ledger {
		if row.Revenue != 0 {
			t.Fatalf("zero demand booked revenue %v in %d", row.Revenue, row.Year)
		}
	}
}

func TestStackEquipmentTriggerByTechnology(t *testing.T) {
	p := DefaultParams()
	p.Lifecycle = 10
	p.StackEquipment = "rmg"
	p.LadenStack = "rmg"
	term, err := New(p, DefaultSet(), constantScenario(2020, 10, 1_000_000))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := term.Simulate(context.Background()); err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	_, stacksOnline := term.Registry().Count(KindLadenStack, 2029)
	units := term.Registry().Planned(KindStackEquipment)
	ratio := term.Defaults.Equipment["rmg"].StacksPerUnit
	if float64(stacksOnline) > float64(units)*ratio {
		t.Fatalf("rmg trigger unsatisfied: %d stacks online for %d units at ratio %v", stacksOnline, units, ratio)
	}
}
