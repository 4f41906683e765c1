package terminal

import (
	"math"
	"testing"
)

func newTestTerminal(t *testing.T, lifecycle int, scenario Scenario) *Terminal {
	t.Helper()
	p := DefaultParams()
	p.Lifecycle = lifecycle
	term, err := New(p, DefaultSet(), scenario)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return term
}

func TestBerthOccupancyNoCranesIsUnbounded(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	calls, _, _ := term.VesselCalls(2020)
	occ := term.BerthOccupancy(2020, calls)

	if !IsUnbounded(occ.BerthPlanned) {
		t.Fatalf("berth occupancy planned with zero cranes = %v, want unbounded", occ.BerthPlanned)
	}
	if !IsUnbounded(occ.CraneOnline) {
		t.Fatalf("crane occupancy online with zero cranes = %v, want unbounded", occ.CraneOnline)
	}
}

func TestBerthOccupancyOnlineClamped(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 2_000_000})

	term.Registry().Append(Element{Kind: KindBerth, YearOnline: 2020, MaxCranes: 4})
	term.Registry().Append(Element{Kind: KindQuay, YearOnline: 2020})
	term.Registry().Append(Element{
		Kind: KindCrane, YearOnline: 2020,
		EffectiveCapacity: term.Defaults.Crane.EffectiveCapacity(),
	})

	calls, _, _ := term.VesselCalls(2020)
	occ := term.BerthOccupancy(2020, calls)

	if occ.BerthOnline > 1 {
		t.Fatalf("berth occupancy online = %v, want clamped to 1", occ.BerthOnline)
	}
	if occ.BerthPlanned <= 1 {
		t.Fatalf("berth occupancy planned = %v, want > 1 for an overloaded single crane", occ.BerthPlanned)
	}
}

func TestWaitingFactorTableBounds(t *testing.T) {
	if got := WaitingFactor(0, 0.5); !IsUnbounded(got) {
		t.Fatalf("WaitingFactor(0, 0.5) = %v, want unbounded", got)
	}
	if got := WaitingFactor(8, 0.5); !IsUnbounded(got) {
		t.Fatalf("WaitingFactor(8, 0.5) = %v, want unbounded", got)
	}
	if got := WaitingFactor(7, 0.5); IsUnbounded(got) {
		t.Fatalf("WaitingFactor(7, 0.5) = %v, want finite", got)
	}
}

func TestWaitingFactorClampsNegative(t *testing.T) {
	// The two-berth polynomial dips below zero around 20% occupancy.
	if got := WaitingFactor(2, 0.2); got != 0 {
		t.Fatalf("WaitingFactor(2, 0.2) = %v, want 0", got)
	}
}

func TestWaitingFactorSingleBerth(t *testing.T) {
	occ := 0.5
	want := 79.726*math.Pow(occ, 4) - 126.47*math.Pow(occ, 3) + 70.660*occ*occ - 14.651*occ + 0.9218
	got := WaitingFactor(1, occ)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("WaitingFactor(1, %v) = %v, want %v", occ, got, want)
	}
}

func TestGateMinutesNoGatesIsUnbounded(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	d := term.GateMinutes(2020)
	if !IsUnbounded(d.ServiceRate) {
		t.Fatalf("gate service rate with zero gates = %v, want unbounded", d.ServiceRate)
	}
}

func TestLadenReeferStackCapacityScalesWithDemand(t *testing.T) {
	small := newTestTerminal(t, 10, Scenario{2020: 500_000})
	large := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	ds := small.LadenReeferStackCapacity(2020)
	dl := large.LadenReeferStackCapacity(2020)

	if ds.Required <= 0 {
		t.Fatalf("required stack capacity = %v, want positive", ds.Required)
	}
	if dl.Required <= ds.Required {
		t.Fatalf("required capacity did not grow with demand: %v vs %v", dl.Required, ds.Required)
	}
	if math.Abs(dl.Required-2*ds.Required) > 1e-6*ds.Required {
		t.Fatalf("required capacity not linear in demand: %v vs 2x %v", dl.Required, ds.Required)
	}
}

func TestQuaySizingTransitions(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{})

	var loa float64
	for _, v := range term.Defaults.Vessels {
		loa = math.Max(loa, v.LOA)
	}

	// First section: largest vessel plus two berthing gaps.
	term.Registry().Append(Element{Kind: KindBerth, YearOnline: 2020, MaxCranes: 4})
	length, depth := term.nextQuayDimensions()
	if want := loa + 30; length != want {
		t.Fatalf("first quay length = %v, want %v", length, want)
	}
	if depth <= 13 {
		t.Fatalf("quay depth = %v, want draft plus margins", depth)
	}

	// Second section extends the continuous quay.
	term.Registry().Append(Element{Kind: KindQuay, YearOnline: 2022, Length: length})
	term.Registry().Append(Element{Kind: KindBerth, YearOnline: 2021, MaxCranes: 4})
	length2, _ := term.nextQuayDimensions()
	if want := 1.1*2*(loa+15) - (loa + 30); math.Abs(length2-want) > 1e-9 {
		t.Fatalf("second quay length = %v, want %v", length2, want)
	}

	// Later sections are a constant span each.
	term.Registry().Append(Element{Kind: KindQuay, YearOnline: 2023, Length: length2})
	term.Registry().Append(Element{Kind: KindBerth, YearOnline: 2022, MaxCranes: 4})
	length3, _ := term.nextQuayDimensions()
	if want := 1.1 * (loa + 15); math.Abs(length3-want) > 1e-9 {
		t.Fatalf("third quay length = %v, want %v", length3, want)
	}
}
