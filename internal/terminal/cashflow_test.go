package terminal

import (
	"context"
	"math"
	"testing"
)

func TestAttachSeriesCapexTiming(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{})

	// Long lead time: 60/40 over the two construction years.
	quay := Element{Kind: KindQuay, Capex: 1_000_000, DeliveryTime: 2, YearOnline: 2022}
	term.attachSeries(&quay)
	if got := quay.Series.Capex[0]; got != 600_000 {
		t.Fatalf("capex in 2020 = %v, want 600000", got)
	}
	if got := quay.Series.Capex[1]; got != 400_000 {
		t.Fatalf("capex in 2021 = %v, want 400000", got)
	}
	for i := 2; i < 10; i++ {
		if quay.Series.Capex[i] != 0 {
			t.Fatalf("capex leaked into year index %d: %v", i, quay.Series.Capex[i])
		}
	}

	// Short lead time: booked in full the year before commissioning.
	crane := Element{Kind: KindCrane, Capex: 500_000, DeliveryTime: 1, YearOnline: 2023}
	term.attachSeries(&crane)
	if got := crane.Series.Capex[2]; got != 500_000 {
		t.Fatalf("capex in 2022 = %v, want 500000", got)
	}
}

func TestAttachSeriesDropsOutOfWindowCapex(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{})

	// Commissioning in the start year books capex in the year before the
	// window opens; that year is outside the ledger and contributes nothing.
	e := Element{Kind: KindTransport, Capex: 90_000, DeliveryTime: 0, YearOnline: 2020}
	term.attachSeries(&e)
	for i, v := range e.Series.Capex {
		if v != 0 {
			t.Fatalf("out-of-window capex booked at index %d: %v", i, v)
		}
	}
}

func TestAttachSeriesOpexFromYearOnline(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{})

	e := Element{
		Kind: KindCrane, Capex: 1, DeliveryTime: 1, YearOnline: 2024,
		Maintenance: 200, Insurance: 100, Labour: 300,
	}
	term.attachSeries(&e)

	for i := 0; i < 4; i++ {
		if e.Series.Maintenance[i] != 0 || e.Series.Labour[i] != 0 {
			t.Fatalf("opex booked before commissioning at index %d", i)
		}
	}
	for i := 4; i < 10; i++ {
		if e.Series.Maintenance[i] != 200 || e.Series.Insurance[i] != 100 || e.Series.Labour[i] != 300 {
			t.Fatalf("opex missing at index %d: %+v", i, e.Series)
		}
	}
}

func TestAttachSeriesZeroesNonFinite(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{})

	e := Element{Kind: KindGate, Capex: Unbounded(), DeliveryTime: 1, YearOnline: 2022, Maintenance: math.NaN()}
	term.attachSeries(&e)
	for i := range e.Series.Capex {
		if e.Series.Capex[i] != 0 || e.Series.Maintenance[i] != 0 {
			t.Fatalf("non-finite value reached the series at index %d", i)
		}
	}
}

func TestLedgerMatchesElementSeries(t *testing.T) {
	term := newTestTerminal(t, 10, constantScenario(2020, 10, 1_000_000))

	res, err := term.Simulate(context.Background())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	// Every ledger cell is the sum of the element series plus the
	// terminal-level demurrage and revenue rows.
	var wantCapex float64
	for _, e := range res.Elements {
		for _, v := range e.Series.Capex {
			wantCapex += v
		}
	}
	var gotCapex float64
	for _, row := range res.Ledger {
		gotCapex += row.Capex
	}
	if math.Abs(gotCapex-wantCapex) > 1e-6 {
		t.Fatalf("ledger capex %v != summed element capex %v", gotCapex, wantCapex)
	}

	for _, row := range res.Ledger {
		if math.IsInf(row.Revenue, 0) || math.IsNaN(row.Revenue) {
			t.Fatalf("non-finite revenue in %d", row.Year)
		}
		if row.Capex < 0 || row.Maintenance < 0 || row.Revenue < 0 {
			t.Fatalf("negative cash-flow cell in %d: %+v", row.Year, row)
		}
	}
}

func TestRevenueCappedByCraneCapacity(t *testing.T) {
	term := newTestTerminal(t, 10, constantScenario(2020, 10, 5_000_000))

	if _, err := term.Simulate(context.Background()); err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	ledger := term.Ledger()
	demandRevenue := 5_000_000 * term.Params.HandlingFee
	for _, row := range ledger {
		if row.Revenue > demandRevenue {
			t.Fatalf("revenue %v in %d exceeds demand value %v", row.Revenue, row.Year, demandRevenue)
		}
	}

	// The first year has no online cranes, so nothing can be handled.
	if ledger[0].Revenue != 0 {
		t.Fatalf("revenue booked in %d before any crane is online: %v", ledger[0].Year, ledger[0].Revenue)
	}
}

func TestRevenueZeroForInconsistentBuild(t *testing.T) {
	term := newTestTerminal(t, 5, Scenario{2020: 1_000_000})
	term.demurrage = make([]float64, 5)
	term.revenues = make([]float64, 5)

	// Several cranes but no quay under them and no transport behind them:
	// nothing can actually be handled, so the year books zero revenue.
	eff := term.Defaults.Crane.EffectiveCapacity()
	term.reg.Append(Element{Kind: KindCrane, YearOnline: 2020, EffectiveCapacity: eff})
	term.reg.Append(Element{Kind: KindCrane, YearOnline: 2020, EffectiveCapacity: eff})

	term.revenuePass(2020)
	if term.revenues[0] != 0 {
		t.Fatalf("revenue for quay-less multi-crane build = %v, want 0", term.revenues[0])
	}
}

func TestRevenueGuardNeedsMultipleCranes(t *testing.T) {
	term := newTestTerminal(t, 5, Scenario{2020: 1_000_000})
	term.demurrage = make([]float64, 5)
	term.revenues = make([]float64, 5)

	// A single crane does not trip the guard.
	term.reg.Append(Element{Kind: KindCrane, YearOnline: 2020, EffectiveCapacity: term.Defaults.Crane.EffectiveCapacity()})

	term.revenuePass(2020)
	want := 1_000_000 * term.Params.HandlingFee
	if term.revenues[0] != want {
		t.Fatalf("single-crane revenue = %v, want %v", term.revenues[0], want)
	}
}

func TestDemurrageZeroWithoutQuays(t *testing.T) {
	term := newTestTerminal(t, 5, Scenario{2020: 1_000_000})
	term.demurrage = make([]float64, 5)
	term.revenues = make([]float64, 5)

	term.demurragePass(2020)
	if term.demurrage[0] != 0 {
		t.Fatalf("demurrage with no quays = %v, want 0", term.demurrage[0])
	}
}
