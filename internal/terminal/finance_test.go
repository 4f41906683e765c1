package terminal

import (
	"math"
	"testing"
)

func TestWACCNominalReference(t *testing.T) {
	f := DefaultParams().Finance
	got := WACCNominal(f)
	// 40% equity at 10%, 60% debt at 30%, shielded by 28% tax.
	want := (0.4*0.10 + 0.6*0.30) * (1 - 0.28)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("WACCNominal = %v, want %v", got, want)
	}
}

func TestWACCRealDeflatesByInflation(t *testing.T) {
	f := DefaultParams().Finance
	nominal := WACCNominal(f)
	got := WACCReal(f)
	want := (1+nominal)/(1+f.Inflation) - 1
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("WACCReal = %v, want %v", got, want)
	}
	if got >= nominal {
		t.Fatalf("real WACC %v should sit below nominal %v with positive inflation", got, nominal)
	}
}

func TestDiscountedLedger(t *testing.T) {
	term := newTestTerminal(t, 3, Scenario{})

	ledger := Ledger{
		{Year: 2020, Capex: 1000, Revenue: 500},
		{Year: 2021, Maintenance: 100, Revenue: 500},
		{Year: 2022, Revenue: 500},
	}
	disc, npv := term.DiscountedLedger(ledger)

	wacc := WACCReal(term.Params.Finance)
	if disc[0].Capex != 1000 {
		t.Fatalf("start-year capex should be undiscounted, got %v", disc[0].Capex)
	}
	wantRev1 := 500 / (1 + wacc)
	if math.Abs(disc[1].Revenue-wantRev1) > 1e-9 {
		t.Fatalf("discounted 2021 revenue = %v, want %v", disc[1].Revenue, wantRev1)
	}

	var want float64
	for _, row := range disc {
		want += row.Revenue - row.Capex - row.Opex()
	}
	if math.Abs(npv-want) > 1e-9 {
		t.Fatalf("NPV = %v, want %v", npv, want)
	}
}

func TestNPVNegativeWithoutRevenue(t *testing.T) {
	term := newTestTerminal(t, 3, Scenario{})

	ledger := Ledger{
		{Year: 2020, Capex: 1_000_000},
		{Year: 2021, Maintenance: 50_000},
		{Year: 2022, Maintenance: 50_000},
	}
	if _, npv := term.DiscountedLedger(ledger); npv >= 0 {
		t.Fatalf("cost-only ledger yielded NPV %v, want negative", npv)
	}
}
