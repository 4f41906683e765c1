package terminal

import "math"

// WACCNominal is the after-tax weighted average cost of capital in nominal
// terms: equity and debt returns weighted by the gearing split, shielded by
// the tax rate.
func WACCNominal(f FinanceParams) float64 {
	equity := 100 - f.GearingPerc
	debt := f.GearingPerc
	total := equity + debt
	return ((equity/total)*f.ReturnEquity + (debt/total)*f.ReturnDebt) * (1 - f.TaxRate)
}

// WACCReal deflates the nominal WACC by the configured inflation rate, for
// discounting cash flows denoted in real terms.
func WACCReal(f FinanceParams) float64 {
	return (1+WACCNominal(f))/(1+f.Inflation) - 1
}

// DiscountedLedger discounts every ledger row to the start year at the real
// WACC and returns the discounted rows plus the net present value of
// revenue minus capex and opex.
func (t *Terminal) DiscountedLedger(rows Ledger) (Ledger, float64) {
	wacc := WACCReal(t.Params.Finance)

	out := make(Ledger, len(rows))
	var npv float64
	for i, row := range rows {
		d := 1 / math.Pow(1+wacc, float64(row.Year-t.Params.StartYear))

		out[i] = CashFlowYear{
			Year:        row.Year,
			Capex:       row.Capex * d,
			Maintenance: row.Maintenance * d,
			Insurance:   row.Insurance * d,
			Energy:      row.Energy * d,
			Labour:      row.Labour * d,
			Fuel:        row.Fuel * d,
			Demurrage:   row.Demurrage * d,
			Revenue:     row.Revenue * d,
		}
		npv += out[i].Revenue - out[i].Capex - out[i].Opex()
	}
	return out, npv
}
