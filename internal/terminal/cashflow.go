package terminal

import "math"

// Series holds one element's cash-flow contribution per lifecycle year,
// indexed from the start year. Capex, maintenance, insurance and labour are
// attached once at investment time; energy and fuel are filled by the
// variable-cost passes after the investment loop completes.
type Series struct {
	Capex       []float64 `json:"capex"`
	Maintenance []float64 `json:"maintenance"`
	Insurance   []float64 `json:"insurance"`
	Labour      []float64 `json:"labour"`
	Energy      []float64 `json:"energy"`
	Fuel        []float64 `json:"fuel"`
}

func newSeries(lifecycle int) Series {
	return Series{
		Capex:       make([]float64, lifecycle),
		Maintenance: make([]float64, lifecycle),
		Insurance:   make([]float64, lifecycle),
		Labour:      make([]float64, lifecycle),
		Energy:      make([]float64, lifecycle),
		Fuel:        make([]float64, lifecycle),
	}
}

// attachSeries phases the element's costs over the lifecycle. Capex for long
// lead times is split 60/40 over the two construction years; otherwise it
// books in full the year before commissioning. Fixed opex runs from the
// commissioning year onward. Years outside the lifecycle contribute nothing.
func (t *Terminal) attachSeries(e *Element) {
	s := newSeries(t.Params.Lifecycle)

	capex := finite(e.Capex)
	if e.DeliveryTime > 1 {
		if i, ok := t.yearIndex(e.YearOnline - 2); ok {
			s.Capex[i] = 0.6 * capex
		}
		if i, ok := t.yearIndex(e.YearOnline - 1); ok {
			s.Capex[i] = 0.4 * capex
		}
	} else {
		if i, ok := t.yearIndex(e.YearOnline - 1); ok {
			s.Capex[i] = capex
		}
	}

	for year := e.YearOnline; year < t.endYear(); year++ {
		i, ok := t.yearIndex(year)
		if !ok {
			continue
		}
		s.Maintenance[i] = finite(e.Maintenance)
		s.Insurance[i] = finite(e.Insurance)
		s.Labour[i] = finite(e.Labour)
	}

	e.Series = s
}

// energyCostPass distributes the year's electricity bill over the online
// consumers: crane moves, RMG stack moves, reefer slots held cold around the
// clock, lighting over the online footprint and the general services block.
func (t *Terminal) energyCostPass(year int) {
	idx, ok := t.yearIndex(year)
	if !ok {
		return
	}
	stsMoves, stackMoves, _, _ := t.BoxMoves(year)
	price := t.Params.EnergyPrice

	_, cranesOnline := t.reg.Count(KindCrane, year)
	t.reg.Each(KindCrane, func(e *Element) {
		if e.OnlineIn(year) && cranesOnline > 0 {
			e.Series.Energy[idx] = finite(e.Consumption * stsMoves / float64(cranesOnline) * price)
		} else {
			e.Series.Energy[idx] = 0
		}
	})

	// Only rail-mounted gantries run on power; the other equipment types
	// burn fuel and are handled in the fuel pass.
	if t.Params.StackEquipment == "rmg" {
		_, online := t.reg.Count(KindStackEquipment, year)
		t.reg.Each(KindStackEquipment, func(e *Element) {
			if e.OnlineIn(year) && online > 0 {
				e.Series.Energy[idx] = finite(e.PowerConsumption * stackMoves / float64(online) * price)
			} else {
				e.Series.Energy[idx] = 0
			}
		})
	}

	demand := t.LadenReeferStackCapacity(year)
	_, stacksOnline := t.reg.Count(KindLadenStack, year)
	t.reg.Each(KindLadenStack, func(e *Element) {
		if e.OnlineIn(year) && stacksOnline > 0 {
			slotsPerStack := demand.ReeferSlots / float64(stacksOnline)
			e.Series.Energy[idx] = finite(slotsPerStack * e.ReefersPresent * price * 24 * 365)
		} else {
			e.Series.Energy[idx] = 0
		}
	})

	cfg := t.Defaults.General
	footprint := t.reg.LandUse(KindQuay, year) +
		t.reg.LandUse(KindLadenStack, year) +
		t.reg.LandUse(KindEmptyStack, year) +
		t.reg.LandUse(KindOOGStack, year) +
		t.reg.LandUse(KindGate, year) +
		t.reg.LandUse(KindGeneral, year)
	lighting := footprint * price * cfg.LightingConsumption
	generalUse := cfg.GeneralConsumption * price * t.Params.OperationalHours

	t.reg.Each(KindGeneral, func(e *Element) {
		if e.OnlineIn(year) {
			e.Series.Energy[idx] = finite(lighting + generalUse)
		} else {
			e.Series.Energy[idx] = 0
		}
	})
}

// generalLabourPass books head-office and shift staffing on the general
// services block, sized in crew units of throughput. Nothing is booked until
// the first crane is online.
func (t *Terminal) generalLabourPass(year int) {
	idx, ok := t.yearIndex(year)
	if !ok {
		return
	}
	_, cranesOnline := t.reg.Count(KindCrane, year)
	if cranesOnline == 0 {
		return
	}

	cfg := t.Defaults.General
	lab := t.Defaults.Labour
	laden, reefer, empty, oog := t.ThroughputCharacteristics(year)
	throughput := laden + reefer + empty + oog

	crew := math.Ceil(throughput / cfg.CrewRequired)

	fixed := crew * (cfg.CEO + cfg.Secretary + cfg.Administration + cfg.HR + cfg.Commercial) *
		lab.WhiteCollarSalary
	shift := crew*lab.DailyShifts*cfg.Operations*lab.WhiteCollarSalary +
		crew*lab.DailyShifts*(cfg.Engineering+cfg.Security)*lab.BlueCollarSalary

	t.reg.Each(KindGeneral, func(e *Element) {
		if e.OnlineIn(year) {
			e.Series.Labour[idx] = finite(fixed + shift)
		} else {
			e.Series.Labour[idx] = 0
		}
	})
}

// fuelCostPass distributes diesel over empty handlers, fuel-driven stack
// equipment and the tractor fleet. Straddle carriers fold horizontal
// transport into their stack moves.
func (t *Terminal) fuelCostPass(year int) {
	idx, ok := t.yearIndex(year)
	if !ok {
		return
	}
	_, stackMoves, emptyMoves, tractorMoves := t.BoxMoves(year)
	price := t.Params.FuelPrice

	_, handlersOnline := t.reg.Count(KindEmptyHandler, year)
	t.reg.Each(KindEmptyHandler, func(e *Element) {
		if e.OnlineIn(year) && handlersOnline > 0 {
			e.Series.Fuel[idx] = finite(e.FuelConsumption * emptyMoves / float64(handlersOnline) * price)
		} else {
			e.Series.Fuel[idx] = 0
		}
	})

	if t.Params.StackEquipment != "rmg" {
		_, online := t.reg.Count(KindStackEquipment, year)
		t.reg.Each(KindStackEquipment, func(e *Element) {
			if e.OnlineIn(year) && online > 0 {
				e.Series.Fuel[idx] = finite(e.FuelConsumption * stackMoves / float64(online) * price)
			} else {
				e.Series.Fuel[idx] = 0
			}
		})
	}

	_, tractorsOnline := t.reg.Count(KindTransport, year)
	t.reg.Each(KindTransport, func(e *Element) {
		if e.OnlineIn(year) && tractorsOnline > 0 {
			e.Series.Fuel[idx] = finite(e.FuelConsumption * tractorMoves / float64(tractorsOnline) * price)
		} else {
			e.Series.Fuel[idx] = 0
		}
	})
}

// demurragePass charges vessel classes for waiting beyond their allowed
// turnaround. The average service rate is the online crane capacity spread
// over the quay sections.
func (t *Terminal) demurragePass(year int) {
	idx, ok := t.yearIndex(year)
	if !ok {
		return
	}
	calls, _, _ := t.VesselCalls(year)
	factor, _ := t.WaitingTime(year)

	quays := t.reg.Planned(KindQuay)
	if quays == 0 {
		t.demurrage[idx] = 0
		return
	}
	var serviceRate float64
	t.reg.Each(KindCrane, func(e *Element) {
		if e.OnlineIn(year) {
			serviceRate += e.EffectiveCapacity / float64(quays)
		}
	})
	if serviceRate == 0 {
		t.demurrage[idx] = 0
		return
	}

	var total float64
	for _, cc := range calls {
		serviceTime := cc.Class.CallSize / serviceRate
		waitingHours := factor * serviceTime
		penalty := math.Max(0, waitingHours-cc.Class.AllTurnTime)
		total += penalty * float64(cc.Calls) * cc.Class.DemurrageRate
	}
	t.demurrage[idx] = finite(total)
}

// revenuePass books the year's revenue: demand at the handling fee, capped
// by what the online cranes can actually move at their realized occupancy.
// The inconsistent-build guard zeroes the year entirely when cranes exist
// without a quay to stand on or transport to feed them.
func (t *Terminal) revenuePass(year int) {
	idx, ok := t.yearIndex(year)
	if !ok {
		return
	}
	volume, _ := t.Scenario.Volume(year)
	fee := t.Params.HandlingFee

	safetyFactor := 1.0
	if t.reg.Planned(KindQuay) < 1 && t.reg.Planned(KindCrane) > 1 && t.reg.Planned(KindTransport) < 1 {
		safetyFactor = 0
	}

	calls, _, _ := t.VesselCalls(year)
	occ := t.BerthOccupancy(year, calls)

	var serviceRate float64
	t.reg.Each(KindCrane, func(e *Element) {
		if e.OnlineIn(year) {
			serviceRate += e.EffectiveCapacity * occ.CraneOnline
		}
	})

	t.revenues[idx] = finite(math.Min(volume*fee*safetyFactor,
		serviceRate*t.Params.OperationalHours*fee*safetyFactor))
}

// CashFlowYear is one row of the terminal-wide cash-flow ledger.
type CashFlowYear struct {
	Year        int     `json:"year"`
	Capex       float64 `json:"capex"`
	Maintenance float64 `json:"maintenance"`
	Insurance   float64 `json:"insurance"`
	Energy      float64 `json:"energy"`
	Labour      float64 `json:"labour"`
	Fuel        float64 `json:"fuel"`
	Demurrage   float64 `json:"demurrage"`
	Revenue     float64 `json:"revenue"`
}

// Opex is the row's total operating cost, demurrage included.
func (c CashFlowYear) Opex() float64 {
	return c.Maintenance + c.Insurance + c.Energy + c.Labour + c.Fuel + c.Demurrage
}

// Ledger is the per-year cash flow for the whole terminal.
type Ledger []CashFlowYear

// Ledger sums every element's series plus the terminal-level demurrage and
// revenue rows into one table.
func (t *Terminal) Ledger() Ledger {
	rows := make(Ledger, t.Params.Lifecycle)
	for i := range rows {
		rows[i].Year = t.Params.StartYear + i
		if t.demurrage != nil {
			rows[i].Demurrage = t.demurrage[i]
		}
		if t.revenues != nil {
			rows[i].Revenue = t.revenues[i]
		}
	}

	t.reg.EachElement(func(e *Element) {
		if e.Series.Capex == nil {
			return
		}
		for i := range rows {
			rows[i].Capex += e.Series.Capex[i]
			rows[i].Maintenance += e.Series.Maintenance[i]
			rows[i].Insurance += e.Series.Insurance[i]
			rows[i].Labour += e.Series.Labour[i]
			rows[i].Energy += e.Series.Energy[i]
			rows[i].Fuel += e.Series.Fuel[i]
		}
	})
	return rows
}
