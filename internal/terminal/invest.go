package terminal

import (
	"context"
	"fmt"
	"math"
)

// maxTriggerIterations bounds every trigger loop. A loop that runs this long
// without converging means the configuration cannot satisfy its trigger
// (for example a zero-capacity stack record) and the run is aborted.
const maxTriggerIterations = 10_000

// Results is the outcome of one full lifecycle simulation.
type Results struct {
	NPV        float64      `json:"npv"`
	WACCReal   float64      `json:"wacc_real"`
	Ledger     Ledger       `json:"ledger"`
	Discounted Ledger       `json:"discounted"`
	Elements   []Element    `json:"elements"`
	Reports    []YearReport `json:"reports"`
}

// Simulate steps through every lifecycle year, runs the investment triggers
// in their fixed order, then compiles variable costs, the cash-flow ledger
// and the NPV. The registry and per-year series are left populated for
// inspection afterwards.
func (t *Terminal) Simulate(ctx context.Context) (*Results, error) {
	t.demurrage = make([]float64, t.Params.Lifecycle)
	t.revenues = make([]float64, t.Params.Lifecycle)

	var reports []YearReport
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		calls, totalCalls, volume := t.VesselCalls(year)
		before := t.reg.Len()

		if err := t.berthInvest(year, calls); err != nil {
			return nil, err
		}
		if err := t.horizontalTransportInvest(year); err != nil {
			return nil, err
		}
		if err := t.ladenStackInvest(year); err != nil {
			return nil, err
		}
		if err := t.emptyStackInvest(year); err != nil {
			return nil, err
		}
		if err := t.oogStackInvest(year); err != nil {
			return nil, err
		}
		if err := t.stackEquipmentInvest(year); err != nil {
			return nil, err
		}
		if err := t.gateInvest(year); err != nil {
			return nil, err
		}
		if err := t.emptyHandlerInvest(year); err != nil {
			return nil, err
		}
		t.generalServicesInvest(year)

		occ := t.BerthOccupancy(year, calls)
		report := YearReport{
			Year:                  year,
			Volume:                volume,
			TotalCalls:            totalCalls,
			BerthOccupancyPlanned: occ.BerthPlanned,
			BerthOccupancyOnline:  occ.BerthOnline,
		}
		for i := before; i < t.reg.Len(); i++ {
			e := t.reg.At(i)
			report.Added = append(report.Added, AddedElement{
				Kind:       e.Kind,
				Name:       e.Name,
				YearOnline: e.YearOnline,
				Capex:      e.Capex,
			})
		}
		reports = append(reports, report)
		if t.OnYear != nil {
			t.OnYear(report)
		}
	}

	// Variable costs need the final asset mix, so they run after the
	// investment loop, each as its own full-lifecycle pass.
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		t.energyCostPass(year)
	}
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		t.generalLabourPass(year)
	}
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		t.fuelCostPass(year)
	}
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		t.demurragePass(year)
	}
	for year := t.Params.StartYear; year < t.endYear(); year++ {
		t.revenuePass(year)
	}

	ledger := t.Ledger()
	discounted, npv := t.DiscountedLedger(ledger)

	return &Results{
		NPV:        npv,
		WACCReal:   WACCReal(t.Params.Finance),
		Ledger:     ledger,
		Discounted: discounted,
		Elements:   t.reg.Snapshot(),
		Reports:    reports,
	}, nil
}

func (t *Terminal) triggerError(name string, year int) error {
	return fmt.Errorf("terminal: %s trigger did not converge within %d iterations in year %d", name, maxTriggerIterations, year)
}

// addElement attaches the cash-flow series and appends to the registry.
func (t *Terminal) addElement(e Element) {
	t.attachSeries(&e)
	t.reg.Append(e)
}

func (t *Terminal) elementName(kind Kind) string {
	return fmt.Sprintf("%s_%02d", kind, t.reg.Planned(kind)+1)
}

// deferredYearOnline applies the commissioning rule for orders placed in the
// opening year: construction is still underway, so delivery slips one year.
// Berths, quays and cranes are exempt; they are the construction.
func (t *Terminal) deferredYearOnline(year, delivery int) int {
	if year == t.Params.StartYear {
		return year + delivery + 1
	}
	return year + delivery
}

// blueCollarLabour is the annual wage bill for a crew of the given size
// across the configured daily shifts.
func (t *Terminal) blueCollarLabour(crew float64) float64 {
	return crew * t.Defaults.Labour.DailyShifts * t.Defaults.Labour.BlueCollarSalary
}

// berthInvest drives the quayside trigger: while planned berth occupancy
// exceeds the allowable maximum, add a berth when no crane slot is free,
// a quay when berths outnumber quays, and a crane when a slot is free.
// Each addition raises service capacity until the trigger clears.
func (t *Terminal) berthInvest(year int, calls []ClassCalls) error {
	occ := t.BerthOccupancy(year, calls)
	for iter := 0; occ.BerthPlanned > t.Params.AllowableBerthOccupancy; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("berth", year)
		}

		if !t.CraneSlotAvailable() {
			cfg := t.Defaults.Berth
			t.addElement(Element{
				Kind:         KindBerth,
				Name:         t.elementName(KindBerth),
				DeliveryTime: cfg.DeliveryTime,
				YearOnline:   year + cfg.DeliveryTime,
				MaxCranes:    cfg.MaxCranes,
			})
		}

		if t.reg.Planned(KindBerth) > t.reg.Planned(KindQuay) {
			length, depth := t.nextQuayDimensions()
			t.quayInvest(year, length, depth)
		}

		if t.CraneSlotAvailable() {
			t.craneInvest(year)
		}

		occ = t.BerthOccupancy(year, calls)
	}
	return nil
}

// nextQuayDimensions sizes the next quay section per PIANC 2014: the first
// section fits the largest vessel plus twice the 15 m berthing gap; later
// sections extend the continuous quay to 1.1 berths spans.
func (t *Terminal) nextQuayDimensions() (length, depth float64) {
	var loa, draft float64
	for _, v := range t.Defaults.Vessels {
		loa = math.Max(loa, v.LOA)
		draft = math.Max(draft, v.Draft)
	}

	berths := float64(t.reg.Planned(KindBerth))
	switch t.reg.Planned(KindQuay) {
	case 0:
		length = loa + 2*15
	case 1:
		length = 1.1*berths*(loa+15) - (loa + 2*15)
	default:
		length = 1.1 * (loa + 15)
	}

	q := t.Defaults.Quay
	depth = draft + q.MaxSinkage + q.WaveMotion + q.SafetyMargin
	return length, depth
}

// quayInvest prices and registers one quay wall section. The unit rate
// follows the Gijt regression on retaining height.
func (t *Terminal) quayInvest(year int, length, depth float64) {
	cfg := t.Defaults.Quay

	unitRate := math.Trunc(cfg.GijtConstant * math.Pow(depth*2+cfg.Freeboard, cfg.GijtCoefficient))
	mobilisation := math.Trunc(math.Max(length*unitRate*cfg.MobilisationPerc, cfg.MobilisationMin))
	apronPavement := length * cfg.ApronWidth * cfg.ApronPavement
	costOfLand := length * cfg.ApronWidth * t.Params.LandPrice

	e := Element{
		Kind:         KindQuay,
		Name:         t.elementName(KindQuay),
		DeliveryTime: cfg.DeliveryTime,
		YearOnline:   year + cfg.DeliveryTime,
		Length:       length,
		Depth:        depth,
		LandUse:      length * cfg.ApronWidth,
	}
	e.Capex = math.Trunc(length*unitRate + mobilisation + apronPavement + costOfLand)
	e.Insurance = unitRate * length * cfg.InsurancePerc
	e.Maintenance = unitRate * length * cfg.MaintenancePerc

	t.addElement(e)
}

// craneInvest registers one quay crane. The crane comes online no earlier
// than the newest quay section it stands on.
func (t *Terminal) craneInvest(year int) {
	cfg := t.Defaults.Crane

	e := Element{
		Kind:              KindCrane,
		Name:              t.elementName(KindCrane),
		DeliveryTime:      cfg.DeliveryTime,
		EffectiveCapacity: cfg.EffectiveCapacity(),
		Consumption:       cfg.Consumption,
	}
	e.Capex = math.Trunc(cfg.UnitRate * (1 + cfg.MobilisationPerc))
	e.Insurance = cfg.UnitRate * cfg.InsurancePerc
	e.Maintenance = cfg.UnitRate * cfg.MaintenancePerc
	e.Labour = t.blueCollarLabour(cfg.Crew)

	yearOnline := year + cfg.DeliveryTime
	t.reg.Each(KindQuay, func(q *Element) {
		if q.YearOnline > yearOnline {
			yearOnline = q.YearOnline
		}
	})
	e.YearOnline = yearOnline

	t.addElement(e)
}

// horizontalTransportInvest keeps the tractor fleet in step with the online
// crane count. Straddle carriers do their own horizontal transport, so the
// sc configuration skips the fleet entirely.
func (t *Terminal) horizontalTransportInvest(year int) error {
	if t.Params.StackEquipment == "sc" {
		return nil
	}
	cfg := t.Defaults.Transport

	_, cranesOnline := t.reg.Count(KindCrane, year)
	_, tractors := t.reg.Count(KindTransport, year)

	for iter := 0; cranesOnline > tractors/cfg.Required; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("horizontal transport", year)
		}

		e := Element{
			Kind:            KindTransport,
			Name:            t.elementName(KindTransport),
			DeliveryTime:    cfg.DeliveryTime,
			YearOnline:      t.deferredYearOnline(year, cfg.DeliveryTime),
			FuelConsumption: cfg.FuelConsumption,
		}
		e.Capex = math.Trunc(cfg.UnitRate + cfg.Mobilisation)
		e.Maintenance = cfg.UnitRate * cfg.MaintenancePerc
		e.Labour = t.blueCollarLabour(cfg.Crew)
		t.addElement(e)

		tractors = t.reg.Planned(KindTransport)
	}
	return nil
}

// emptyHandlerInvest keeps empty-container handlers in step with cranes.
func (t *Terminal) emptyHandlerInvest(year int) error {
	cfg := t.Defaults.EmptyHandler

	cranes := t.reg.Planned(KindCrane)
	handlers := t.reg.Planned(KindEmptyHandler)

	for iter := 0; cranes > handlers/cfg.Required; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("empty handler", year)
		}

		e := Element{
			Kind:            KindEmptyHandler,
			Name:            t.elementName(KindEmptyHandler),
			DeliveryTime:    cfg.DeliveryTime,
			YearOnline:      t.deferredYearOnline(year, cfg.DeliveryTime),
			FuelConsumption: cfg.FuelConsumption,
		}
		e.Capex = math.Trunc(cfg.UnitRate + cfg.Mobilisation)
		e.Maintenance = cfg.UnitRate * cfg.MaintenancePerc
		e.Labour = t.blueCollarLabour(cfg.Crew)
		t.addElement(e)

		handlers = t.reg.Planned(KindEmptyHandler)
	}
	return nil
}

// ladenStackInvest adds laden+reefer stacks until planned plus online
// capacity covers the required storage capacity.
func (t *Terminal) ladenStackInvest(year int) error {
	demand := t.LadenReeferStackCapacity(year)

	for iter := 0; demand.Required > demand.CapacityPlanned+demand.CapacityOnline; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("laden stack", year)
		}

		stack := t.ladenStack()
		groundSlots := stack.Capacity / stack.Height
		area := stack.Length * stack.Width

		e := Element{
			Kind:           KindLadenStack,
			Name:           t.elementName(KindLadenStack),
			DeliveryTime:   stack.DeliveryTime,
			YearOnline:     t.deferredYearOnline(year, stack.DeliveryTime),
			Capacity:       stack.Capacity,
			LandUse:        groundSlots * stack.GrossTGS * stack.AreaFactor,
			ReefersPresent: stack.ReefersPresent,
		}
		base := stack.GrossTGS * area * stack.AreaFactor
		e.Capex = math.Trunc((stack.Pavement+stack.Drainage+t.Params.LandPrice)*base +
			stack.Mobilisation + demand.ReeferSlots*stack.ReeferRack)
		e.Maintenance = math.Trunc((stack.Pavement + stack.Drainage) * base * stack.MaintenancePerc)
		t.addElement(e)

		demand = t.LadenReeferStackCapacity(year)
	}
	return nil
}

func (t *Terminal) emptyStackInvest(year int) error {
	demand := t.EmptyStackCapacity(year)

	for iter := 0; demand.Required > demand.CapacityPlanned+demand.CapacityOnline; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("empty stack", year)
		}

		stack := t.Defaults.EmptyStack
		groundSlots := stack.Capacity / stack.Height
		area := stack.Length * stack.Width

		e := Element{
			Kind:         KindEmptyStack,
			Name:         t.elementName(KindEmptyStack),
			DeliveryTime: stack.DeliveryTime,
			YearOnline:   t.deferredYearOnline(year, stack.DeliveryTime),
			Capacity:     stack.Capacity,
			LandUse:      groundSlots * stack.GrossTGS * stack.AreaFactor,
		}
		base := stack.GrossTGS * area * stack.AreaFactor
		e.Capex = math.Trunc((stack.Pavement+stack.Drainage+t.Params.LandPrice)*base + stack.Mobilisation)
		e.Maintenance = math.Trunc((stack.Pavement + stack.Drainage) * base * stack.MaintenancePerc)
		t.addElement(e)

		demand = t.EmptyStackCapacity(year)
	}
	return nil
}

func (t *Terminal) oogStackInvest(year int) error {
	demand := t.OOGStackCapacity(year)

	for iter := 0; demand.Required > demand.CapacityPlanned+demand.CapacityOnline; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("oog stack", year)
		}

		stack := t.Defaults.OOGStack
		groundSlots := stack.Capacity / stack.Height
		area := stack.Length * stack.Width

		e := Element{
			Kind:         KindOOGStack,
			Name:         t.elementName(KindOOGStack),
			DeliveryTime: stack.DeliveryTime,
			YearOnline:   t.deferredYearOnline(year, stack.DeliveryTime),
			Capacity:     stack.Capacity,
			// OOG spots are single-tier ground storage; no stacking margin.
			LandUse: groundSlots * stack.GrossTGS,
		}
		base := stack.GrossTGS * area * stack.AreaFactor
		e.Capex = math.Trunc((stack.Pavement+stack.Drainage+t.Params.LandPrice)*base + stack.Mobilisation)
		e.Maintenance = math.Trunc((stack.Pavement + stack.Drainage) * base * stack.MaintenancePerc)
		t.addElement(e)

		demand = t.OOGStackCapacity(year)
	}
	return nil
}

// stackEquipmentInvest keeps yard equipment in step with its driver. RMG
// units are dedicated to stack modules and trigger on the stack count; the
// other types shuttle between stacks and trigger on the online crane count.
func (t *Terminal) stackEquipmentInvest(year int) error {
	cfg := t.stackEquipment()

	_, cranesOnline := t.reg.Count(KindCrane, year)
	_, equipment := t.reg.Count(KindStackEquipment, year)
	_, stacksOnline := t.reg.Count(KindLadenStack, year)

	add := func() {
		e := Element{
			Kind:             KindStackEquipment,
			Name:             t.elementName(KindStackEquipment),
			DeliveryTime:     cfg.DeliveryTime,
			YearOnline:       t.deferredYearOnline(year, cfg.DeliveryTime),
			PowerConsumption: cfg.PowerConsumption,
			FuelConsumption:  cfg.FuelConsumption,
		}
		e.Capex = math.Trunc(cfg.UnitRate + cfg.Mobilisation)
		e.Insurance = cfg.UnitRate * cfg.InsurancePerc
		e.Maintenance = cfg.UnitRate * cfg.MaintenancePerc
		e.Labour = t.blueCollarLabour(cfg.Crew)
		t.addElement(e)

		equipment = t.reg.Planned(KindStackEquipment)
	}

	if cfg.StacksPerUnit > 0 {
		for iter := 0; float64(stacksOnline) > float64(equipment)*cfg.StacksPerUnit; iter++ {
			if iter >= maxTriggerIterations {
				return t.triggerError("stack equipment", year)
			}
			add()
		}
		return nil
	}

	for iter := 0; cranesOnline > equipment/cfg.Required; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("stack equipment", year)
		}
		add()
	}
	return nil
}

// gateInvest adds gate lanes while the planned service rate exceeds 1.
func (t *Terminal) gateInvest(year int) error {
	demand := t.GateMinutes(year)

	for iter := 0; demand.ServiceRate > 1; iter++ {
		if iter >= maxTriggerIterations {
			return t.triggerError("gate", year)
		}

		cfg := t.Defaults.Gate
		e := Element{
			Kind:         KindGate,
			Name:         t.elementName(KindGate),
			DeliveryTime: cfg.DeliveryTime,
			YearOnline:   t.deferredYearOnline(year, cfg.DeliveryTime),
			Capacity:     cfg.Capacity,
			LandUse:      cfg.Area,
		}
		e.Capex = math.Trunc(cfg.UnitRate + cfg.Mobilisation + cfg.CanopyCosts*cfg.Area + t.Params.LandPrice*cfg.Area)
		e.Maintenance = cfg.UnitRate * cfg.MaintenancePerc
		e.Labour = t.blueCollarLabour(cfg.Crew)
		t.addElement(e)

		demand = t.GateMinutes(year)
	}
	return nil
}

// generalServicesInvest places the one-off general services block in the
// second lifecycle year, once the first berth is committed. Lighting is
// sized on the land footprint in hectares.
func (t *Terminal) generalServicesInvest(year int) {
	if year != t.Params.StartYear+1 {
		return
	}
	cfg := t.Defaults.General

	buildings := cfg.Office + cfg.Workshop + cfg.ScanningInspectionArea + cfg.RepairBuilding
	landUseHa := (t.reg.LandUse(KindQuay, year) +
		t.reg.LandUse(KindLadenStack, year) +
		t.reg.LandUse(KindEmptyStack, year) +
		t.reg.LandUse(KindOOGStack, year) +
		t.reg.LandUse(KindGate, year) +
		buildings) * 0.0001

	office := cfg.Office * cfg.OfficeCost
	workshop := cfg.Workshop * cfg.WorkshopCost
	inspection := cfg.ScanningInspectionArea * cfg.ScanningInspectionCost
	repair := cfg.RepairBuilding * cfg.RepairBuildingCost
	light := cfg.LightingMastCost * (landUseHa / cfg.LightingMastRequired)
	basic := cfg.FuelStationCost + cfg.FirefightCost + cfg.MaintenanceToolsCost +
		cfg.OperatingSoftware + cfg.ElectricalStation

	e := Element{
		Kind:         KindGeneral,
		Name:         t.elementName(KindGeneral),
		DeliveryTime: cfg.DeliveryTime,
		YearOnline:   year + cfg.DeliveryTime,
		LandUse:      buildings,
	}
	e.Capex = office + workshop + inspection + light + repair + basic + buildings*t.Params.LandPrice
	e.Maintenance = e.Capex * cfg.GeneralMaintenance
	t.addElement(e)
}
