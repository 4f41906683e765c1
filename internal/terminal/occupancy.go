package terminal

import "math"

// Occupancy holds the berth and crane utilization for one year, for all
// planned elements and for the subset online that year. Values above 1, or
// the unbounded sentinel, signal inadequate capacity.
type Occupancy struct {
	BerthPlanned float64
	BerthOnline  float64
	CranePlanned float64
	CraneOnline  float64
}

// BerthOccupancy sums crane service rates and derives berth and crane
// occupancy from per-class time at berth. Zero cranes yield the unbounded
// sentinel on every field: investment is mandatory, not an error.
func (t *Terminal) BerthOccupancy(year int, calls []ClassCalls) Occupancy {
	var ratePlanned, rateOnline float64
	cranes := 0
	t.reg.Each(KindCrane, func(e *Element) {
		cranes++
		ratePlanned += e.EffectiveCapacity
		if e.OnlineIn(year) {
			rateOnline += e.EffectiveCapacity
		}
	})
	if cranes == 0 {
		u := Unbounded()
		return Occupancy{BerthPlanned: u, BerthOnline: u, CranePlanned: u, CraneOnline: u}
	}

	berths := t.reg.Planned(KindBerth)
	if berths == 0 {
		u := Unbounded()
		return Occupancy{BerthPlanned: u, BerthOnline: u, CranePlanned: u, CraneOnline: u}
	}

	occ := Occupancy{}
	occ.BerthPlanned, occ.CranePlanned = t.timeAtBerth(calls, ratePlanned, berths)

	if rateOnline == 0 {
		occ.BerthOnline = Unbounded()
		occ.CraneOnline = Unbounded()
		return occ
	}
	berthOnline, craneOnline := t.timeAtBerth(calls, rateOnline, berths)
	occ.BerthOnline = math.Min(berthOnline, 1)
	occ.CraneOnline = math.Min(craneOnline, 1)
	return occ
}

// timeAtBerth returns berth and crane occupancy for a given aggregate
// service rate. Berth time adds the mooring share; crane time does not.
func (t *Terminal) timeAtBerth(calls []ClassCalls, serviceRate float64, berths int) (berthOcc, craneOcc float64) {
	var berthHours, craneHours float64
	for _, cc := range calls {
		n := float64(cc.Calls)
		berthHours += n * (cc.Class.CallSize/serviceRate + cc.Class.MooringTime/float64(berths))
		craneHours += n * (cc.Class.CallSize / serviceRate)
	}
	return berthHours / t.Params.OperationalHours, craneHours / t.Params.OperationalHours
}

// waitingFactors approximate E2/E/n queueing delay as 4th-degree
// polynomials in online berth occupancy, one row per berth count 1..7.
// Coefficients ordered x^4..x^0.
var waitingFactors = [7][5]float64{
	{79.726, -126.47, 70.660, -14.651, 0.9218},
	{29.825, -46.489, 25.656, -5.3517, 0.3376},
	{19.362, -30.388, 16.791, -3.5457, 0.2253},
	{17.334, -27.745, 15.432, -3.2725, 0.2080},
	{11.149, -17.339, 9.4010, -1.9687, 0.1247},
	{10.512, -16.390, 8.8292, -1.8368, 0.1158},
	{8.4371, -13.226, 7.1446, -1.4902, 0.0941},
}

// WaitingFactor returns the queueing-delay factor for the given berth count
// and online berth occupancy. Outside the tabulated 1..7 range the factor is
// the unbounded sentinel: the policy never expects 8+ berths, and reaching
// it forces investment regardless of occupancy.
func WaitingFactor(berths int, occupancy float64) float64 {
	if berths < 1 || berths > len(waitingFactors) {
		return Unbounded()
	}
	c := waitingFactors[berths-1]
	x := occupancy
	f := c[0]*math.Pow(x, 4) + c[1]*math.Pow(x, 3) + c[2]*x*x + c[3]*x + c[4]
	return math.Max(0, f)
}

// WaitingTime evaluates the waiting-time factor for the year and converts it
// into a waiting-time occupancy share of operational hours.
func (t *Terminal) WaitingTime(year int) (factor, waitingOccupancy float64) {
	calls, totalCalls, _ := t.VesselCalls(year)
	occ := t.BerthOccupancy(year, calls)

	berths := t.reg.Planned(KindBerth)
	factor = WaitingFactor(berths, occ.BerthOnline)

	if totalCalls == 0 {
		return factor, 0
	}
	waitingHours := factor * occ.CraneOnline * t.Params.OperationalHours / float64(totalCalls)
	waitingOccupancy = waitingHours * float64(totalCalls) / t.Params.OperationalHours
	return factor, waitingOccupancy
}

// StackDemand is the output of a stack capacity calculation.
type StackDemand struct {
	CapacityPlanned float64 // total declared capacity of all stacks
	CapacityOnline  float64 // capacity of stacks online this year
	Required        float64 // storage capacity demanded, TEU
	GroundSlots     float64
	Area            float64 // m2
	ReeferSlots     float64
}

// LadenReeferStackCapacity sizes the laden+reefer yard for the year:
// TEU demand scaled by peak factor and dwell time, divided by stack
// occupancy, stacking height and operational days, summed over both
// categories. Reefer slots carry a ground-slot premium.
func (t *Terminal) LadenReeferStackCapacity(year int) StackDemand {
	var d StackDemand
	d.CapacityPlanned, d.CapacityOnline = t.reg.SumCapacity(KindLadenStack, year)

	ladenTEU, reeferTEU, _, _ := t.ThroughputCharacteristics(year)
	laden, reefer := t.Defaults.Laden, t.Defaults.Reefer
	stack := t.ladenStack()
	opDays := math.Floor(t.Params.OperationalHours / 24)

	ladenSlots := ladenTEU * laden.PeakFactor * laden.DwellTime / laden.StackOccupancy / stack.Height / opDays
	reeferSlots := reeferTEU * reefer.PeakFactor * reefer.DwellTime / reefer.StackOccupancy / stack.Height / opDays * stack.ReeferFactor

	d.GroundSlots = ladenSlots + reeferSlots
	d.ReeferSlots = reeferSlots * stack.Height
	d.Required = d.GroundSlots * stack.Height
	d.Area = d.GroundSlots * stack.AreaFactor
	return d
}

// EmptyStackCapacity is the single-category analogue for empties.
func (t *Terminal) EmptyStackCapacity(year int) StackDemand {
	var d StackDemand
	d.CapacityPlanned, d.CapacityOnline = t.reg.SumCapacity(KindEmptyStack, year)

	_, _, emptyTEU, _ := t.ThroughputCharacteristics(year)
	empty := t.Defaults.Empty
	stack := t.Defaults.EmptyStack
	opDays := math.Floor(t.Params.OperationalHours / 24)

	d.GroundSlots = emptyTEU * empty.PeakFactor * empty.DwellTime / empty.StackOccupancy / stack.Height / opDays
	d.Required = d.GroundSlots * stack.Height
	d.Area = d.GroundSlots * stack.AreaFactor
	return d
}

// OOGStackCapacity sizes out-of-gauge spots (height 1, box-count based).
func (t *Terminal) OOGStackCapacity(year int) StackDemand {
	var d StackDemand
	d.CapacityPlanned, d.CapacityOnline = t.reg.SumCapacity(KindOOGStack, year)

	_, _, _, oogTEU := t.ThroughputCharacteristics(year)
	oog := t.Defaults.OOG
	stack := t.Defaults.OOGStack
	opDays := math.Floor(t.Params.OperationalHours / 24)

	d.Required = oogTEU * oog.PeakFactor * oog.DwellTime / oog.StackOccupancy / stack.Height / opDays / oog.TEUFactor
	return d
}

// GateDemand is the output of the gate adequacy calculation.
type GateDemand struct {
	CapacityPlanned   float64
	CapacityOnline    float64
	ServiceRate       float64 // design minutes over planned capacity; >1 triggers
	DesignGateMinutes float64
}

// GateMinutes translates import/export box moves into design gate minutes
// per week and compares them against installed lane capacity. Zero gates
// yield the unbounded sentinel.
func (t *Terminal) GateMinutes(year int) GateDemand {
	var d GateDemand
	d.CapacityPlanned, d.CapacityOnline = t.reg.SumCapacity(KindGate, year)
	if d.CapacityPlanned == 0 {
		d.ServiceRate = Unbounded()
		return d
	}

	_, _, _, _, throughputBox := t.ThroughputBox(year)

	// Import and export are assumed an even split of non-transhipment moves.
	importMoves := throughputBox * (1 - t.Params.TranshipmentRatio) * 0.5
	exportMoves := throughputBox * (1 - t.Params.TranshipmentRatio) * 0.5
	const weeksPerYear = 52

	gate := t.Defaults.Gate
	peak := gate.PeakFactor * gate.PeakDay * gate.PeakHour * gate.DesignCapacity

	exitMinutes := importMoves * gate.TruckMoves / weeksPerYear * peak * gate.ExitInspectionTime
	entryMinutes := exportMoves * gate.TruckMoves / weeksPerYear * peak * gate.EntryInspectionTime

	d.DesignGateMinutes = exitMinutes + entryMinutes
	d.ServiceRate = d.DesignGateMinutes / d.CapacityPlanned
	return d
}

// Throughput returns realized throughput (TEU) for the year: demand capped
// by quay crane capacity, online and planned. Planned capacity is derated
// to the allowable occupancy with a 0.7 design margin.
func (t *Terminal) Throughput(year int) (online, planned float64) {
	laden, reefer, empty, oog := t.ThroughputCharacteristics(year)
	demand := laden + reefer + empty + oog

	var capPlanned, capOnline float64
	t.reg.Each(KindCrane, func(e *Element) {
		capPlanned += e.EffectiveCapacity * t.Params.OperationalHours * t.Params.AllowableBerthOccupancy * 0.7
		if e.OnlineIn(year) {
			capOnline += e.EffectiveCapacity * t.Params.OperationalHours
		}
	})

	return math.Min(capOnline, demand), math.Min(capPlanned, demand)
}

// CraneSlotAvailable reports whether installed berths offer a free crane
// slot: total berth slots exceed the number of cranes ever added.
func (t *Terminal) CraneSlotAvailable() bool {
	slots := 0
	t.reg.Each(KindBerth, func(e *Element) {
		slots += e.MaxCranes
	})
	return slots > t.reg.Planned(KindCrane)
}
