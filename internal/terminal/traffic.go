package terminal

import "math"

// ClassCalls is the call count for one vessel class in one year.
type ClassCalls struct {
	Class VesselConfig
	Calls int
}

// VesselCalls splits the year's forecast volume across vessel classes and
// converts each share into an integer call count by ceiling division.
func (t *Terminal) VesselCalls(year int) (calls []ClassCalls, totalCalls int, totalVol float64) {
	volume, ok := t.Scenario.Volume(year)
	if !ok {
		volume = 0
	}
	totalVol = volume

	calls = make([]ClassCalls, 0, len(t.Defaults.Vessels))
	for _, class := range t.Defaults.Vessels {
		classVol := volume * class.SharePerc / 100
		n := int(math.Ceil(classVol / class.CallSize))
		calls = append(calls, ClassCalls{Class: class, Calls: n})
		totalCalls += n
	}
	return calls, totalCalls, totalVol
}

// ThroughputCharacteristics translates the year's demand into TEU per
// container category using the fixed split percentages.
func (t *Terminal) ThroughputCharacteristics(year int) (laden, reefer, empty, oog float64) {
	volume, ok := t.Scenario.Volume(year)
	if !ok {
		volume = 0
	}
	return volume * t.Params.LadenPerc,
		volume * t.Params.ReeferPerc,
		volume * t.Params.EmptyPerc,
		volume * t.Params.OOGPerc
}

// ThroughputBox converts the realized (online) throughput into box counts
// per category using the per-category TEU factors.
func (t *Terminal) ThroughputBox(year int) (ladenBox, reeferBox, emptyBox, oogBox, total float64) {
	online, _ := t.Throughput(year)

	ladenBox = online * t.Params.LadenPerc / t.Defaults.Laden.TEUFactor
	reeferBox = online * t.Params.ReeferPerc / t.Defaults.Reefer.TEUFactor
	emptyBox = online * t.Params.EmptyPerc / t.Defaults.Empty.TEUFactor
	oogBox = online * t.Params.OOGPerc / t.Defaults.OOG.TEUFactor

	total = ladenBox + reeferBox + emptyBox + oogBox
	return ladenBox, reeferBox, emptyBox, oogBox, total
}

// BoxMoves decomposes the year's box throughput into the move counts that
// drive power and fuel consumption: crane moves over the quay, yard stack
// moves, empty-stack handler moves and tractor moves.
func (t *Terminal) BoxMoves(year int) (stsMoves, stackMoves, emptyMoves, tractorMoves float64) {
	ladenBox, reeferBox, emptyBox, _, throughputBox := t.ThroughputBox(year)

	// Cranes carry every box over the quay.
	stsMoves = throughputBox

	tractorMoves = throughputBox * t.Defaults.Transport.NonEssentialMoves

	emptyMoves = emptyBox * t.Defaults.EmptyStack.Household * t.Defaults.EmptyStack.Digout

	// Laden and reefer stack moves differ between import/export and
	// transhipment flows: i/e boxes pay the full digout, transhipment
	// boxes only the housekeeping share.
	stack := t.ladenStack()
	digoutMoves := (stack.Height - 1) / 2
	movesIE := ((2 + stack.Household + digoutMoves) + (2+stack.Household)*stack.DigoutMargin) / 2
	movesTS := 0.5 * ((2 + stack.Household) * stack.DigoutMargin)

	ladenReeferTS := (ladenBox + reeferBox) * t.Params.TranshipmentRatio
	ladenReeferIE := (ladenBox + reeferBox) - ladenReeferTS

	stackMoves = ladenReeferIE*movesIE + ladenReeferTS*movesTS

	return stsMoves, stackMoves, emptyMoves, tractorMoves
}
