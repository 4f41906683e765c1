package terminal

import (
	"math"
	"testing"
)

func TestVesselCallsCeilingDivision(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	calls, total, vol := term.VesselCalls(2020)
	if vol != 1_000_000 {
		t.Fatalf("total volume = %v, want 1000000", vol)
	}

	// The default fleet routes everything through the 3000 TEU class.
	want := int(math.Ceil(1_000_000.0 / 3_000))
	if total != want {
		t.Fatalf("total calls = %d, want %d", total, want)
	}
	for _, cc := range calls {
		if cc.Class.SharePerc == 0 && cc.Calls != 0 {
			t.Fatalf("class %s has %d calls with zero share", cc.Class.Type, cc.Calls)
		}
	}
}

func TestVesselCallsMissingYearIsZero(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	_, total, vol := term.VesselCalls(2035)
	if total != 0 || vol != 0 {
		t.Fatalf("missing year: calls=%d vol=%v, want zeros", total, vol)
	}
}

func TestThroughputCharacteristicsSplit(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})

	laden, reefer, empty, oog := term.ThroughputCharacteristics(2020)
	if laden != 900_000 || reefer != 50_000 || empty != 25_000 || oog != 25_000 {
		t.Fatalf("split = %v/%v/%v/%v, want 900000/50000/25000/25000", laden, reefer, empty, oog)
	}
	if sum := laden + reefer + empty + oog; sum != 1_000_000 {
		t.Fatalf("split sums to %v, want the full volume", sum)
	}
}

func TestThroughputCappedByCranes(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 10_000_000})

	term.Registry().Append(Element{
		Kind: KindCrane, YearOnline: 2020,
		EffectiveCapacity: term.Defaults.Crane.EffectiveCapacity(),
	})

	online, planned := term.Throughput(2020)
	maxOnline := term.Defaults.Crane.EffectiveCapacity() * term.Params.OperationalHours
	if online != maxOnline {
		t.Fatalf("online throughput = %v, want crane cap %v", online, maxOnline)
	}
	if planned >= online {
		t.Fatalf("planned throughput %v should be derated below online cap %v", planned, online)
	}
}

func TestBoxMovesPositive(t *testing.T) {
	term := newTestTerminal(t, 10, Scenario{2020: 1_000_000})
	term.Registry().Append(Element{
		Kind: KindCrane, YearOnline: 2020,
		EffectiveCapacity: term.Defaults.Crane.EffectiveCapacity(),
	})

	sts, stack, empty, tractor := term.BoxMoves(2020)
	if sts <= 0 || stack <= 0 || empty <= 0 || tractor <= 0 {
		t.Fatalf("box moves = %v/%v/%v/%v, want all positive", sts, stack, empty, tractor)
	}
	if tractor <= sts {
		t.Fatalf("tractor moves %v should exceed quay moves %v", tractor, sts)
	}
}
