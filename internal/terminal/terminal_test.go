package terminal

import "testing"

func TestNewRejectsZeroTransportRatio(t *testing.T) {
	d := DefaultSet()
	d.Transport.Required = 0
	if _, err := New(DefaultParams(), d, Scenario{}); err == nil {
		t.Fatal("expected error for zero transport units per crane")
	}
}

func TestNewAllowsZeroTransportRatioForStraddleCarriers(t *testing.T) {
	d := DefaultSet()
	d.Transport.Required = 0
	p := DefaultParams()
	p.StackEquipment = "sc"
	p.LadenStack = "sc"
	if _, err := New(p, d, Scenario{}); err != nil {
		t.Fatalf("straddle carriers run no tractor fleet, New: %v", err)
	}
}

func TestNewRejectsZeroEmptyHandlerRatio(t *testing.T) {
	d := DefaultSet()
	d.EmptyHandler.Required = 0
	if _, err := New(DefaultParams(), d, Scenario{}); err == nil {
		t.Fatal("expected error for zero empty handler units per crane")
	}
}

func TestNewRejectsEquipmentWithoutRatio(t *testing.T) {
	d := DefaultSet()
	rtg := d.Equipment["rtg"]
	rtg.Required = 0
	rtg.StacksPerUnit = 0
	d.Equipment["rtg"] = rtg
	if _, err := New(DefaultParams(), d, Scenario{}); err == nil {
		t.Fatal("expected error for stack equipment with no trigger ratio")
	}
}

func TestNewAcceptsStacksPerUnitInsteadOfRequired(t *testing.T) {
	d := DefaultSet()
	rmg := d.Equipment["rmg"]
	rmg.Required = 0
	d.Equipment["rmg"] = rmg
	p := DefaultParams()
	p.StackEquipment = "rmg"
	p.LadenStack = "rmg"
	if _, err := New(p, d, Scenario{}); err != nil {
		t.Fatalf("stacks-per-unit ratio should satisfy the precondition, New: %v", err)
	}
}
