package terminal

import (
	"fmt"
	"math"
)

// Unbounded is the sentinel for "capacity inadequate": occupancy and service
// ratios evaluate to it when the relevant denominator is zero (no cranes, no
// gates, too many berths for the waiting-time table). Trigger loops consume
// it as "must invest"; it is never written into the ledger.
func Unbounded() float64 {
	return math.Inf(1)
}

// IsUnbounded reports whether v is the inadequate-capacity sentinel.
func IsUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}

// finite returns v, or 0 when v is not a finite number. Every value headed
// for a cash-flow series passes through it.
func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// Scenario maps calendar year to forecast demand in TEU/year. A missing year
// contributes zero volume; it is not an error.
type Scenario map[int]float64

// Volume returns the forecast for year and whether the year is present.
func (s Scenario) Volume(year int) (float64, bool) {
	v, ok := s[year]
	return v, ok
}

// FinanceParams feed the WACC derivation.
type FinanceParams struct {
	GearingPerc  float64 // debt share of capital, 0..100
	ReturnEquity float64
	ReturnDebt   float64
	TaxRate      float64
	Inflation    float64
}

// Params are the scenario-independent simulation inputs.
type Params struct {
	StartYear        int
	Lifecycle        int // years
	OperationalHours float64

	AllowableBerthOccupancy float64

	// Container category shares of annual volume, must sum to 1.
	LadenPerc  float64
	ReeferPerc float64
	EmptyPerc  float64
	OOGPerc    float64

	TranshipmentRatio float64

	EnergyPrice float64 // USD/kWh
	FuelPrice   float64 // USD/litre
	LandPrice   float64 // USD/m2
	HandlingFee float64 // USD/TEU

	// Technology choices: rtg, rmg, sc or rs.
	StackEquipment string
	LadenStack     string

	Finance FinanceParams
}

// Terminal owns one simulation: parameters, defaults, the demand scenario
// and the asset registry the trigger engine grows.
type Terminal struct {
	Params   Params
	Defaults Defaults
	Scenario Scenario

	reg *Registry

	demurrage []float64 // per lifecycle year
	revenues  []float64

	// OnYear, when set, receives a report after each simulated year.
	OnYear func(YearReport)
}

// AddedElement records one investment decision for progress reporting.
type AddedElement struct {
	Kind       Kind    `json:"kind"`
	Name       string  `json:"name"`
	YearOnline int     `json:"year_online"`
	Capex      float64 `json:"capex"`
}

// YearReport summarizes one simulated year.
type YearReport struct {
	Year                   int            `json:"year"`
	Volume                 float64        `json:"volume"`
	TotalCalls             int            `json:"total_calls"`
	BerthOccupancyPlanned  float64        `json:"berth_occupancy_planned"`
	BerthOccupancyOnline   float64        `json:"berth_occupancy_online"`
	Added                  []AddedElement `json:"added"`
}

// New validates inputs and prepares a simulation. Precondition violations
// (bad percentages, non-positive capacities) fail here, not mid-simulation.
func New(p Params, d Defaults, s Scenario) (*Terminal, error) {
	if p.Lifecycle <= 0 {
		return nil, fmt.Errorf("terminal: lifecycle must be positive, got %d", p.Lifecycle)
	}
	if p.OperationalHours <= 0 {
		return nil, fmt.Errorf("terminal: operational hours must be positive, got %v", p.OperationalHours)
	}
	if p.AllowableBerthOccupancy <= 0 || p.AllowableBerthOccupancy > 1 {
		return nil, fmt.Errorf("terminal: allowable berth occupancy %v outside (0,1]", p.AllowableBerthOccupancy)
	}
	split := p.LadenPerc + p.ReeferPerc + p.EmptyPerc + p.OOGPerc
	if math.Abs(split-1) > 1e-9 {
		return nil, fmt.Errorf("terminal: container split sums to %v, want 1", split)
	}
	if p.TranshipmentRatio < 0 || p.TranshipmentRatio > 1 {
		return nil, fmt.Errorf("terminal: transhipment ratio %v outside [0,1]", p.TranshipmentRatio)
	}
	if _, ok := d.LadenStacks[p.LadenStack]; !ok {
		return nil, fmt.Errorf("terminal: unknown laden stack technology %q", p.LadenStack)
	}
	eq, ok := d.Equipment[p.StackEquipment]
	if !ok {
		return nil, fmt.Errorf("terminal: unknown stack equipment type %q", p.StackEquipment)
	}
	// The trigger loops divide fleet counts by these ratios; a zero value
	// would never converge.
	if eq.StacksPerUnit <= 0 && eq.Required <= 0 {
		return nil, fmt.Errorf("terminal: stack equipment %q needs a positive units-per-crane or stacks-per-unit ratio", p.StackEquipment)
	}
	if p.StackEquipment != "sc" && d.Transport.Required <= 0 {
		return nil, fmt.Errorf("terminal: horizontal transport units per crane must be positive")
	}
	if d.EmptyHandler.Required <= 0 {
		return nil, fmt.Errorf("terminal: empty handler units per crane must be positive")
	}
	if d.Crane.EffectiveCapacity() <= 0 {
		return nil, fmt.Errorf("terminal: crane effective capacity must be positive")
	}
	var share float64
	for _, v := range d.Vessels {
		if v.CallSize <= 0 {
			return nil, fmt.Errorf("terminal: vessel class %s call size must be positive", v.Type)
		}
		share += v.SharePerc
	}
	if math.Abs(share-100) > 1e-9 {
		return nil, fmt.Errorf("terminal: vessel class shares sum to %v, want 100", share)
	}
	for tech, st := range d.LadenStacks {
		if st.Height <= 0 || st.Capacity <= 0 {
			return nil, fmt.Errorf("terminal: stack %s needs positive height and capacity", tech)
		}
	}
	if d.EmptyStack.Height <= 0 || d.OOGStack.Height <= 0 {
		return nil, fmt.Errorf("terminal: empty and OOG stacks need positive height")
	}
	return &Terminal{
		Params:   p,
		Defaults: d,
		Scenario: s,
		reg:      NewRegistry(),
	}, nil
}

// Registry exposes the asset arena for inspection.
func (t *Terminal) Registry() *Registry {
	return t.reg
}

// endYear is exclusive.
func (t *Terminal) endYear() int {
	return t.Params.StartYear + t.Params.Lifecycle
}

func (t *Terminal) yearIndex(year int) (int, bool) {
	i := year - t.Params.StartYear
	if i < 0 || i >= t.Params.Lifecycle {
		return 0, false
	}
	return i, true
}

// ladenStack returns the configured laden stack technology record.
func (t *Terminal) ladenStack() StackConfig {
	return t.Defaults.LadenStacks[t.Params.LadenStack]
}

func (t *Terminal) stackEquipment() EquipmentConfig {
	return t.Defaults.Equipment[t.Params.StackEquipment]
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		StartYear:               2020,
		Lifecycle:               20,
		OperationalHours:        7_500,
		AllowableBerthOccupancy: 0.6,
		LadenPerc:               0.90,
		ReeferPerc:              0.05,
		EmptyPerc:               0.025,
		OOGPerc:                 0.025,
		TranshipmentRatio:       0.3,
		EnergyPrice:             0.15,
		FuelPrice:               1,
		LandPrice:               0,
		HandlingFee:             500,
		StackEquipment:          "rtg",
		LadenStack:              "rtg",
		Finance: FinanceParams{
			GearingPerc:  60,
			ReturnEquity: 0.10,
			ReturnDebt:   0.30,
			TaxRate:      0.28,
			Inflation:    0.02,
		},
	}
}
