package terminal

// Kind discriminates the infrastructure element variants. Registry queries
// filter on it instead of type-switching over a hierarchy.
type Kind string

const (
	KindBerth          Kind = "berth"
	KindQuay           Kind = "quay"
	KindCrane          Kind = "crane"
	KindTransport      Kind = "horizontal_transport"
	KindLadenStack     Kind = "laden_stack"
	KindEmptyStack     Kind = "empty_stack"
	KindOOGStack       Kind = "oog_stack"
	KindStackEquipment Kind = "stack_equipment"
	KindGate           Kind = "gate"
	KindEmptyHandler   Kind = "empty_handler"
	KindGeneral        Kind = "general_services"
)

// Kinds lists every variant in a stable order, for reporting.
var Kinds = []Kind{
	KindBerth, KindQuay, KindCrane, KindTransport,
	KindLadenStack, KindEmptyStack, KindOOGStack, KindStackEquipment,
	KindGate, KindEmptyHandler, KindGeneral,
}

// Element is one infrastructure asset. A single struct with a kind tag keeps
// the registry a flat arena; sizing fields not applicable to a kind stay zero.
type Element struct {
	Kind Kind
	Name string

	// Cost attribution, set once at investment time.
	Capex       float64
	Maintenance float64
	Insurance   float64
	Labour      float64

	DeliveryTime int
	YearOnline   int
	LandUse      float64 // m2

	// Capacity: storage slots (TEU) for stacks, gate-minutes for gates.
	Capacity float64
	// EffectiveCapacity is crane service rate in TEU/hour.
	EffectiveCapacity float64

	MaxCranes int // berth crane slots

	Length float64 // quay, m
	Depth  float64 // quay, m

	// Consumption drivers for the variable-cost pass.
	Consumption      float64 // crane kWh per box move
	PowerConsumption float64 // stack equipment kWh per box move
	FuelConsumption  float64 // litres per box move
	ReefersPresent   float64 // share of laden-stack slots wired for reefers

	// Series is the element's cash-flow contribution per lifecycle year,
	// attached once at investment time and never rewritten.
	Series Series
}

// OnlineIn reports whether the element contributes to online totals in year.
func (e *Element) OnlineIn(year int) bool {
	return year >= e.YearOnline
}

// Registry is the append-only arena of terminal assets. Elements are
// referenced by index; they are never removed or retyped.
type Registry struct {
	elements []Element
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Append stores the element and returns its index.
func (r *Registry) Append(e Element) int {
	r.elements = append(r.elements, e)
	return len(r.elements) - 1
}

// Len returns the total number of elements ever added.
func (r *Registry) Len() int {
	return len(r.elements)
}

// At returns a pointer into the arena. Valid until the next Append.
func (r *Registry) At(i int) *Element {
	return &r.elements[i]
}

// Each calls fn for every element of the given kind.
func (r *Registry) Each(kind Kind, fn func(*Element)) {
	for i := range r.elements {
		if r.elements[i].Kind == kind {
			fn(&r.elements[i])
		}
	}
}

// EachElement visits every element regardless of kind.
func (r *Registry) EachElement(fn func(*Element)) {
	for i := range r.elements {
		fn(&r.elements[i])
	}
}

// Count returns the number of elements of kind, planned and online in year.
func (r *Registry) Count(kind Kind, year int) (planned, online int) {
	r.Each(kind, func(e *Element) {
		planned++
		if e.OnlineIn(year) {
			online++
		}
	})
	return planned, online
}

// Planned returns the total number of elements of kind regardless of year.
func (r *Registry) Planned(kind Kind) int {
	n, _ := r.Count(kind, 0)
	return n
}

// SumCapacity sums declared capacity of kind, planned and online in year.
func (r *Registry) SumCapacity(kind Kind, year int) (planned, online float64) {
	r.Each(kind, func(e *Element) {
		planned += e.Capacity
		if e.OnlineIn(year) {
			online += e.Capacity
		}
	})
	return planned, online
}

// LandUse sums the land footprint of kind online in year.
func (r *Registry) LandUse(kind Kind, year int) float64 {
	var total float64
	r.Each(kind, func(e *Element) {
		if e.OnlineIn(year) {
			total += e.LandUse
		}
	})
	return total
}

// Snapshot copies the arena for inspection outside the simulation.
func (r *Registry) Snapshot() []Element {
	out := make([]Element, len(r.elements))
	copy(out, r.elements)
	return out
}
