package terminal

// Configuration records for each asset type. One record per type is injected
// into the simulation; the tables below carry the default values (unit rates
// and ratios from the Ijzermans 2019 design tables and PIANC WG135 where
// noted). Monetary values are USD, areas m2, capacities TEU unless stated.

// QuayConfig sizes and prices quay wall investments.
type QuayConfig struct {
	DeliveryTime     int
	Lifespan         int
	MobilisationMin  float64
	MobilisationPerc float64
	MaintenancePerc  float64
	InsurancePerc    float64
	Freeboard        float64 // m
	GijtConstant     float64
	GijtCoefficient  float64
	MaxSinkage       float64 // m
	WaveMotion       float64 // m
	SafetyMargin     float64 // m
	ApronWidth       float64 // m
	ApronPavement    float64 // USD/m2
}

// BerthConfig holds berth slot parameters. Berths carry no capex of their
// own; the quay wall does.
type BerthConfig struct {
	DeliveryTime int
	MaxCranes    int
}

// CraneConfig describes a quay crane type (STS, gantry, harbour or mobile).
type CraneConfig struct {
	CraneType        string
	DeliveryTime     int
	Lifespan         int
	UnitRate         float64
	MobilisationPerc float64
	MaintenancePerc  float64
	InsurancePerc    float64
	Consumption      float64 // kWh per box move
	Crew             float64 // per shift
	LiftingCapacity  float64 // TEU per lift
	HourlyCycles     float64
	EffFact          float64
}

// EffectiveCapacity is the crane service rate in TEU/hour.
func (c CraneConfig) EffectiveCapacity() float64 {
	return c.LiftingCapacity * c.HourlyCycles * c.EffFact
}

// TransportConfig describes tractor-trailer horizontal transport.
type TransportConfig struct {
	DeliveryTime      int
	Lifespan          int
	UnitRate          float64
	Mobilisation      float64
	MaintenancePerc   float64
	InsurancePerc     float64
	Crew              float64
	Utilisation       float64
	FuelConsumption   float64 // litres per box move
	NonEssentialMoves float64 // tractor moves per box over the quay
	Required          int     // units per crane in the trigger
}

// ContainerConfig holds the per-category container characteristics used by
// the stack sizing formulas.
type ContainerConfig struct {
	TEUFactor      float64 // TEU per box
	DwellTime      float64 // days
	PeakFactor     float64
	StackOccupancy float64
}

// StackConfig describes a storage stack block (laden/reefer, empty or OOG).
type StackConfig struct {
	DeliveryTime    int
	Lifespan        int
	Mobilisation    float64
	MaintenancePerc float64
	Width           float64 // TEU
	Height          float64 // tiers
	Length          float64 // TEU
	Capacity        float64 // TEU
	GrossTGS        float64 // m2 per ground slot
	AreaFactor      float64
	Pavement        float64 // USD/m2
	Drainage        float64 // USD/m2

	// Laden-stack extras.
	ReeferFactor   float64 // ground-slot premium for reefer slots
	ReeferRack     float64 // USD per reefer slot
	ReefersPresent float64 // share of slots wired for reefers
	Household      float64 // housekeeping moves per box
	DigoutMargin   float64

	// Empty-stack extras.
	Digout float64
}

// EquipmentConfig describes yard stack equipment (RTG, RMG, SC or RS).
type EquipmentConfig struct {
	Type             string
	DeliveryTime     int
	Lifespan         int
	UnitRate         float64
	Mobilisation     float64
	MaintenancePerc  float64
	InsurancePerc    float64
	Crew             float64
	Required         int     // units per crane (RTG/SC/RS trigger)
	StacksPerUnit    float64 // RMG trigger: invest while stacks > units × this
	FuelConsumption  float64 // litres per box move
	PowerConsumption float64 // kWh per box move
}

// GateConfig describes one gate lane.
type GateConfig struct {
	DeliveryTime        int
	Lifespan            int
	UnitRate            float64
	Mobilisation        float64
	MaintenancePerc     float64
	Crew                float64
	CanopyCosts         float64 // USD/m2
	Area                float64 // m2, PIANC WG135
	DesignCapacity      float64
	ExitInspectionTime  float64 // minutes per truck
	EntryInspectionTime float64 // minutes per truck
	PeakHour            float64
	PeakDay             float64
	PeakFactor          float64
	TruckMoves          float64 // truck moves per box move
	Capacity            float64 // gate minutes per lane
}

// EmptyHandlerConfig describes empty-container handlers.
type EmptyHandlerConfig struct {
	DeliveryTime    int
	Lifespan        int
	UnitRate        float64
	Mobilisation    float64
	MaintenancePerc float64
	Crew            float64
	Required        int // units per crane in the trigger
	FuelConsumption float64
}

// GeneralConfig sizes the one-off general services block (offices,
// workshops, inspection and repair facilities, site-wide utilities).
//
// The reference defaults tables omit this record; the field set is
// reconstructed from its usage sites and the values are engineering
// estimates in the same ranges as the published tables.
type GeneralConfig struct {
	DeliveryTime int
	Lifespan     int

	Office                 float64 // m2
	OfficeCost             float64 // USD/m2
	Workshop               float64
	WorkshopCost           float64
	ScanningInspectionArea float64
	ScanningInspectionCost float64
	RepairBuilding         float64
	RepairBuildingCost     float64

	LightingMastCost     float64 // USD per mast
	LightingMastRequired float64 // ha per mast
	FuelStationCost      float64
	FirefightCost        float64
	MaintenanceToolsCost float64
	OperatingSoftware    float64
	ElectricalStation    float64

	GeneralMaintenance  float64 // fraction of capex per year
	LightingConsumption float64 // kWh per m2 per year
	GeneralConsumption  float64 // kWh per operational hour

	// Staffing: one crew unit per CrewRequired TEU of throughput, each unit
	// carrying the FTE counts below.
	CrewRequired   float64
	CEO            float64
	Secretary      float64
	Administration float64
	HR             float64
	Commercial     float64
	Operations     float64
	Engineering    float64
	Security       float64
}

// VesselConfig is a vessel class calling at the terminal.
type VesselConfig struct {
	Type          string
	CallSize      float64 // TEU per call
	LOA           float64 // m
	Draft         float64 // m
	Beam          float64 // m
	MaxCranes     int
	AllTurnTime   float64 // allowed turnaround, hours
	MooringTime   float64 // hours
	DemurrageRate float64 // USD/hour
	SharePerc     float64 // share of annual volume, 0..100
}

// LabourConfig holds wage inputs.
type LabourConfig struct {
	InternationalSalary float64
	InternationalStaff  float64
	LocalSalary         float64
	LocalStaff          float64
	OperationalSalary   float64
	ShiftLength         float64
	AnnualShifts        float64
	DailyShifts         float64
	BlueCollarSalary    float64
	WhiteCollarSalary   float64
}

// Defaults bundles one record per asset type plus the vessel classes.
type Defaults struct {
	Quay           QuayConfig
	Berth          BerthConfig
	Crane          CraneConfig
	Transport      TransportConfig
	Laden          ContainerConfig
	Reefer         ContainerConfig
	Empty          ContainerConfig
	OOG            ContainerConfig
	LadenStacks    map[string]StackConfig // keyed by technology: rtg, rmg, sc, rs
	EmptyStack     StackConfig
	OOGStack       StackConfig
	Equipment      map[string]EquipmentConfig
	Gate           GateConfig
	EmptyHandler   EmptyHandlerConfig
	General        GeneralConfig
	Labour         LabourConfig
	Vessels        []VesselConfig
}

// DefaultSet returns the built-in parameter tables.
func DefaultSet() Defaults {
	return Defaults{
		Quay: QuayConfig{
			DeliveryTime:     2,
			Lifespan:         50,
			MobilisationMin:  2_500_000,
			MobilisationPerc: 0.02,
			MaintenancePerc:  0.01,
			InsurancePerc:    0.01,
			Freeboard:        4,
			GijtConstant:     757.20,
			GijtCoefficient:  1.2878,
			MaxSinkage:       0.5,
			WaveMotion:       0.5,
			SafetyMargin:     0.5,
			ApronWidth:       65.5,
			ApronPavement:    125,
		},
		Berth: BerthConfig{
			DeliveryTime: 1,
			MaxCranes:    4,
		},
		Crane: CraneConfig{
			CraneType:        "STS crane",
			DeliveryTime:     1,
			Lifespan:         40,
			UnitRate:         10_000_000,
			MobilisationPerc: 0.15,
			MaintenancePerc:  0.02,
			InsurancePerc:    0.01,
			Consumption:      8, // kWh per box move
			Crew:             5.5,
			LiftingCapacity:  2.25,
			HourlyCycles:     28,
			EffFact:          1,
		},
		Transport: TransportConfig{
			DeliveryTime:      0,
			Lifespan:          10,
			UnitRate:          85_000,
			Mobilisation:      1_000,
			MaintenancePerc:   0.10,
			InsurancePerc:     0.01,
			Crew:              1,
			Utilisation:       0.80,
			FuelConsumption:   2,
			NonEssentialMoves: 1.2,
			Required:          5,
		},
		Laden:  ContainerConfig{TEUFactor: 1.55, DwellTime: 4, PeakFactor: 1.2, StackOccupancy: 0.8},
		Reefer: ContainerConfig{TEUFactor: 1.75, DwellTime: 4, PeakFactor: 1.2, StackOccupancy: 0.8},
		Empty:  ContainerConfig{TEUFactor: 1.55, DwellTime: 10, PeakFactor: 1.2, StackOccupancy: 0.7},
		OOG:    ContainerConfig{TEUFactor: 1.55, DwellTime: 5, PeakFactor: 1.2, StackOccupancy: 0.9},
		LadenStacks: map[string]StackConfig{
			"rtg": {
				DeliveryTime: 1, Lifespan: 40, Mobilisation: 25_000, MaintenancePerc: 0.1,
				Width: 6, Height: 5, Length: 30, Capacity: 900, GrossTGS: 18, AreaFactor: 2.04,
				Pavement: 200, Drainage: 50,
				ReeferFactor: 2.33, ReeferRack: 3_500, ReefersPresent: 0.5,
				Household: 0.1, DigoutMargin: 1.2,
			},
			"rmg": {
				DeliveryTime: 1, Lifespan: 40, Mobilisation: 50_000, MaintenancePerc: 0.1,
				Width: 6, Height: 5, Length: 40, Capacity: 1200, GrossTGS: 18.67, AreaFactor: 2.79,
				Pavement: 200, Drainage: 50,
				ReeferFactor: 2.33, ReeferRack: 3_500, ReefersPresent: 0.5,
				Household: 0.1, DigoutMargin: 1.2,
			},
			"sc": {
				DeliveryTime: 1, Lifespan: 40, Mobilisation: 50_000, MaintenancePerc: 0.1,
				Width: 48, Height: 4, Length: 20, Capacity: 3840, GrossTGS: 26.46, AreaFactor: 1.45,
				Pavement: 200, Drainage: 50,
				ReeferFactor: 2.33, ReeferRack: 3_500, ReefersPresent: 0.5,
				Household: 0.1, DigoutMargin: 1.2,
			},
			"rs": {
				DeliveryTime: 1, Lifespan: 40, Mobilisation: 10_000, MaintenancePerc: 0.1,
				Width: 4, Height: 4, Length: 20, Capacity: 320, GrossTGS: 18, AreaFactor: 3.23,
				Pavement: 200, Drainage: 50,
				ReeferFactor: 2.33, ReeferRack: 3_500, ReefersPresent: 0.5,
				Household: 0.1, DigoutMargin: 1.2,
			},
		},
		EmptyStack: StackConfig{
			DeliveryTime: 1, Lifespan: 40, Mobilisation: 25_000, MaintenancePerc: 0.1,
			Width: 8, Height: 6, Length: 10, Capacity: 480, GrossTGS: 18, AreaFactor: 2.04,
			Pavement: 200, Drainage: 50,
			Household: 1.05, Digout: 1.2,
		},
		OOGStack: StackConfig{
			DeliveryTime: 1, Lifespan: 40, Mobilisation: 25_000, MaintenancePerc: 0.1,
			Width: 10, Height: 1, Length: 10, Capacity: 100, GrossTGS: 64, AreaFactor: 1.05,
			Pavement: 200, Drainage: 50,
		},
		Equipment: map[string]EquipmentConfig{
			"rtg": {
				Type: "rtg", DeliveryTime: 0, Lifespan: 10, UnitRate: 1_400_000, Mobilisation: 5_000,
				MaintenancePerc: 0.1, InsurancePerc: 0, Crew: 1, Required: 3,
				FuelConsumption: 1, PowerConsumption: 0,
			},
			"rmg": {
				Type: "rmg", DeliveryTime: 0, Lifespan: 10, UnitRate: 2_500_000, Mobilisation: 5_000,
				MaintenancePerc: 0.1, InsurancePerc: 0, Crew: 0,
				StacksPerUnit: 0.5, FuelConsumption: 0, PowerConsumption: 15,
			},
			"sc": {
				Type: "sc", DeliveryTime: 0, Lifespan: 10, UnitRate: 2_000_000, Mobilisation: 5_000,
				MaintenancePerc: 0.1, InsurancePerc: 0, Crew: 0, Required: 5,
				FuelConsumption: 15, PowerConsumption: 0,
			},
			"rs": {
				Type: "rs", DeliveryTime: 0, Lifespan: 10, UnitRate: 500_000, Mobilisation: 5_000,
				MaintenancePerc: 0.1, InsurancePerc: 0, Crew: 2, Required: 4,
				FuelConsumption: 1, PowerConsumption: 0,
			},
		},
		Gate: GateConfig{
			DeliveryTime:        1,
			Lifespan:            15,
			UnitRate:            30_000,
			Mobilisation:        5_000,
			MaintenancePerc:     0.02,
			Crew:                2,
			CanopyCosts:         250,
			Area:                288.75,
			DesignCapacity:      0.98,
			ExitInspectionTime:  2,
			EntryInspectionTime: 2,
			PeakHour:            0.25,
			PeakDay:             0.1,
			PeakFactor:          1.2,
			TruckMoves:          0.75,
			Capacity:            60,
		},
		EmptyHandler: EmptyHandlerConfig{
			DeliveryTime:    0,
			Lifespan:        10,
			UnitRate:        500_000,
			Mobilisation:    5_000,
			MaintenancePerc: 0.1,
			Crew:            1,
			Required:        5,
			FuelConsumption: 1.5,
		},
		General: GeneralConfig{
			DeliveryTime:           1,
			Lifespan:               40,
			Office:                 2_400,
			OfficeCost:             1_500,
			Workshop:               2_700,
			WorkshopCost:           1_000,
			ScanningInspectionArea: 2_700,
			ScanningInspectionCost: 1_000,
			RepairBuilding:         310,
			RepairBuildingCost:     1_000,
			LightingMastCost:       30_000,
			LightingMastRequired:   1.2,
			FuelStationCost:        500_000,
			FirefightCost:          2_000_000,
			MaintenanceToolsCost:   10_000_000,
			OperatingSoftware:      10_000_000,
			ElectricalStation:      2_000_000,
			GeneralMaintenance:     0.015,
			LightingConsumption:    1,
			GeneralConsumption:     1_000,
			CrewRequired:           500_000,
			CEO:                    1,
			Secretary:              1,
			Administration:         2,
			HR:                     1,
			Commercial:             1,
			Operations:             4,
			Engineering:            2,
			Security:               2,
		},
		Labour: LabourConfig{
			InternationalSalary: 105_000,
			InternationalStaff:  4,
			LocalSalary:         18_850,
			LocalStaff:          10,
			OperationalSalary:   16_750,
			ShiftLength:         6.5,
			AnnualShifts:        200,
			DailyShifts:         5,
			BlueCollarSalary:    30_000,
			WhiteCollarSalary:   60_000,
		},
		Vessels: []VesselConfig{
			{
				Type: "Handysize", CallSize: 35_000, LOA: 130, Draft: 10, Beam: 24,
				MaxCranes: 2, AllTurnTime: 24, MooringTime: 3, DemurrageRate: 600, SharePerc: 0,
			},
			{
				Type: "Handymax", CallSize: 55_000, LOA: 180, Draft: 11.5, Beam: 28,
				MaxCranes: 2, AllTurnTime: 24, MooringTime: 3, DemurrageRate: 750, SharePerc: 0,
			},
			{
				Type: "Panamax", CallSize: 3_000, LOA: 290, Draft: 13, Beam: 32.2,
				MaxCranes: 4, AllTurnTime: 31, MooringTime: 6, DemurrageRate: 730, SharePerc: 100,
			},
		},
	}
}
