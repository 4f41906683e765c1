package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portplanner/internal/config"
	"portplanner/internal/logger"
	"portplanner/internal/models"
	"portplanner/internal/progress"
	"portplanner/internal/repository"
	"portplanner/internal/terminal"
)

// PlannerService executes lifecycle simulations for stored demand scenarios
// and persists their outcomes.
type PlannerService struct {
	repo   repository.Repository
	hub    *progress.Hub
	logger *zap.Logger
	cfg    config.SimulationConfig
}

func NewPlannerService(repo repository.Repository, hub *progress.Hub, logger *zap.Logger, cfg config.SimulationConfig) *PlannerService {
	return &PlannerService{repo: repo, hub: hub, logger: logger, cfg: cfg}
}

// ParamOverrides are the per-run knobs accepted by the API. Nil fields fall
// back to the deployment configuration.
type ParamOverrides struct {
	StartYear               *int     `json:"start_year,omitempty"`
	Lifecycle               *int     `json:"lifecycle,omitempty"`
	OperationalHours        *float64 `json:"operational_hours,omitempty"`
	AllowableBerthOccupancy *float64 `json:"allowable_berth_occupancy,omitempty"`
	TranshipmentRatio       *float64 `json:"transhipment_ratio,omitempty"`
	EnergyPrice             *float64 `json:"energy_price,omitempty"`
	FuelPrice               *float64 `json:"fuel_price,omitempty"`
	LandPrice               *float64 `json:"land_price,omitempty"`
	HandlingFee             *float64 `json:"handling_fee,omitempty"`
	StackEquipment          *string  `json:"stack_equipment,omitempty"`
	LadenStack              *string  `json:"laden_stack,omitempty"`
}

func (s *PlannerService) baseParams() terminal.Params {
	p := terminal.DefaultParams()
	c := s.cfg
	if c.StartYear != 0 {
		p.StartYear = c.StartYear
	}
	if c.Lifecycle != 0 {
		p.Lifecycle = c.Lifecycle
	}
	if c.OperationalHours != 0 {
		p.OperationalHours = c.OperationalHours
	}
	if c.AllowableBerthOccupancy != 0 {
		p.AllowableBerthOccupancy = c.AllowableBerthOccupancy
	}
	p.TranshipmentRatio = c.TranshipmentRatio
	if c.LadenPerc != 0 {
		p.LadenPerc = c.LadenPerc
		p.ReeferPerc = c.ReeferPerc
		p.EmptyPerc = c.EmptyPerc
		p.OOGPerc = c.OOGPerc
	}
	if c.EnergyPrice != 0 {
		p.EnergyPrice = c.EnergyPrice
	}
	if c.FuelPrice != 0 {
		p.FuelPrice = c.FuelPrice
	}
	p.LandPrice = c.LandPrice
	if c.HandlingFee != 0 {
		p.HandlingFee = c.HandlingFee
	}
	if c.StackEquipment != "" {
		p.StackEquipment = c.StackEquipment
	}
	if c.LadenStack != "" {
		p.LadenStack = c.LadenStack
	}
	if c.Finance.GearingPerc != 0 {
		p.Finance = terminal.FinanceParams{
			GearingPerc:  c.Finance.GearingPerc,
			ReturnEquity: c.Finance.ReturnEquity,
			ReturnDebt:   c.Finance.ReturnDebt,
			TaxRate:      c.Finance.TaxRate,
			Inflation:    c.Finance.Inflation,
		}
	}
	return p
}

func applyOverrides(p *terminal.Params, o *ParamOverrides) {
	if o == nil {
		return
	}
	if o.StartYear != nil {
		p.StartYear = *o.StartYear
	}
	if o.Lifecycle != nil {
		p.Lifecycle = *o.Lifecycle
	}
	if o.OperationalHours != nil {
		p.OperationalHours = *o.OperationalHours
	}
	if o.AllowableBerthOccupancy != nil {
		p.AllowableBerthOccupancy = *o.AllowableBerthOccupancy
	}
	if o.TranshipmentRatio != nil {
		p.TranshipmentRatio = *o.TranshipmentRatio
	}
	if o.EnergyPrice != nil {
		p.EnergyPrice = *o.EnergyPrice
	}
	if o.FuelPrice != nil {
		p.FuelPrice = *o.FuelPrice
	}
	if o.LandPrice != nil {
		p.LandPrice = *o.LandPrice
	}
	if o.HandlingFee != nil {
		p.HandlingFee = *o.HandlingFee
	}
	if o.StackEquipment != nil {
		p.StackEquipment = *o.StackEquipment
	}
	if o.LadenStack != nil {
		p.LadenStack = *o.LadenStack
	}
}

// parseVolumes turns the stored {"2020": 1000000} JSON into a demand scenario.
func parseVolumes(raw []byte) (terminal.Scenario, error) {
	var byYear map[string]float64
	if err := json.Unmarshal(raw, &byYear); err != nil {
		return nil, fmt.Errorf("planner: parse scenario volumes: %w", err)
	}
	out := make(terminal.Scenario, len(byYear))
	for k, v := range byYear {
		year, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("planner: scenario year %q is not a number", k)
		}
		out[year] = v
	}
	return out, nil
}

// RunScenario simulates the scenario's full lifecycle and persists the run,
// its elements and both ledgers. Progress is streamed through the hub.
func (s *PlannerService) RunScenario(ctx context.Context, scenarioID uint64, overrides *ParamOverrides) (*models.SimulationRun, error) {
	scenario, err := s.repo.GetScenarioByID(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, fmt.Errorf("planner: scenario %d not found", scenarioID)
	}

	volumes, err := parseVolumes(scenario.Volumes)
	if err != nil {
		return nil, err
	}

	params := s.baseParams()
	applyOverrides(&params, overrides)

	term, err := terminal.New(params, terminal.DefaultSet(), volumes)
	if err != nil {
		return nil, err
	}

	paramsJSON, _ := json.Marshal(params)
	now := time.Now().UTC()
	run := &models.SimulationRun{
		RunID:      uuid.NewString(),
		ScenarioID: scenarioID,
		Status:     models.RunStatusRunning,
		Params:     paramsJSON,
		StartedAt:  &now,
	}
	if err := s.repo.InsertRun(ctx, run); err != nil {
		return nil, err
	}
	defer s.hub.Close(run.RunID)

	log := logger.ForRun(s.logger, run.RunID)

	term.OnYear = func(r terminal.YearReport) {
		report := r
		s.hub.Publish(progress.Event{RunID: run.RunID, Phase: "year", Report: &report})
	}

	simCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		simCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	res, err := term.Simulate(simCtx)
	if err != nil {
		log.Warn("simulation failed",
			zap.Uint64("scenario_id", scenarioID),
			zap.Error(err))
		_ = s.repo.UpdateRunStatus(ctx, run.RunID, models.RunStatusFailed, err.Error())
		s.hub.Publish(progress.Event{RunID: run.RunID, Phase: "failed", Error: err.Error()})
		return nil, err
	}

	elements := runElements(run.RunID, res.Elements)

	rows := make([]models.CashFlowRow, 0, 2*len(res.Ledger))
	rows = append(rows, ledgerRows(run.RunID, res.Ledger, false)...)
	rows = append(rows, ledgerRows(run.RunID, res.Discounted, true)...)

	if err := s.repo.InTx(ctx, func(tx *gorm.DB) error {
		return s.repo.ReplaceRunArtifactsTx(ctx, tx, run.RunID, elements, rows)
	}); err != nil {
		_ = s.repo.UpdateRunStatus(ctx, run.RunID, models.RunStatusFailed, err.Error())
		return nil, err
	}

	npv := decimal.NewFromFloat(res.NPV)
	wacc := decimal.NewFromFloat(res.WACCReal)
	finished := time.Now().UTC()
	run.Status = models.RunStatusFinished
	run.NPV = &npv
	run.WACCReal = &wacc
	run.ElementCount = len(res.Elements)
	run.FinishedAt = &finished
	if err := s.repo.FinishRun(ctx, run); err != nil {
		return nil, err
	}

	s.hub.Publish(progress.Event{RunID: run.RunID, Phase: "finished", NPV: &res.NPV})
	log.Info("simulation finished",
		zap.Uint64("scenario_id", scenarioID),
		zap.Float64("npv", res.NPV),
		zap.Int("elements", len(res.Elements)))

	return run, nil
}

// runElements converts registry elements into persisted rows. Cranes declare
// their service rate through EffectiveCapacity rather than the storage
// Capacity field; the capacity column carries whichever the kind uses.
func runElements(runID string, src []terminal.Element) []models.RunElement {
	out := make([]models.RunElement, 0, len(src))
	for _, e := range src {
		capacity := e.Capacity
		if e.Kind == terminal.KindCrane {
			capacity = e.EffectiveCapacity
		}
		out = append(out, models.RunElement{
			RunID:        runID,
			Kind:         string(e.Kind),
			Name:         e.Name,
			YearOnline:   e.YearOnline,
			DeliveryTime: e.DeliveryTime,
			Capex:        decimal.NewFromFloat(e.Capex),
			Maintenance:  decimal.NewFromFloat(e.Maintenance),
			Insurance:    decimal.NewFromFloat(e.Insurance),
			Labour:       decimal.NewFromFloat(e.Labour),
			Capacity:     decimal.NewFromFloat(capacity),
			LandUse:      decimal.NewFromFloat(e.LandUse),
		})
	}
	return out
}

func ledgerRows(runID string, ledger terminal.Ledger, discounted bool) []models.CashFlowRow {
	rows := make([]models.CashFlowRow, 0, len(ledger))
	for _, r := range ledger {
		rows = append(rows, models.CashFlowRow{
			RunID:       runID,
			Year:        r.Year,
			Discounted:  discounted,
			Capex:       decimal.NewFromFloat(r.Capex),
			Maintenance: decimal.NewFromFloat(r.Maintenance),
			Insurance:   decimal.NewFromFloat(r.Insurance),
			Energy:      decimal.NewFromFloat(r.Energy),
			Labour:      decimal.NewFromFloat(r.Labour),
			Fuel:        decimal.NewFromFloat(r.Fuel),
			Demurrage:   decimal.NewFromFloat(r.Demurrage),
			Revenue:     decimal.NewFromFloat(r.Revenue),
		})
	}
	return rows
}

// RecomputeAll re-simulates every stored scenario with the current defaults.
// Called from cron so parameter or defaults changes propagate to stored runs.
func (s *PlannerService) RecomputeAll(ctx context.Context) {
	scenarios, err := s.repo.ListScenarios(ctx, repository.ListScenariosParams{Limit: 1000})
	if err != nil {
		s.logger.Warn("recompute: list scenarios", zap.Error(err))
		return
	}
	for _, sc := range scenarios {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.RunScenario(ctx, sc.ID, nil); err != nil {
			s.logger.Warn("recompute: scenario failed",
				zap.Uint64("scenario_id", sc.ID),
				zap.String("name", sc.Name),
				zap.Error(err))
		}
	}
}
