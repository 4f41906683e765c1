package repository

import (
	"context"

	"gorm.io/gorm"

	"portplanner/internal/models"
)

type ListScenariosParams struct {
	Name   *string
	Limit  int
	Offset int
}

type ListRunsParams struct {
	ScenarioID *uint64
	Status     *string
	Limit      int
	Offset     int
}

// Repository is the persistence surface for scenarios and simulation runs.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Demand scenarios.
	CreateScenario(ctx context.Context, item *models.DemandScenario) error
	UpdateScenario(ctx context.Context, item *models.DemandScenario) error
	DeleteScenario(ctx context.Context, id uint64) error
	GetScenarioByID(ctx context.Context, id uint64) (*models.DemandScenario, error)
	GetScenarioByName(ctx context.Context, name string) (*models.DemandScenario, error)
	ListScenarios(ctx context.Context, params ListScenariosParams) ([]models.DemandScenario, error)
	CountScenarios(ctx context.Context, params ListScenariosParams) (int64, error)

	// Simulation runs.
	InsertRun(ctx context.Context, item *models.SimulationRun) error
	UpdateRunStatus(ctx context.Context, runID string, status string, errMsg string) error
	FinishRun(ctx context.Context, item *models.SimulationRun) error
	GetRunByRunID(ctx context.Context, runID string) (*models.SimulationRun, error)
	ListRuns(ctx context.Context, params ListRunsParams) ([]models.SimulationRun, error)
	CountRuns(ctx context.Context, params ListRunsParams) (int64, error)
	LatestFinishedRun(ctx context.Context, scenarioID uint64) (*models.SimulationRun, error)

	// Run artifacts: elements and ledger rows, replaced atomically per run.
	ReplaceRunArtifactsTx(ctx context.Context, tx *gorm.DB, runID string,
		elements []models.RunElement, rows []models.CashFlowRow) error
	ListRunElements(ctx context.Context, runID string) ([]models.RunElement, error)
	ListCashFlowRows(ctx context.Context, runID string, discounted bool) ([]models.CashFlowRow, error)
}
