package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"portplanner/internal/models"
	"portplanner/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// --- Demand scenarios --------------------------------------------------------

func (s *Store) CreateScenario(ctx context.Context, item *models.DemandScenario) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateScenario(ctx context.Context, item *models.DemandScenario) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteScenario(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.DemandScenario{}, id).Error
}

func (s *Store) GetScenarioByID(ctx context.Context, id uint64) (*models.DemandScenario, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.DemandScenario
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetScenarioByName(ctx context.Context, name string) (*models.DemandScenario, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var item models.DemandScenario
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) scenarioQuery(ctx context.Context, params repository.ListScenariosParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.DemandScenario{})
	if params.Name != nil && strings.TrimSpace(*params.Name) != "" {
		query = query.Where("name ILIKE ?", "%"+strings.TrimSpace(*params.Name)+"%")
	}
	return query
}

func (s *Store) ListScenarios(ctx context.Context, params repository.ListScenariosParams) ([]models.DemandScenario, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.DemandScenario
	err := s.scenarioQuery(ctx, params).
		Order("name asc").
		Limit(normalizeLimit(params.Limit, 100)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountScenarios(ctx context.Context, params repository.ListScenariosParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var n int64
	if err := s.scenarioQuery(ctx, params).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// --- Simulation runs ---------------------------------------------------------

func (s *Store) InsertRun(ctx context.Context, item *models.SimulationRun) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateRunStatus(ctx context.Context, runID string, status string, errMsg string) error {
	if s == nil || s.db == nil {
		return nil
	}
	updates := map[string]any{"status": status}
	if errMsg != "" {
		updates["error"] = errMsg
	}
	return s.db.WithContext(ctx).
		Model(&models.SimulationRun{}).
		Where("run_id = ?", runID).
		Updates(updates).Error
}

func (s *Store) FinishRun(ctx context.Context, item *models.SimulationRun) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.SimulationRun{}).
		Where("run_id = ?", item.RunID).
		Updates(map[string]any{
			"status":        item.Status,
			"npv":           item.NPV,
			"wacc_real":     item.WACCReal,
			"element_count": item.ElementCount,
			"finished_at":   item.FinishedAt,
		}).Error
}

func (s *Store) GetRunByRunID(ctx context.Context, runID string) (*models.SimulationRun, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.SimulationRun
	err := s.db.WithContext(ctx).Where("run_id = ?", runID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) runQuery(ctx context.Context, params repository.ListRunsParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.SimulationRun{})
	if params.ScenarioID != nil {
		query = query.Where("scenario_id = ?", *params.ScenarioID)
	}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) ListRuns(ctx context.Context, params repository.ListRunsParams) ([]models.SimulationRun, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.SimulationRun
	err := s.runQuery(ctx, params).
		Order("created_at desc").
		Limit(normalizeLimit(params.Limit, 100)).
		Offset(normalizeOffset(params.Offset)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountRuns(ctx context.Context, params repository.ListRunsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var n int64
	if err := s.runQuery(ctx, params).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) LatestFinishedRun(ctx context.Context, scenarioID uint64) (*models.SimulationRun, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.SimulationRun
	err := s.db.WithContext(ctx).
		Where("scenario_id = ?", scenarioID).
		Where("status = ?", models.RunStatusFinished).
		Order("finished_at desc").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- Run artifacts -----------------------------------------------------------

func (s *Store) ReplaceRunArtifactsTx(ctx context.Context, tx *gorm.DB, runID string,
	elements []models.RunElement, rows []models.CashFlowRow) error {
	if tx == nil {
		return nil
	}
	if err := tx.WithContext(ctx).Where("run_id = ?", runID).Delete(&models.RunElement{}).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Where("run_id = ?", runID).Delete(&models.CashFlowRow{}).Error; err != nil {
		return err
	}
	if len(elements) > 0 {
		if err := tx.WithContext(ctx).CreateInBatches(elements, 200).Error; err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		if err := tx.WithContext(ctx).CreateInBatches(rows, 200).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListRunElements(ctx context.Context, runID string) ([]models.RunElement, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.RunElement
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("year_online asc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListCashFlowRows(ctx context.Context, runID string, discounted bool) ([]models.CashFlowRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CashFlowRow
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Where("discounted = ?", discounted).
		Order("year asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
