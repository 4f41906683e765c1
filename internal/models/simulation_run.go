package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Run lifecycle states.
const (
	RunStatusPending  = "pending"
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
	RunStatusFailed   = "failed"
)

// SimulationRun is one executed (or executing) lifecycle simulation of a
// demand scenario, with its financial outcome.
type SimulationRun struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	RunID      string `gorm:"type:varchar(36);uniqueIndex;not null"`
	ScenarioID uint64 `gorm:"not null;index"`

	Status string `gorm:"type:varchar(20);not null;index"`
	Error  string `gorm:"type:text"`

	// Params is the effective parameter set the run used, overrides applied.
	Params datatypes.JSON `gorm:"type:jsonb"`

	// Use explicit column names because default GORM naming turns "NPV" into "n_pv".
	NPV      *decimal.Decimal `gorm:"column:npv;type:numeric(30,4)"`
	WACCReal *decimal.Decimal `gorm:"column:wacc_real;type:numeric(20,10)"`

	ElementCount int `gorm:"default:0"`

	StartedAt  *time.Time `gorm:"type:timestamptz"`
	FinishedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"type:timestamptz;autoUpdateTime"`
}

func (SimulationRun) TableName() string {
	return "simulation_runs"
}
