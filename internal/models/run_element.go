package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunElement is one infrastructure asset created during a simulation run.
type RunElement struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	RunID string `gorm:"type:varchar(36);not null;index"`

	Kind string `gorm:"type:varchar(30);not null;index"`
	Name string `gorm:"type:varchar(50);not null"`

	YearOnline   int `gorm:"not null;index"`
	DeliveryTime int `gorm:"default:0"`

	Capex       decimal.Decimal `gorm:"type:numeric(30,4);not null"`
	Maintenance decimal.Decimal `gorm:"type:numeric(30,4)"`
	Insurance   decimal.Decimal `gorm:"type:numeric(30,4)"`
	Labour      decimal.Decimal `gorm:"type:numeric(30,4)"`

	Capacity decimal.Decimal `gorm:"type:numeric(20,4)"`
	LandUse  decimal.Decimal `gorm:"type:numeric(20,4)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (RunElement) TableName() string {
	return "run_elements"
}
