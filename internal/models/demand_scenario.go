package models

import (
	"time"

	"gorm.io/datatypes"
)

// DemandScenario is a named cargo forecast: TEU volume per calendar year.
type DemandScenario struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`

	// Volumes maps calendar year to forecast TEU, e.g. {"2020": 1000000}.
	Volumes datatypes.JSON `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (DemandScenario) TableName() string {
	return "demand_scenarios"
}
