package db

import (
	"portplanner/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.DemandScenario{},
		&models.SimulationRun{},
		&models.RunElement{},
		&models.CashFlowRow{},
	)
}
