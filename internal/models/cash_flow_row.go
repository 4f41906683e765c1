package models

import "github.com/shopspring/decimal"

// CashFlowRow is one year of a run's cash-flow ledger. Each run stores two
// sets of rows: raw and discounted to the start year at the real WACC.
type CashFlowRow struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	RunID string `gorm:"type:varchar(36);not null;index:idx_cash_flow_run_year"`
	Year  int    `gorm:"not null;index:idx_cash_flow_run_year"`

	Discounted bool `gorm:"not null;default:false"`

	Capex       decimal.Decimal `gorm:"type:numeric(30,4)"`
	Maintenance decimal.Decimal `gorm:"type:numeric(30,4)"`
	Insurance   decimal.Decimal `gorm:"type:numeric(30,4)"`
	Energy      decimal.Decimal `gorm:"type:numeric(30,4)"`
	Labour      decimal.Decimal `gorm:"type:numeric(30,4)"`
	Fuel        decimal.Decimal `gorm:"type:numeric(30,4)"`
	Demurrage   decimal.Decimal `gorm:"type:numeric(30,4)"`
	Revenue     decimal.Decimal `gorm:"type:numeric(30,4)"`
}

func (CashFlowRow) TableName() string {
	return "cash_flow_rows"
}
