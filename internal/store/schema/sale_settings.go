package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleSettingsID is the primary key of the only sale_settings row
const SaleSettingsID = 1

// SaleSettings represents the sale_settings table, which holds a single row
type SaleSettings struct {
	ID         int        `gorm:"column:id;primaryKey"`
	Finished   bool       `gorm:"column:finished;not null;default:false"`
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
	// ManualTotalRaisedUSD replaces the computed total when UseManualTotal is set
	ManualTotalRaisedUSD decimal.Decimal `gorm:"column:manual_total_raised_usd;not null;default:0;type:numeric"`
	UseManualTotal       bool            `gorm:"column:use_manual_total;not null;default:false"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

func (SaleSettings) TableName() string {
	return "sale_settings"
}
