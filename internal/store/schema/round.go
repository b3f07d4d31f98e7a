package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Round represents the rounds table - a priced tranche of the sale
type Round struct {
	RoundNumber int             `gorm:"column:round_number;primaryKey"`
	PriceUSD    decimal.Decimal `gorm:"column:price_usd;not null;type:numeric"`
	TotalTokens decimal.Decimal `gorm:"column:total_tokens;not null;type:numeric"`
	// SoldTokens only grows, through an atomic increment per credited purchase
	SoldTokens decimal.Decimal    `gorm:"column:sold_tokens;not null;default:0;type:numeric"`
	Status     domain.RoundStatus `gorm:"column:status;not null;type:varchar(16)"`
	// Bonus is display data, e.g. "20%"
	Bonus     *string    `gorm:"column:bonus;type:text"`
	EndDate   *time.Time `gorm:"column:end_date;type:timestamptz"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Round model
func (Round) TableName() string {
	return "rounds"
}

// RemainingTokens returns the unsold supply, never negative
func (r *Round) RemainingTokens() decimal.Decimal {
	remaining := r.TotalTokens.Sub(r.SoldTokens)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
