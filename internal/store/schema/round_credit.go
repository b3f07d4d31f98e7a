package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoundCredit represents the round_credits table.
// A row exists once a purchase's tokens have been added to its round's sold counter.
type RoundCredit struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	PurchaseID  uuid.UUID       `gorm:"column:purchase_id;not null;uniqueIndex;type:uuid"`
	RoundNumber int             `gorm:"column:round_number;not null"`
	Tokens      decimal.Decimal `gorm:"column:tokens;not null;type:numeric"`
	CreatedAt   time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

func (RoundCredit) TableName() string {
	return "round_credits"
}
