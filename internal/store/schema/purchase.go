package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Purchase represents the purchases table - the append-only ledger of verified payments
type Purchase struct {
	// ID is generated when the purchase is persisted
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// BuyerAddress is the lowercased wallet address of the buyer
	BuyerAddress string `gorm:"column:buyer_address;not null;type:varchar(42);index:idx_purchases_buyer_created,priority:1"`
	// TxHash is the lowercased transaction hash, unique across the ledger
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:varchar(66)"`
	// Chain is the CAIP-2 network the payment was made on
	Chain domain.Chain `gorm:"column:chain;not null;type:varchar(32)"`
	// AmountSentEth is the value observed on-chain
	AmountSentEth decimal.Decimal `gorm:"column:amount_sent_eth;not null;type:numeric(78,18)"`
	// AmountClaimedUSD is the amount the purchase flow quoted to the buyer
	AmountClaimedUSD decimal.Decimal `gorm:"column:amount_claimed_usd;not null;type:numeric"`
	// AmountSentUSD is AmountSentEth valued at EthPriceUSD
	AmountSentUSD decimal.Decimal `gorm:"column:amount_sent_usd;not null;type:numeric"`
	// EthPriceUSD is the ETH/USD rate used for the tolerance check
	EthPriceUSD decimal.Decimal `gorm:"column:eth_price_usd;not null;type:numeric"`
	// PriceSource tells whether EthPriceUSD was locked, live or the fallback constant
	PriceSource domain.PriceSource `gorm:"column:price_source;not null;type:varchar(16)"`
	// PriceEstimated is set when EthPriceUSD is not a real market quote
	PriceEstimated bool `gorm:"column:price_estimated;not null;default:false"`
	// TokensPurchased is AmountClaimedUSD divided by the round price, unrounded
	TokensPurchased decimal.Decimal       `gorm:"column:tokens_purchased;not null;type:numeric"`
	RoundNumber     int                   `gorm:"column:round_number;not null"`
	Status          domain.PurchaseStatus `gorm:"column:status;not null;type:varchar(16)"`
	// Evidence holds the on-chain facts the verification relied on
	Evidence   datatypes.JSON `gorm:"column:evidence;type:jsonb"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_purchases_buyer_created,priority:2,sort:desc"`
	VerifiedAt *time.Time     `gorm:"column:verified_at;type:timestamptz"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseEvidence is the JSON document stored in Purchase.Evidence
type PurchaseEvidence struct {
	BlockNumber           uint64 `json:"block_number"`
	LatestBlock           uint64 `json:"latest_block"`
	Confirmations         uint64 `json:"confirmations"`
	RequiredConfirmations uint64 `json:"required_confirmations"`
	From                  string `json:"from,omitempty"`
	To                    string `json:"to"`
	ValueWei              string `json:"value_wei"`
	Tolerance             string `json:"tolerance"`
	MinAcceptedUSD        string `json:"min_accepted_usd"`
	MaxAcceptedUSD        string `json:"max_accepted_usd"`
	PriceProvider         string `json:"price_provider,omitempty"`
}
