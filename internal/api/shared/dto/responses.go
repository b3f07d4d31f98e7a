package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// PurchaseSubmittedResponse represents the response for a submitted purchase
type PurchaseSubmittedResponse struct {
	TxHash string `json:"tx_hash"`
	Status string `json:"status"`
}

// PurchaseResponse represents a verified purchase from the ledger
type PurchaseResponse struct {
	ID               string                `json:"id"`
	TxHash           string                `json:"tx_hash"`
	Chain            domain.Chain          `json:"chain"`
	BuyerAddress     string                `json:"buyer_address"`
	RoundNumber      int                   `json:"round_number"`
	AmountSentEth    decimal.Decimal       `json:"amount_sent_eth"`
	AmountClaimedUSD decimal.Decimal       `json:"amount_claimed_usd"`
	AmountSentUSD    decimal.Decimal       `json:"amount_sent_usd"`
	EthPriceUSD      decimal.Decimal       `json:"eth_price_usd"`
	PriceSource      domain.PriceSource    `json:"price_source"`
	PriceEstimated   bool                  `json:"price_estimated"`
	TokensPurchased  decimal.Decimal       `json:"tokens_purchased"`
	Status           domain.PurchaseStatus `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	VerifiedAt       *time.Time            `json:"verified_at,omitempty"`
}

// PurchaseStatusResponse represents the verification status of a submitted transaction
type PurchaseStatusResponse struct {
	TxHash    string            `json:"tx_hash"`
	Status    string            `json:"status"`
	Reason    string            `json:"reason,omitempty"`
	LastError string            `json:"last_error,omitempty"`
	Attempts  int               `json:"attempts,omitempty"`
	Purchase  *PurchaseResponse `json:"purchase,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

// BuyerPurchasesResponse represents a buyer's purchase history
type BuyerPurchasesResponse struct {
	BuyerAddress string             `json:"buyer_address"`
	Purchases    []PurchaseResponse `json:"purchases"`
	// TotalTokens sums the tokens of verified purchases only
	TotalTokens decimal.Decimal `json:"total_tokens"`
}

// RoundResponse represents a sale round
type RoundResponse struct {
	RoundNumber     int                `json:"round_number"`
	PriceUSD        decimal.Decimal    `json:"price_usd"`
	TotalTokens     decimal.Decimal    `json:"total_tokens"`
	SoldTokens      decimal.Decimal    `json:"sold_tokens"`
	RemainingTokens decimal.Decimal    `json:"remaining_tokens"`
	Status          domain.RoundStatus `json:"status"`
	Bonus           *string            `json:"bonus,omitempty"`
	EndDate         *time.Time         `json:"end_date,omitempty"`
}

// RoundListResponse represents the list of sale rounds
type RoundListResponse struct {
	Rounds []RoundResponse `json:"rounds"`
}

// SaleResponse represents the sale summary
type SaleResponse struct {
	Finished               bool            `json:"finished"`
	FinishedAt             *time.Time      `json:"finished_at,omitempty"`
	TotalRaisedUSD         decimal.Decimal `json:"total_raised_usd"`
	ComputedTotalRaisedUSD decimal.Decimal `json:"computed_total_raised_usd"`
	ManualTotalRaisedUSD   decimal.Decimal `json:"manual_total_raised_usd"`
	UseManualTotal         bool            `json:"use_manual_total"`
	TotalTokensSold        decimal.Decimal `json:"total_tokens_sold"`
	VerifiedPurchases      int64           `json:"verified_purchases"`
	ActiveRounds           int64           `json:"active_rounds"`
}

// PriceResponse represents the current ETH/USD rate
type PriceResponse struct {
	EthUSD    decimal.Decimal    `json:"eth_usd"`
	Source    domain.PriceSource `json:"source"`
	Provider  string             `json:"provider,omitempty"`
	Estimated bool               `json:"estimated"`
	FetchedAt time.Time          `json:"fetched_at"`
}
