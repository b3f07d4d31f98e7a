package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-token-sale/internal/api/shared/errors"
	"github.com/feral-file/ff-token-sale/internal/domain"
)

// SubmitPurchaseRequest represents the request body for submitting a sent payment for verification
type SubmitPurchaseRequest struct {
	TxHash       string          `json:"tx_hash"`
	BuyerAddress string          `json:"buyer_address"`
	AmountUSD    decimal.Decimal `json:"amount_usd"`
	Round        int             `json:"round"`
	// EthPriceUSD is the rate the buyer was quoted when sending the payment
	EthPriceUSD *decimal.Decimal `json:"eth_price_usd,omitempty"`
	// ChainID is the EVM chain ID, the configured payment network when omitted
	ChainID *int64 `json:"chain_id,omitempty"`
}

// Validate validates the request body
func (r *SubmitPurchaseRequest) Validate() error {
	if _, err := domain.NormalizeTxHash(r.TxHash); err != nil {
		return apierrors.NewValidationError("tx_hash must be a 0x-prefixed 32-byte hex string")
	}

	if _, err := domain.NormalizeAddress(r.BuyerAddress); err != nil {
		return apierrors.NewValidationError("buyer_address must be a valid Ethereum address")
	}

	if !r.AmountUSD.IsPositive() {
		return apierrors.NewValidationError("amount_usd must be greater than 0")
	}
	if r.AmountUSD.GreaterThan(decimal.NewFromInt(constants.MAX_CLAIMED_USD)) {
		return apierrors.NewValidationError(fmt.Sprintf("amount_usd must not exceed %d", constants.MAX_CLAIMED_USD))
	}

	if r.Round <= 0 {
		return apierrors.NewValidationError("round must be a positive round number")
	}

	if r.EthPriceUSD != nil {
		if !r.EthPriceUSD.IsPositive() || r.EthPriceUSD.GreaterThan(decimal.NewFromInt(constants.MAX_LOCKED_ETH_PRICE_USD)) {
			return apierrors.NewValidationError("eth_price_usd is out of range")
		}
	}

	if r.ChainID != nil {
		if _, err := domain.ChainFromID(*r.ChainID); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported chain_id: %d", *r.ChainID))
		}
	}

	return nil
}

// ConfirmRequest represents the body of an admin action without parameters
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// SetTotalRaisedRequest represents the request body for overriding the displayed total raised
type SetTotalRaisedRequest struct {
	AmountUSD decimal.Decimal `json:"amount_usd"`
	Confirm   bool            `json:"confirm"`
}

// Validate validates the request body
func (r *SetTotalRaisedRequest) Validate() error {
	if r.AmountUSD.IsNegative() {
		return apierrors.NewValidationError("amount_usd must not be negative")
	}
	return nil
}

// SetTotalRaisedModeRequest represents the request body for switching between the manual and computed total
type SetTotalRaisedModeRequest struct {
	UseManual *bool `json:"use_manual"`
	Confirm   bool  `json:"confirm"`
}

// Validate validates the request body
func (r *SetTotalRaisedModeRequest) Validate() error {
	if r.UseManual == nil {
		return apierrors.NewValidationError("use_manual is required")
	}
	return nil
}
