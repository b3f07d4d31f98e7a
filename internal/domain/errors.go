package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyProcessed is returned when a purchase for the transaction hash already exists
	ErrAlreadyProcessed = errors.New("transaction already processed")

	// ErrTransactionNotFound is returned when the chain has no record of the transaction hash
	ErrTransactionNotFound = errors.New("transaction not found on chain")

	// ErrReceiptPending is returned when the transaction exists but has not been mined yet
	ErrReceiptPending = errors.New("transaction receipt pending")

	// ErrInsufficientConfirmations is returned when the receipt exists but is not deep enough yet
	ErrInsufficientConfirmations = errors.New("transaction needs more confirmations")

	// ErrTransactionFailed is returned when the transaction was mined with a failed receipt
	ErrTransactionFailed = errors.New("transaction failed on chain")

	// ErrWrongDestination is returned when the payment was sent to another address
	ErrWrongDestination = errors.New("payment sent to wrong address")

	// ErrSenderMismatch is returned when the on-chain sender is not the claimed buyer
	ErrSenderMismatch = errors.New("transaction sender does not match buyer")

	// ErrInsufficientPayment is returned when the realised USD value is below the tolerance band
	ErrInsufficientPayment = errors.New("insufficient payment amount")

	// ErrExcessivePayment is returned when the realised USD value is above the tolerance band
	ErrExcessivePayment = errors.New("payment amount too high")

	// ErrInvalidAmount is returned when the claimed USD amount is not a positive number
	ErrInvalidAmount = errors.New("invalid claimed amount")

	// ErrRoundNotFound is returned when the round catalog has no such round
	ErrRoundNotFound = errors.New("round not found")

	// ErrInvalidRoundTransition is returned when an admin action does not apply to the round's status
	ErrInvalidRoundTransition = errors.New("invalid round status transition")

	// ErrSaleFinished is returned when a purchase is submitted after the sale was closed
	ErrSaleFinished = errors.New("sale is finished")

	// ErrUnsupportedChain is returned when the network is not one of the payment networks
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrInvalidAddress is returned when a wallet address is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidTxHash is returned when a transaction hash is malformed
	ErrInvalidTxHash = errors.New("invalid transaction hash")

	// ErrPriceUnavailable is returned when no price source produced a usable quote
	ErrPriceUnavailable = errors.New("eth price unavailable")
)

// permanentErrors are verdicts that cannot change by retrying
var permanentErrors = []error{
	ErrAlreadyProcessed,
	ErrTransactionFailed,
	ErrWrongDestination,
	ErrSenderMismatch,
	ErrInsufficientPayment,
	ErrExcessivePayment,
	ErrInvalidAmount,
	ErrInvalidAddress,
	ErrInvalidTxHash,
	ErrUnsupportedChain,
	ErrRoundNotFound,
}

// VerificationError carries a verification verdict together with the evidence behind it
type VerificationError struct {
	Kind    error
	TxHash  string
	Details map[string]string
}

// NewVerificationError creates a verification error of the given kind
func NewVerificationError(kind error, txHash string, details map[string]string) *VerificationError {
	return &VerificationError{Kind: kind, TxHash: txHash, Details: details}
}

func (e *VerificationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.TxHash)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind.Error(), e.TxHash, e.Details)
}

func (e *VerificationError) Unwrap() error {
	return e.Kind
}

// IsPermanent reports whether err is a verdict that retrying cannot change
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	for _, perm := range permanentErrors {
		if errors.Is(err, perm) {
			return true
		}
	}
	return false
}

// IsRetryable reports whether a failed verification should be attempted again.
// Anything that is not a known permanent verdict (network, timeout, database) is retryable.
func IsRetryable(err error) bool {
	return err != nil && !IsPermanent(err)
}
