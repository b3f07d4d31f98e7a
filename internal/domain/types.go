package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is one of the supported payment networks
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet || chain == ChainEthereumSepolia
}

// ChainFromID converts an EVM chain ID into a supported chain
func ChainFromID(chainID int64) (Chain, error) {
	switch chainID {
	case CHAIN_ID_ETHEREUM_MAINNET:
		return ChainEthereumMainnet, nil
	case CHAIN_ID_ETHEREUM_SEPOLIA:
		return ChainEthereumSepolia, nil
	default:
		return "", fmt.Errorf("%w: chain id %d", ErrUnsupportedChain, chainID)
	}
}

// ID returns the numeric EVM chain ID
func (c Chain) ID() int64 {
	switch c {
	case ChainEthereumMainnet:
		return CHAIN_ID_ETHEREUM_MAINNET
	case ChainEthereumSepolia:
		return CHAIN_ID_ETHEREUM_SEPOLIA
	default:
		return 0
	}
}

// IsProduction reports whether the chain carries real value
func (c Chain) IsProduction() bool {
	return c == ChainEthereumMainnet
}

// PurchaseStatus represents the status of a purchase record
type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusVerified PurchaseStatus = "verified"
	PurchaseStatusFailed   PurchaseStatus = "failed"
)

// VerificationState is the scheduler-side state of a submitted transaction
type VerificationState string

const (
	VerificationStateSubmitted VerificationState = "submitted"
	VerificationStateVerified  VerificationState = "verified"
	VerificationStateFailed    VerificationState = "failed"
	VerificationStateExpired   VerificationState = "expired"
)

// IsTerminal reports whether no further verification attempt will be made
func (s VerificationState) IsTerminal() bool {
	return s == VerificationStateVerified ||
		s == VerificationStateFailed ||
		s == VerificationStateExpired
}

// RoundStatus represents the lifecycle state of a sale round
type RoundStatus string

const (
	RoundStatusUpcoming  RoundStatus = "upcoming"
	RoundStatusActive    RoundStatus = "active"
	RoundStatusCompleted RoundStatus = "completed"
)

// IsValidRoundStatus checks if a round status is valid
func IsValidRoundStatus(status RoundStatus) bool {
	return status == RoundStatusUpcoming ||
		status == RoundStatusActive ||
		status == RoundStatusCompleted
}

// PriceSource tells where the ETH/USD rate used for a verification came from
type PriceSource string

const (
	// PriceSourceLocked is a rate captured by the client when the transaction was submitted
	PriceSourceLocked PriceSource = "locked"
	// PriceSourceOracle is a live rate fetched from an upstream price API
	PriceSourceOracle PriceSource = "oracle"
	// PriceSourceFallback is the last-resort constant used when every upstream is unreachable
	PriceSourceFallback PriceSource = "fallback"
)

// ReceiptStatus is the execution result recorded in a transaction receipt
type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailure ReceiptStatus = "failure"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

// NormalizeAddress canonicalizes a wallet address to lowercase hex.
// Every ledger read, ledger write and destination comparison goes through it.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) || !strings.HasPrefix(strings.ToLower(address), "0x") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(address), nil
}

// NormalizeTxHash canonicalizes a transaction hash to lowercase hex
func NormalizeTxHash(txHash string) (string, error) {
	txHash = strings.ToLower(strings.TrimSpace(txHash))
	if !txHashPattern.MatchString(txHash) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTxHash, txHash)
	}
	return txHash, nil
}

// AddressEqual compares two addresses case-insensitively
func AddressEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// WeiToEth converts an integer wei amount into an exact decimal ETH amount
func WeiToEth(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -WEI_DECIMALS)
}
