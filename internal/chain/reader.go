package chain

import (
	"context"
	"math/big"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Transaction is the on-chain view of a value transfer
type Transaction struct {
	Hash        string
	From        string // lower-cased, empty when the backend cannot supply it
	To          string // lower-cased, empty for contract creation
	ValueWei    *big.Int
	BlockNumber uint64 // 0 while pending or when the backend does not report it
	Pending     bool
}

// Receipt is the execution result of a mined transaction
type Receipt struct {
	Status      domain.ReceiptStatus
	BlockNumber uint64
}

// Reader fetches ground truth about a payment from one network, either from a
// JSON-RPC node or a block explorer. Errors:
//   - FetchTransaction returns domain.ErrTransactionNotFound for an unknown hash
//   - FetchReceipt returns domain.ErrReceiptPending while the transaction is unmined
//
// Any other error is transient.
//
//go:generate mockgen -source=reader.go -destination=../mocks/chain_reader.go -package=mocks -mock_names=Reader=MockChainReader
type Reader interface {
	// FetchTransaction returns the transaction with the given hash
	FetchTransaction(ctx context.Context, txHash string) (*Transaction, error)

	// FetchReceipt returns the receipt of the transaction with the given hash
	FetchReceipt(ctx context.Context, txHash string) (*Receipt, error)

	// LatestBlock returns the latest block number
	LatestBlock(ctx context.Context) (uint64, error)
}
