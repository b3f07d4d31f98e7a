package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/chain"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
)

// Client implements chain.Reader over an Ethereum JSON-RPC node
type Client struct {
	chainID domain.Chain
	client  adapter.EthClient
}

var _ chain.Reader = (*Client)(nil)

// NewClient wraps an already dialed JSON-RPC client
func NewClient(chainID domain.Chain, client adapter.EthClient) *Client {
	return &Client{chainID: chainID, client: client}
}

// Dial connects to rpcURL and checks the node serves the expected network
func Dial(ctx context.Context, dialer adapter.EthClientDialer, chainID domain.Chain, rpcURL string) (*Client, error) {
	client, err := dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if id.Int64() != chainID.ID() {
		client.Close()
		return nil, fmt.Errorf("rpc serves chain id %s, expected %s", id.String(), chainID)
	}

	return NewClient(chainID, client), nil
}

// FetchTransaction returns the transaction with the given hash
func (c *Client) FetchTransaction(ctx context.Context, txHash string) (*chain.Transaction, error) {
	tx, isPending, err := c.client.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	result := &chain.Transaction{
		Hash:     strings.ToLower(tx.Hash().Hex()),
		From:     c.sender(ctx, tx),
		ValueWei: new(big.Int).Set(tx.Value()),
		Pending:  isPending,
	}
	if to := tx.To(); to != nil {
		result.To = strings.ToLower(to.Hex())
	}

	return result, nil
}

// FetchReceipt returns the receipt of the transaction with the given hash
func (c *Client) FetchReceipt(ctx context.Context, txHash string) (*chain.Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		// The node answers NotFound until the transaction is mined
		if errors.Is(err, ethereum.NotFound) {
			return nil, domain.ErrReceiptPending
		}
		return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
	}

	status := domain.ReceiptStatusFailure
	if receipt.Status == types.ReceiptStatusSuccessful {
		status = domain.ReceiptStatusSuccess
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &chain.Receipt{
		Status:      status,
		BlockNumber: blockNumber,
	}, nil
}

// LatestBlock returns the latest block number
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	number, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return number, nil
}

// Close closes the connection
func (c *Client) Close() {
	c.client.Close()
}

// sender recovers the signer, an empty string means it could not be recovered
func (c *Client) sender(ctx context.Context, tx *types.Transaction) string {
	chainID := tx.ChainId()
	if chainID == nil || chainID.Sign() == 0 {
		chainID = big.NewInt(c.chainID.ID())
	}

	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to recover transaction sender",
			zap.String("tx_hash", tx.Hash().Hex()),
			zap.Error(err))
		return ""
	}
	return strings.ToLower(from.Hex())
}
