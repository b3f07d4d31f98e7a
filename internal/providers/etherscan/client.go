package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/chain"
	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Config holds the explorer API configuration for one network
type Config struct {
	BaseURL string
	APIKey  string
	// RequestsPerSecond caps calls to the explorer, its free tier rejects bursts above the quota
	RequestsPerSecond float64
}

// Client implements chain.Reader over the block explorer's JSON-RPC proxy module
type Client struct {
	chainID    domain.Chain
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	limiter    *rate.Limiter
}

var _ chain.Reader = (*Client)(nil)

// NewClient creates a new explorer client
func NewClient(chainID domain.Chain, config Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) *Client {
	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}

	return &Client{
		chainID:    chainID,
		config:     config,
		httpClient: httpClient,
		json:       jsonAdapter,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// proxyResponse covers both the JSON-RPC envelope of the proxy module and the
// explorer's own {"status":"0","message":"NOTOK","result":"..."} error envelope
type proxyResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcTransaction struct {
	Hash        string  `json:"hash"`
	From        string  `json:"from"`
	To          *string `json:"to"`
	Value       string  `json:"value"`
	BlockNumber *string `json:"blockNumber"`
}

type rpcReceipt struct {
	Status      string `json:"status"`
	BlockNumber string `json:"blockNumber"`
}

// FetchTransaction returns the transaction with the given hash
func (c *Client) FetchTransaction(ctx context.Context, txHash string) (*chain.Transaction, error) {
	result, err := c.call(ctx, "eth_getTransactionByHash", txHash)
	if err != nil {
		return nil, err
	}
	if isNull(result) {
		return nil, domain.ErrTransactionNotFound
	}

	var raw rpcTransaction
	if err := c.json.Unmarshal(result, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}

	value, err := hexutil.DecodeBig(raw.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction value %q: %w", raw.Value, err)
	}

	tx := &chain.Transaction{
		Hash:     strings.ToLower(raw.Hash),
		From:     strings.ToLower(raw.From),
		ValueWei: value,
		Pending:  true,
	}
	if raw.To != nil {
		tx.To = strings.ToLower(*raw.To)
	}
	if raw.BlockNumber != nil && *raw.BlockNumber != "" {
		number, err := hexutil.DecodeUint64(*raw.BlockNumber)
		if err != nil {
			return nil, fmt.Errorf("invalid block number %q: %w", *raw.BlockNumber, err)
		}
		tx.BlockNumber = number
		tx.Pending = false
	}

	return tx, nil
}

// FetchReceipt returns the receipt of the transaction with the given hash
func (c *Client) FetchReceipt(ctx context.Context, txHash string) (*chain.Receipt, error) {
	result, err := c.call(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return nil, err
	}
	if isNull(result) {
		return nil, domain.ErrReceiptPending
	}

	var raw rpcReceipt
	if err := c.json.Unmarshal(result, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}

	number, err := hexutil.DecodeUint64(raw.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid receipt block number %q: %w", raw.BlockNumber, err)
	}

	status := domain.ReceiptStatusFailure
	if raw.Status == "0x1" {
		status = domain.ReceiptStatusSuccess
	}

	return &chain.Receipt{
		Status:      status,
		BlockNumber: number,
	}, nil
}

// LatestBlock returns the latest block number
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	result, err := c.call(ctx, "eth_blockNumber", "")
	if err != nil {
		return 0, err
	}

	var hex string
	if err := c.json.Unmarshal(result, &hex); err != nil {
		return 0, fmt.Errorf("failed to decode block number: %w", err)
	}

	number, err := hexutil.DecodeUint64(hex)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q: %w", hex, err)
	}
	return number, nil
}

// call performs one proxy request and returns the raw JSON-RPC result
func (c *Client) call(ctx context.Context, action string, txHash string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("explorer rate limiter: %w", err)
	}

	var resp proxyResponse
	if err := c.httpClient.Get(ctx, c.buildURL(action, txHash), &resp); err != nil {
		return nil, fmt.Errorf("explorer %s request failed: %w", action, err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("explorer %s rpc error %d: %s", action, resp.Error.Code, resp.Error.Message)
	}

	// Rate limit and key errors come back with HTTP 200 and a string result
	if resp.Status == "0" {
		var detail string
		_ = c.json.Unmarshal(resp.Result, &detail)
		return nil, fmt.Errorf("explorer %s failed: %s: %s", action, resp.Message, detail)
	}

	return resp.Result, nil
}

func (c *Client) buildURL(action string, txHash string) string {
	params := url.Values{}
	params.Set("chainid", strconv.FormatInt(c.chainID.ID(), 10))
	params.Set("module", "proxy")
	params.Set("action", action)
	if txHash != "" {
		params.Set("txhash", txHash)
	}
	if c.config.APIKey != "" {
		params.Set("apikey", c.config.APIKey)
	}

	return c.config.BaseURL + "?" + params.Encode()
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
