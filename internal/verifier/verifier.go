package verifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/chain"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/price"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
)

// tokenDivisionPrecision is the number of fractional digits kept for token amounts
const tokenDivisionPrecision = 18

// Request describes a purchase the buyer claims to have paid for
type Request struct {
	TxHash       string
	BuyerAddress string
	ClaimedUSD   decimal.Decimal
	RoundNumber  int
	// LockedEthPriceUSD is the rate quoted when the transaction was sent, nil when unknown
	LockedEthPriceUSD *decimal.Decimal
	// Chain defaults to the configured payment network when empty
	Chain domain.Chain
}

// Config holds the verification rules
type Config struct {
	PaymentAddress string
	DefaultChain   domain.Chain
	// LockedTolerance applies when the request carries a locked price
	LockedTolerance decimal.Decimal
	// CurrentTolerance applies when the price comes from the oracle
	CurrentTolerance decimal.Decimal
}

// Verifier verifies a claimed payment against the chain and records it in the ledger
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=Verifier=MockVerifier,Crediter=MockCrediter
type Verifier interface {
	// Verify returns the recorded purchase, or an error wrapping one of the domain verdicts.
	// Transient failures are retryable, see domain.IsRetryable.
	Verify(ctx context.Context, req Request) (*schema.Purchase, error)
}

// Crediter adds a verified purchase to its round's sold-token counter in the background
type Crediter interface {
	Enqueue(ctx context.Context, purchase *schema.Purchase)
}

type verifier struct {
	config   Config
	payTo    string
	networks chain.Resolver
	oracle   price.Oracle
	store    store.Store
	crediter Crediter
	clock    adapter.Clock
	json     adapter.JSON
}

// NewVerifier creates a new verification engine
func NewVerifier(
	config Config,
	networks chain.Resolver,
	oracle price.Oracle,
	st store.Store,
	crediter Crediter,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
) (Verifier, error) {
	payTo, err := domain.NormalizeAddress(config.PaymentAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid payment address: %w", err)
	}
	if !config.LockedTolerance.IsPositive() || !config.CurrentTolerance.IsPositive() {
		return nil, fmt.Errorf("tolerances must be positive")
	}
	if config.DefaultChain == "" {
		config.DefaultChain = domain.ChainEthereumMainnet
	}

	return &verifier{
		config:   config,
		payTo:    payTo,
		networks: networks,
		oracle:   oracle,
		store:    st,
		crediter: crediter,
		clock:    clock,
		json:     jsonAdapter,
	}, nil
}

// Verify runs one verification attempt
func (v *verifier) Verify(ctx context.Context, req Request) (*schema.Purchase, error) {
	if req.Chain == "" {
		req.Chain = v.config.DefaultChain
	}
	ctx = logger.WithFields(ctx,
		zap.String("tx_hash", req.TxHash),
		zap.String("chain", string(req.Chain)),
		zap.Int("round", req.RoundNumber))

	purchase, err := v.verify(ctx, req)
	switch {
	case err == nil:
		logger.InfoCtx(ctx, "Purchase verified",
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("buyer", purchase.BuyerAddress),
			zap.String("tokens", purchase.TokensPurchased.String()),
			zap.String("price_source", string(purchase.PriceSource)))
	case domain.IsPermanent(err):
		logger.WarnCtx(ctx, "Purchase rejected", zap.Error(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.DebugCtx(ctx, "Verification attempt interrupted", zap.Error(err))
	default:
		logger.DebugCtx(ctx, "Verification not final yet", zap.Error(err))
	}

	return purchase, err
}

func (v *verifier) verify(ctx context.Context, req Request) (*schema.Purchase, error) {
	txHash, err := domain.NormalizeTxHash(req.TxHash)
	if err != nil {
		return nil, err
	}
	buyer, err := domain.NormalizeAddress(req.BuyerAddress)
	if err != nil {
		return nil, err
	}

	// Idempotency gate, checked before any chain call
	existing, err := v.store.GetPurchaseByTxHash(ctx, txHash)
	if err != nil {
		err = fmt.Errorf("failed to check ledger: %w", err)
		logger.ErrorCtx(ctx, err)
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewVerificationError(domain.ErrAlreadyProcessed, txHash, map[string]string{
			"purchase_id": existing.ID.String(),
		})
	}

	if !req.ClaimedUSD.IsPositive() {
		return nil, domain.NewVerificationError(domain.ErrInvalidAmount, txHash, map[string]string{
			"claimed_usd": req.ClaimedUSD.String(),
		})
	}

	network, err := v.networks.Network(req.Chain)
	if err != nil {
		return nil, err
	}

	tx, err := network.Reader.FetchTransaction(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if tx.Pending {
		return nil, domain.ErrReceiptPending
	}

	if !domain.AddressEqual(tx.To, v.payTo) {
		return nil, domain.NewVerificationError(domain.ErrWrongDestination, txHash, map[string]string{
			"expected": v.payTo,
			"received": tx.To,
		})
	}

	// Some explorers omit the sender, the check only runs when it is known
	if tx.From != "" && !domain.AddressEqual(tx.From, buyer) {
		return nil, domain.NewVerificationError(domain.ErrSenderMismatch, txHash, map[string]string{
			"buyer":  buyer,
			"sender": tx.From,
		})
	}

	receipt, err := network.Reader.FetchReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if receipt.Status != domain.ReceiptStatusSuccess {
		return nil, domain.NewVerificationError(domain.ErrTransactionFailed, txHash, nil)
	}
	if receipt.BlockNumber == 0 {
		return nil, domain.ErrReceiptPending
	}

	confirmations, err := network.Head.Confirmations(ctx, receipt.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmations: %w", err)
	}
	if confirmations < network.RequiredConfirmations {
		return nil, domain.NewVerificationError(domain.ErrInsufficientConfirmations, txHash, map[string]string{
			"confirmations": strconv.FormatUint(confirmations, 10),
			"required":      strconv.FormatUint(network.RequiredConfirmations, 10),
		})
	}

	amountSentEth := domain.WeiToEth(tx.ValueWei)

	quote, tolerance, err := v.resolvePrice(ctx, req)
	if err != nil {
		return nil, err
	}

	amountSentUSD := amountSentEth.Mul(quote.Price)
	minUSD := req.ClaimedUSD.Mul(decimal.NewFromInt(1).Sub(tolerance))
	maxUSD := req.ClaimedUSD.Mul(decimal.NewFromInt(1).Add(tolerance))
	bounds := map[string]string{
		"claimed_usd":   req.ClaimedUSD.String(),
		"realised_usd":  amountSentUSD.StringFixed(2),
		"eth_price_usd": quote.Price.String(),
		"tolerance":     tolerance.String(),
	}
	if amountSentUSD.LessThan(minUSD) {
		bounds["min_usd"] = minUSD.StringFixed(2)
		return nil, domain.NewVerificationError(domain.ErrInsufficientPayment, txHash, bounds)
	}
	if amountSentUSD.GreaterThan(maxUSD) {
		bounds["max_usd"] = maxUSD.StringFixed(2)
		return nil, domain.NewVerificationError(domain.ErrExcessivePayment, txHash, bounds)
	}

	// No fallback to hardcoded prices, an unknown round fails the verification
	roundPrice, err := v.store.GetRoundPrice(ctx, req.RoundNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			return nil, domain.NewVerificationError(domain.ErrRoundNotFound, txHash, map[string]string{
				"round": strconv.Itoa(req.RoundNumber),
			})
		}
		err = fmt.Errorf("failed to get round price: %w", err)
		logger.ErrorCtx(ctx, err)
		return nil, err
	}

	tokens := req.ClaimedUSD.DivRound(roundPrice, tokenDivisionPrecision)

	evidence, err := v.json.Marshal(schema.PurchaseEvidence{
		BlockNumber:           receipt.BlockNumber,
		LatestBlock:           receipt.BlockNumber + confirmations,
		Confirmations:         confirmations,
		RequiredConfirmations: network.RequiredConfirmations,
		From:                  tx.From,
		To:                    tx.To,
		ValueWei:              tx.ValueWei.String(),
		Tolerance:             tolerance.String(),
		MinAcceptedUSD:        minUSD.String(),
		MaxAcceptedUSD:        maxUSD.String(),
		PriceProvider:         quote.Provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evidence: %w", err)
	}

	now := v.clock.Now()
	purchase := &schema.Purchase{
		ID:               uuid.New(),
		BuyerAddress:     buyer,
		TxHash:           txHash,
		Chain:            network.Chain,
		AmountSentEth:    amountSentEth,
		AmountClaimedUSD: req.ClaimedUSD,
		AmountSentUSD:    amountSentUSD,
		EthPriceUSD:      quote.Price,
		PriceSource:      quote.Source,
		PriceEstimated:   quote.Estimated,
		TokensPurchased:  tokens,
		RoundNumber:      req.RoundNumber,
		Status:           domain.PurchaseStatusVerified,
		Evidence:         datatypes.JSON(evidence),
		CreatedAt:        now,
		VerifiedAt:       &now,
	}

	// The unique tx_hash index settles concurrent attempts that all passed the gate
	result, err := v.store.InsertPurchaseIfAbsent(ctx, purchase)
	if err != nil {
		err = fmt.Errorf("failed to record purchase: %w", err)
		logger.ErrorCtx(ctx, err)
		return nil, err
	}
	if result == store.InsertResultAlreadyExists {
		return nil, domain.NewVerificationError(domain.ErrAlreadyProcessed, txHash, nil)
	}

	// Crediting happens out of band and never unwinds the ledger entry
	v.crediter.Enqueue(ctx, purchase)

	return purchase, nil
}

// resolvePrice picks the locked price when the request has one, otherwise asks the oracle
func (v *verifier) resolvePrice(ctx context.Context, req Request) (price.Quote, decimal.Decimal, error) {
	if req.LockedEthPriceUSD != nil && req.LockedEthPriceUSD.IsPositive() {
		return price.Quote{
			Price:     *req.LockedEthPriceUSD,
			Source:    domain.PriceSourceLocked,
			FetchedAt: v.clock.Now(),
		}, v.config.LockedTolerance, nil
	}

	quote, err := v.oracle.CurrentEthUsdPrice(ctx)
	if err != nil {
		return price.Quote{}, decimal.Zero, fmt.Errorf("failed to get eth price: %w", err)
	}
	if quote.Estimated {
		logger.WarnCtx(ctx, "Verifying with an estimated eth price",
			zap.String("price", quote.Price.String()),
			zap.String("source", string(quote.Source)))
	}

	return quote, v.config.CurrentTolerance, nil
}
