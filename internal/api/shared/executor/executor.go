package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/api/shared/constants"
	"github.com/feral-file/ff-token-sale/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-token-sale/internal/api/shared/errors"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/price"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
	"github.com/feral-file/ff-token-sale/internal/sweeper"
	"github.com/feral-file/ff-token-sale/internal/verifier"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// SubmitPurchase queues a sent payment for verification
	SubmitPurchase(ctx context.Context, req dto.SubmitPurchaseRequest) (*dto.PurchaseSubmittedResponse, error)

	// GetPurchaseStatus reports the ledger record of a transaction, or its verification progress
	GetPurchaseStatus(ctx context.Context, txHash string) (*dto.PurchaseStatusResponse, error)

	// GetBuyerPurchases lists a buyer's purchases with the total of verified tokens
	GetBuyerPurchases(ctx context.Context, buyerAddress string) (*dto.BuyerPurchasesResponse, error)

	ListRounds(ctx context.Context) (*dto.RoundListResponse, error)

	// GetActiveRound returns nil when no round is active
	GetActiveRound(ctx context.Context) (*dto.RoundResponse, error)

	GetSale(ctx context.Context) (*dto.SaleResponse, error)

	GetPrice(ctx context.Context) (*dto.PriceResponse, error)

	// Admin actions
	ActivateRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error)
	CompleteRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error)
	ResetRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error)
	FinishSale(ctx context.Context) (*dto.SaleResponse, error)
	SetManualTotalRaised(ctx context.Context, amountUSD decimal.Decimal) (*dto.SaleResponse, error)
	SetManualTotalMode(ctx context.Context, useManual bool) (*dto.SaleResponse, error)
}

// Config holds the purchase rules enforced before a payment is queued
type Config struct {
	MinPurchaseUSD decimal.Decimal
	DefaultChain   domain.Chain
}

type executor struct {
	config    Config
	store     store.Store
	scheduler sweeper.Scheduler
	oracle    price.Oracle
}

func NewExecutor(config Config, store store.Store, scheduler sweeper.Scheduler, oracle price.Oracle) Executor {
	return &executor{config: config, store: store, scheduler: scheduler, oracle: oracle}
}

func (e *executor) SubmitPurchase(ctx context.Context, req dto.SubmitPurchaseRequest) (*dto.PurchaseSubmittedResponse, error) {
	txHash, err := domain.NormalizeTxHash(req.TxHash)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	buyer, err := domain.NormalizeAddress(req.BuyerAddress)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	if req.AmountUSD.LessThan(e.config.MinPurchaseUSD) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("minimum purchase is %s USD", e.config.MinPurchaseUSD.String()))
	}

	chain := e.config.DefaultChain
	if req.ChainID != nil {
		chain, err = domain.ChainFromID(*req.ChainID)
		if err != nil {
			return nil, apierrors.NewValidationError(err.Error())
		}
	}

	// A payment that is already in the ledger needs no verification
	existing, err := e.store.GetPurchaseByTxHash(ctx, txHash)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get purchase: %v", err))
	}
	if existing != nil {
		return &dto.PurchaseSubmittedResponse{TxHash: txHash, Status: constants.PURCHASE_STATUS_CONFIRMED}, nil
	}

	sale, err := e.store.GetSaleStatus(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sale status: %v", err))
	}
	if sale.Finished {
		return nil, apierrors.NewSaleFinishedError()
	}

	err = e.scheduler.Submit(ctx, verifier.Request{
		TxHash:            txHash,
		BuyerAddress:      buyer,
		ClaimedUSD:        req.AmountUSD,
		RoundNumber:       req.Round,
		LockedEthPriceUSD: req.EthPriceUSD,
		Chain:             chain,
	})
	if err != nil {
		if errors.Is(err, sweeper.ErrSchedulerNotRunning) {
			return nil, apierrors.NewServiceUnavailableError("Verification is not available, retry later")
		}
		if domain.IsPermanent(err) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to submit purchase: %v", err))
	}

	logger.InfoCtx(ctx, "Purchase submitted for verification",
		zap.String("tx_hash", txHash),
		zap.String("buyer", buyer),
		zap.Int("round", req.Round),
		zap.String("chain", string(chain)),
	)

	return &dto.PurchaseSubmittedResponse{TxHash: txHash, Status: constants.PURCHASE_STATUS_PENDING}, nil
}

func (e *executor) GetPurchaseStatus(ctx context.Context, txHash string) (*dto.PurchaseStatusResponse, error) {
	txHash, err := domain.NormalizeTxHash(txHash)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	purchase, err := e.store.GetPurchaseByTxHash(ctx, txHash)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get purchase: %v", err))
	}
	if purchase != nil {
		return &dto.PurchaseStatusResponse{
			TxHash:    txHash,
			Status:    constants.PURCHASE_STATUS_CONFIRMED,
			Purchase:  dto.MapPurchaseToDTO(purchase),
			UpdatedAt: purchase.VerifiedAt,
		}, nil
	}

	tracked, ok := e.scheduler.Status(txHash)
	if !ok {
		return nil, nil
	}

	updatedAt := tracked.UpdatedAt
	return &dto.PurchaseStatusResponse{
		TxHash:    txHash,
		Status:    apiStatus(tracked.State),
		Reason:    tracked.Reason,
		LastError: tracked.LastError,
		Attempts:  tracked.Attempts,
		UpdatedAt: &updatedAt,
	}, nil
}

// apiStatus maps a scheduler state to the status reported to buyers
func apiStatus(state domain.VerificationState) string {
	switch state {
	case domain.VerificationStateVerified:
		return constants.PURCHASE_STATUS_CONFIRMED
	case domain.VerificationStateFailed:
		return constants.PURCHASE_STATUS_REJECTED
	case domain.VerificationStateExpired:
		return constants.PURCHASE_STATUS_EXPIRED
	default:
		return constants.PURCHASE_STATUS_PENDING
	}
}

func (e *executor) GetBuyerPurchases(ctx context.Context, buyerAddress string) (*dto.BuyerPurchasesResponse, error) {
	buyer, err := domain.NormalizeAddress(buyerAddress)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	purchases, err := e.store.ListPurchasesByBuyer(ctx, buyer)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list purchases: %v", err))
	}

	resp := &dto.BuyerPurchasesResponse{
		BuyerAddress: buyer,
		Purchases:    make([]dto.PurchaseResponse, 0, len(purchases)),
		TotalTokens:  decimal.Zero,
	}
	for i := range purchases {
		resp.Purchases = append(resp.Purchases, *dto.MapPurchaseToDTO(&purchases[i]))
		if purchases[i].Status == domain.PurchaseStatusVerified {
			resp.TotalTokens = resp.TotalTokens.Add(purchases[i].TokensPurchased)
		}
	}

	return resp, nil
}

func (e *executor) ListRounds(ctx context.Context) (*dto.RoundListResponse, error) {
	rounds, err := e.store.ListRounds(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list rounds: %v", err))
	}

	resp := &dto.RoundListResponse{Rounds: make([]dto.RoundResponse, 0, len(rounds))}
	for i := range rounds {
		resp.Rounds = append(resp.Rounds, *dto.MapRoundToDTO(&rounds[i]))
	}
	return resp, nil
}

func (e *executor) GetActiveRound(ctx context.Context) (*dto.RoundResponse, error) {
	round, err := e.store.GetActiveRound(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get active round: %v", err))
	}
	return dto.MapRoundToDTO(round), nil
}

func (e *executor) GetSale(ctx context.Context) (*dto.SaleResponse, error) {
	status, err := e.store.GetSaleStatus(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sale status: %v", err))
	}
	return dto.MapSaleStatusToDTO(status), nil
}

func (e *executor) GetPrice(ctx context.Context) (*dto.PriceResponse, error) {
	quote, err := e.oracle.CurrentEthUsdPrice(ctx)
	if err != nil {
		return nil, apierrors.NewServiceUnavailableError("ETH price unavailable", err.Error())
	}
	return dto.MapQuoteToDTO(quote), nil
}

func (e *executor) ActivateRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error) {
	return e.roundAction(ctx, "activate", roundNumber, e.store.ActivateRound)
}

func (e *executor) CompleteRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error) {
	return e.roundAction(ctx, "complete", roundNumber, e.store.CompleteRound)
}

func (e *executor) ResetRound(ctx context.Context, roundNumber int) (*dto.RoundResponse, error) {
	return e.roundAction(ctx, "reset", roundNumber, e.store.ResetRound)
}

func (e *executor) roundAction(
	ctx context.Context,
	action string,
	roundNumber int,
	fn func(context.Context, int) (*schema.Round, error),
) (*dto.RoundResponse, error) {
	round, err := fn(ctx, roundNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoundNotFound):
			return nil, apierrors.NewNotFoundError(fmt.Sprintf("Round %d not found", roundNumber))
		case errors.Is(err, domain.ErrInvalidRoundTransition):
			return nil, apierrors.NewConflictError(fmt.Sprintf("Cannot %s round %d", action, roundNumber), err.Error())
		default:
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to %s round: %v", action, err))
		}
	}

	logger.InfoCtx(ctx, "Round updated by admin",
		zap.String("action", action),
		zap.Int("round", roundNumber),
		zap.String("status", string(round.Status)),
	)

	return dto.MapRoundToDTO(round), nil
}

func (e *executor) FinishSale(ctx context.Context) (*dto.SaleResponse, error) {
	status, err := e.store.FinishSale(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to finish sale: %v", err))
	}

	logger.InfoCtx(ctx, "Sale finished by admin")
	return dto.MapSaleStatusToDTO(status), nil
}

func (e *executor) SetManualTotalRaised(ctx context.Context, amountUSD decimal.Decimal) (*dto.SaleResponse, error) {
	status, err := e.store.SetManualTotalRaised(ctx, amountUSD)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to set total raised: %v", err))
	}

	logger.InfoCtx(ctx, "Manual total raised updated by admin", zap.String("amount_usd", amountUSD.String()))
	return dto.MapSaleStatusToDTO(status), nil
}

func (e *executor) SetManualTotalMode(ctx context.Context, useManual bool) (*dto.SaleResponse, error) {
	status, err := e.store.SetManualTotalMode(ctx, useManual)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to set total raised mode: %v", err))
	}

	logger.InfoCtx(ctx, "Total raised mode updated by admin", zap.Bool("use_manual", useManual))
	return dto.MapSaleStatusToDTO(status), nil
}
