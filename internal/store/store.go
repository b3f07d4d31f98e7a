package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
)

// InsertResult is the outcome of a guarded ledger insert
type InsertResult int

const (
	// InsertResultInserted means the row was written by this call
	InsertResultInserted InsertResult = iota + 1
	// InsertResultAlreadyExists means a row with the same tx hash was already present
	InsertResultAlreadyExists
)

func (r InsertResult) String() string {
	switch r {
	case InsertResultInserted:
		return "inserted"
	case InsertResultAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// SaleStatus summarizes the sale for display
type SaleStatus struct {
	Finished   bool
	FinishedAt *time.Time
	// TotalRaisedUSD is ManualTotalRaisedUSD when UseManualTotal is set, ComputedTotalRaisedUSD otherwise
	TotalRaisedUSD         decimal.Decimal
	ComputedTotalRaisedUSD decimal.Decimal
	ManualTotalRaisedUSD   decimal.Decimal
	UseManualTotal         bool
	TotalTokensSold        decimal.Decimal
	VerifiedPurchases      int64
	ActiveRounds           int64
}

// UncreditedPurchase is a verified purchase whose tokens are not yet counted in its round
type UncreditedPurchase struct {
	PurchaseID      uuid.UUID
	TxHash          string
	RoundNumber     int
	TokensPurchased decimal.Decimal
	CreatedAt       time.Time
}

// PurchaseLedger is the append-only table of verified purchases
type PurchaseLedger interface {
	// InsertPurchaseIfAbsent writes the purchase unless one with the same tx hash exists
	InsertPurchaseIfAbsent(ctx context.Context, purchase *schema.Purchase) (InsertResult, error)
	// GetPurchaseByTxHash returns nil when no purchase has the hash
	GetPurchaseByTxHash(ctx context.Context, txHash string) (*schema.Purchase, error)
	// ListPurchasesByBuyer returns the buyer's purchases, newest first
	ListPurchasesByBuyer(ctx context.Context, buyerAddress string) ([]schema.Purchase, error)
	// ListUncreditedPurchases returns verified purchases without a round credit, oldest first
	ListUncreditedPurchases(ctx context.Context, limit int) ([]UncreditedPurchase, error)
}

// RoundCatalog holds the sale rounds and their sold-token counters
type RoundCatalog interface {
	// GetRound returns nil when the round does not exist
	GetRound(ctx context.Context, roundNumber int) (*schema.Round, error)
	// ListRounds returns every round ordered by round number
	ListRounds(ctx context.Context) ([]schema.Round, error)
	// GetActiveRound returns nil when no round is active
	GetActiveRound(ctx context.Context) (*schema.Round, error)
	// GetRoundPrice returns domain.ErrRoundNotFound for an unknown round
	GetRoundPrice(ctx context.Context, roundNumber int) (decimal.Decimal, error)
	// GetRoundStatus returns domain.ErrRoundNotFound for an unknown round
	GetRoundStatus(ctx context.Context, roundNumber int) (domain.RoundStatus, error)
	// IncrementSoldTokens credits a purchase to its round at most once.
	// It reports whether this call applied the increment.
	IncrementSoldTokens(ctx context.Context, purchaseID uuid.UUID, roundNumber int, delta decimal.Decimal) (bool, error)
	// ActivateRound makes the round active and completes any other active round
	ActivateRound(ctx context.Context, roundNumber int) (*schema.Round, error)
	// CompleteRound moves an active round to completed
	CompleteRound(ctx context.Context, roundNumber int) (*schema.Round, error)
	// ResetRound moves a round back to upcoming, sold tokens are kept
	ResetRound(ctx context.Context, roundNumber int) (*schema.Round, error)
}

// SaleSettingsStore holds the sale-wide flags
type SaleSettingsStore interface {
	GetSaleStatus(ctx context.Context) (*SaleStatus, error)
	// FinishSale marks the sale finished, a finished sale stays finished
	FinishSale(ctx context.Context) (*SaleStatus, error)
	SetManualTotalRaised(ctx context.Context, amountUSD decimal.Decimal) (*SaleStatus, error)
	SetManualTotalMode(ctx context.Context, useManual bool) (*SaleStatus, error)
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,PurchaseLedger=MockPurchaseLedger,RoundCatalog=MockRoundCatalog,SaleSettingsStore=MockSaleSettingsStore

// Store defines the interface for database operations
type Store interface {
	PurchaseLedger
	RoundCatalog
	SaleSettingsStore
}
