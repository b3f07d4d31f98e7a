package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Purchase Ledger Operations
// =============================================================================

// InsertPurchaseIfAbsent inserts the purchase guarded by the tx_hash unique constraint
func (s *pgStore) InsertPurchaseIfAbsent(ctx context.Context, purchase *schema.Purchase) (InsertResult, error) {
	if purchase == nil {
		return 0, fmt.Errorf("purchase is required")
	}

	txHash, err := domain.NormalizeTxHash(purchase.TxHash)
	if err != nil {
		return 0, err
	}
	buyer, err := domain.NormalizeAddress(purchase.BuyerAddress)
	if err != nil {
		return 0, err
	}
	purchase.TxHash = txHash
	purchase.BuyerAddress = buyer

	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}

	// Concurrent inserts of the same hash are serialized by the unique index,
	// the loser affects no rows
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).
		Create(purchase)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert purchase: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return InsertResultAlreadyExists, nil
	}

	return InsertResultInserted, nil
}

// GetPurchaseByTxHash retrieves a purchase by its transaction hash
func (s *pgStore) GetPurchaseByTxHash(ctx context.Context, txHash string) (*schema.Purchase, error) {
	txHash, err := domain.NormalizeTxHash(txHash)
	if err != nil {
		return nil, err
	}

	var purchase schema.Purchase
	err = s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return &purchase, nil
}

// ListPurchasesByBuyer retrieves all purchases of a buyer, newest first
func (s *pgStore) ListPurchasesByBuyer(ctx context.Context, buyerAddress string) ([]schema.Purchase, error) {
	buyer, err := domain.NormalizeAddress(buyerAddress)
	if err != nil {
		return nil, err
	}

	var purchases []schema.Purchase
	err = s.db.WithContext(ctx).
		Where("buyer_address = ?", buyer).
		Order("created_at DESC").
		Order("id").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases for buyer %s: %w", buyer, err)
	}

	return purchases, nil
}

// ListUncreditedPurchases retrieves verified purchases that have no round credit yet
func (s *pgStore) ListUncreditedPurchases(ctx context.Context, limit int) ([]UncreditedPurchase, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT
			p.id AS purchase_id,
			p.tx_hash,
			p.round_number,
			p.tokens_purchased,
			p.created_at
		FROM purchases p
		LEFT JOIN round_credits rc ON rc.purchase_id = p.id
		WHERE p.status = ? AND rc.id IS NULL
		ORDER BY p.created_at ASC
		LIMIT ?
	`

	var purchases []UncreditedPurchase
	err := s.db.WithContext(ctx).Raw(query, domain.PurchaseStatusVerified, limit).Scan(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uncredited purchases: %w", err)
	}

	return purchases, nil
}

// =============================================================================
// Round Catalog Operations
// =============================================================================

// GetRound retrieves a round by its number
func (s *pgStore) GetRound(ctx context.Context, roundNumber int) (*schema.Round, error) {
	var round schema.Round
	err := s.db.WithContext(ctx).Where("round_number = ?", roundNumber).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	return &round, nil
}

// ListRounds retrieves all rounds ordered by round number
func (s *pgStore) ListRounds(ctx context.Context) ([]schema.Round, error) {
	var rounds []schema.Round
	err := s.db.WithContext(ctx).Order("round_number ASC").Find(&rounds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	return rounds, nil
}

// GetActiveRound retrieves the active round
func (s *pgStore) GetActiveRound(ctx context.Context) (*schema.Round, error) {
	var round schema.Round
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.RoundStatusActive).
		Order("round_number ASC").
		First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active round: %w", err)
	}

	return &round, nil
}

// GetRoundPrice retrieves the per-token USD price of a round
func (s *pgStore) GetRoundPrice(ctx context.Context, roundNumber int) (decimal.Decimal, error) {
	round, err := s.GetRound(ctx, roundNumber)
	if err != nil {
		return decimal.Zero, err
	}
	if round == nil {
		return decimal.Zero, fmt.Errorf("%w: round %d", domain.ErrRoundNotFound, roundNumber)
	}
	if !round.PriceUSD.IsPositive() {
		return decimal.Zero, fmt.Errorf("round %d has non-positive price %s", roundNumber, round.PriceUSD)
	}

	return round.PriceUSD, nil
}

// GetRoundStatus retrieves the lifecycle status of a round
func (s *pgStore) GetRoundStatus(ctx context.Context, roundNumber int) (domain.RoundStatus, error) {
	round, err := s.GetRound(ctx, roundNumber)
	if err != nil {
		return "", err
	}
	if round == nil {
		return "", fmt.Errorf("%w: round %d", domain.ErrRoundNotFound, roundNumber)
	}

	return round.Status, nil
}

// IncrementSoldTokens records the round credit and bumps sold_tokens in one transaction.
// A purchase that already has a credit leaves the counter untouched.
func (s *pgStore) IncrementSoldTokens(ctx context.Context, purchaseID uuid.UUID, roundNumber int, delta decimal.Decimal) (bool, error) {
	if !delta.IsPositive() {
		return false, fmt.Errorf("%w: delta %s", domain.ErrInvalidAmount, delta)
	}

	var applied bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var round schema.Round
		if err := lockRound(tx, roundNumber, &round); err != nil {
			return err
		}

		credit := schema.RoundCredit{
			PurchaseID:  purchaseID,
			RoundNumber: roundNumber,
			Tokens:      delta,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "purchase_id"}},
			DoNothing: true,
		}).Create(&credit)
		if result.Error != nil {
			return fmt.Errorf("failed to create round credit: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// Already credited
			return nil
		}

		update := tx.Model(&schema.Round{}).
			Where("round_number = ?", roundNumber).
			Updates(map[string]interface{}{
				"sold_tokens": gorm.Expr("sold_tokens + ?", delta),
				"updated_at":  time.Now(),
			})
		if update.Error != nil {
			return fmt.Errorf("failed to increment sold tokens: %w", update.Error)
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

// ActivateRound activates a round and completes every other active round
func (s *pgStore) ActivateRound(ctx context.Context, roundNumber int) (*schema.Round, error) {
	var round schema.Round
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRound(tx, roundNumber, &round); err != nil {
			return err
		}

		now := time.Now()
		// Completing the others first keeps the single-active index satisfied
		if err := tx.Model(&schema.Round{}).
			Where("status = ? AND round_number <> ?", domain.RoundStatusActive, roundNumber).
			Updates(map[string]interface{}{
				"status":     domain.RoundStatusCompleted,
				"updated_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to complete active rounds: %w", err)
		}

		return setRoundStatus(tx, &round, domain.RoundStatusActive, now)
	})
	if err != nil {
		return nil, err
	}

	return &round, nil
}

// CompleteRound completes an active round
func (s *pgStore) CompleteRound(ctx context.Context, roundNumber int) (*schema.Round, error) {
	var round schema.Round
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRound(tx, roundNumber, &round); err != nil {
			return err
		}

		if round.Status != domain.RoundStatusActive {
			return fmt.Errorf("%w: round %d is %s, only an active round can be completed",
				domain.ErrInvalidRoundTransition, roundNumber, round.Status)
		}

		return setRoundStatus(tx, &round, domain.RoundStatusCompleted, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return &round, nil
}

// ResetRound moves a round back to upcoming without touching sold_tokens
func (s *pgStore) ResetRound(ctx context.Context, roundNumber int) (*schema.Round, error) {
	var round schema.Round
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRound(tx, roundNumber, &round); err != nil {
			return err
		}

		return setRoundStatus(tx, &round, domain.RoundStatusUpcoming, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return &round, nil
}

// lockRound loads a round with SELECT ... FOR UPDATE
func lockRound(tx *gorm.DB, roundNumber int, round *schema.Round) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("round_number = ?", roundNumber).
		First(round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: round %d", domain.ErrRoundNotFound, roundNumber)
		}
		return fmt.Errorf("failed to lock round: %w", err)
	}
	return nil
}

func setRoundStatus(tx *gorm.DB, round *schema.Round, status domain.RoundStatus, now time.Time) error {
	if round.Status == status {
		return nil
	}

	if err := tx.Model(&schema.Round{}).
		Where("round_number = ?", round.RoundNumber).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		}).Error; err != nil {
		return fmt.Errorf("failed to update round status: %w", err)
	}

	round.Status = status
	round.UpdatedAt = now
	return nil
}

// =============================================================================
// Sale Settings Operations
// =============================================================================

// saleTotals is the aggregate row read by GetSaleStatus
type saleTotals struct {
	ComputedTotalRaisedUSD decimal.Decimal
	VerifiedPurchases      int64
	TotalTokensSold        decimal.Decimal
	ActiveRounds           int64
}

// GetSaleStatus retrieves the sale flags together with the aggregate totals
func (s *pgStore) GetSaleStatus(ctx context.Context) (*SaleStatus, error) {
	return s.saleStatus(s.db.WithContext(ctx))
}

// FinishSale marks the sale finished, keeping the original finish date on repeat calls
func (s *pgStore) FinishSale(ctx context.Context) (*SaleStatus, error) {
	return s.updateSettings(ctx, func(tx *gorm.DB) error {
		return tx.Model(&schema.SaleSettings{}).
			Where("id = ? AND finished = ?", schema.SaleSettingsID, false).
			Updates(map[string]interface{}{
				"finished":    true,
				"finished_at": time.Now(),
				"updated_at":  time.Now(),
			}).Error
	})
}

// SetManualTotalRaised stores the manual total raised override
func (s *pgStore) SetManualTotalRaised(ctx context.Context, amountUSD decimal.Decimal) (*SaleStatus, error) {
	if amountUSD.IsNegative() {
		return nil, fmt.Errorf("%w: manual total %s", domain.ErrInvalidAmount, amountUSD)
	}

	return s.updateSettings(ctx, func(tx *gorm.DB) error {
		return tx.Model(&schema.SaleSettings{}).
			Where("id = ?", schema.SaleSettingsID).
			Updates(map[string]interface{}{
				"manual_total_raised_usd": amountUSD,
				"updated_at":              time.Now(),
			}).Error
	})
}

// SetManualTotalMode switches the displayed total between the manual override and the computed sum
func (s *pgStore) SetManualTotalMode(ctx context.Context, useManual bool) (*SaleStatus, error) {
	return s.updateSettings(ctx, func(tx *gorm.DB) error {
		return tx.Model(&schema.SaleSettings{}).
			Where("id = ?", schema.SaleSettingsID).
			Updates(map[string]interface{}{
				"use_manual_total": useManual,
				"updated_at":       time.Now(),
			}).Error
	})
}

// updateSettings makes sure the settings row exists, applies fn and returns the new status
func (s *pgStore) updateSettings(ctx context.Context, fn func(tx *gorm.DB) error) (*SaleStatus, error) {
	var status *SaleStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&schema.SaleSettings{ID: schema.SaleSettingsID}).Error; err != nil {
			return fmt.Errorf("failed to ensure sale settings: %w", err)
		}

		if err := fn(tx); err != nil {
			return fmt.Errorf("failed to update sale settings: %w", err)
		}

		var err error
		status, err = s.saleStatus(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

func (s *pgStore) saleStatus(db *gorm.DB) (*SaleStatus, error) {
	var settings schema.SaleSettings
	err := db.Where("id = ?", schema.SaleSettingsID).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get sale settings: %w", err)
	}

	query := `
		SELECT
			(SELECT COALESCE(SUM(amount_claimed_usd), 0) FROM purchases WHERE status = ?) AS computed_total_raised_usd,
			(SELECT COUNT(*) FROM purchases WHERE status = ?) AS verified_purchases,
			(SELECT COALESCE(SUM(sold_tokens), 0) FROM rounds) AS total_tokens_sold,
			(SELECT COUNT(*) FROM rounds WHERE status = ?) AS active_rounds
	`

	var totals saleTotals
	err = db.Raw(query,
		domain.PurchaseStatusVerified,
		domain.PurchaseStatusVerified,
		domain.RoundStatusActive,
	).Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sale totals: %w", err)
	}

	status := &SaleStatus{
		Finished:               settings.Finished,
		FinishedAt:             settings.FinishedAt,
		TotalRaisedUSD:         totals.ComputedTotalRaisedUSD,
		ComputedTotalRaisedUSD: totals.ComputedTotalRaisedUSD,
		ManualTotalRaisedUSD:   settings.ManualTotalRaisedUSD,
		UseManualTotal:         settings.UseManualTotal,
		TotalTokensSold:        totals.TotalTokensSold,
		VerifiedPurchases:      totals.VerifiedPurchases,
		ActiveRounds:           totals.ActiveRounds,
	}
	if settings.UseManualTotal {
		status.TotalRaisedUSD = settings.ManualTotalRaisedUSD
	}

	return status, nil
}
