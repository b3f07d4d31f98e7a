package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
	"github.com/feral-file/ff-token-sale/internal/verifier"
)

// RoundCreditConfig holds configuration for the round credit sweeper
type RoundCreditConfig struct {
	SweepInterval   time.Duration // Time to sleep between sweeps for uncredited purchases
	BatchSize       int           // Uncredited purchases loaded per sweep
	RetryElapsed    time.Duration // Total retry time of a single credit before it is left to the sweep
	WorkerPoolSize  int
	WorkerQueueSize int
}

// RoundCrediter adds verified purchases to their round's sold-token counter.
// Purchases are credited as they are enqueued; a periodic sweep picks up the
// ones whose credit was lost to a crash or exhausted retries.
type RoundCrediter interface {
	Sweeper
	verifier.Crediter
}

type creditTask struct {
	PurchaseID  uuid.UUID
	TxHash      string
	RoundNumber int
	Tokens      decimal.Decimal
}

type roundCrediter struct {
	config RoundCreditConfig
	store  store.Store
	clock  adapter.Clock

	mu       sync.Mutex
	pool     pond.Pool
	ctx      context.Context
	inFlight sync.Map // purchase id -> struct{}

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRoundCrediter creates a new round credit sweeper
func NewRoundCrediter(config RoundCreditConfig, st store.Store, clock adapter.Clock) RoundCrediter {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.RetryElapsed <= 0 {
		config.RetryElapsed = 2 * time.Minute
	}

	return &roundCrediter{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (c *roundCrediter) Name() string {
	return "round-credit-sweeper"
}

// Start runs the sweep loop until the context is canceled or Stop is called
func (c *roundCrediter) Start(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		c.running.Store(false)
		close(c.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting round credit sweeper",
		zap.Duration("sweep_interval", c.config.SweepInterval),
		zap.Int("batch_size", c.config.BatchSize),
		zap.Int("worker_pool_size", c.config.WorkerPoolSize),
	)

	c.mu.Lock()
	c.ctx = ctx
	c.pool = newWorkerPool(ctx, c.config.WorkerPoolSize, c.config.WorkerQueueSize)
	c.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Round credit sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			c.cleanup()
			return nil
		case <-c.stopChan:
			logger.InfoCtx(ctx, "Round credit sweeper stop requested")
			c.cleanup()
			return nil
		default:
			if err := c.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			c.sleep(ctx, c.config.SweepInterval)
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (c *roundCrediter) cleanup() {
	c.mu.Lock()
	pool := c.pool
	c.pool = nil
	c.mu.Unlock()

	if pool != nil {
		pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (c *roundCrediter) Stop(ctx context.Context) error {
	if !c.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping round credit sweeper")
	close(c.stopChan)

	select {
	case <-c.stoppedCh:
		logger.InfoCtx(ctx, "Round credit sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Round credit sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// Enqueue schedules the credit of a freshly recorded purchase
func (c *roundCrediter) Enqueue(ctx context.Context, purchase *schema.Purchase) {
	if purchase == nil {
		return
	}

	task := creditTask{
		PurchaseID:  purchase.ID,
		TxHash:      purchase.TxHash,
		RoundNumber: purchase.RoundNumber,
		Tokens:      purchase.TokensPurchased,
	}
	if !c.submit(task) {
		logger.WarnCtx(ctx, "Round crediter busy or not running, purchase left for the sweep",
			zap.String("purchase_id", purchase.ID.String()))
	}
}

// runSweepCycle credits the purchases that were verified but never counted
func (c *roundCrediter) runSweepCycle(ctx context.Context) error {
	purchases, err := c.store.ListUncreditedPurchases(ctx, c.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list uncredited purchases: %w", err)
	}
	if len(purchases) == 0 {
		return nil
	}

	logger.InfoCtx(ctx, "Found uncredited purchases", zap.Int("count", len(purchases)))

	for _, p := range purchases {
		c.submit(creditTask{
			PurchaseID:  p.PurchaseID,
			TxHash:      p.TxHash,
			RoundNumber: p.RoundNumber,
			Tokens:      p.TokensPurchased,
		})
	}

	return nil
}

// submit hands task to the pool unless the same purchase is already being credited.
// It returns false when the pool is not running or turned the task away.
func (c *roundCrediter) submit(task creditTask) bool {
	c.mu.Lock()
	pool := c.pool
	ctx := c.ctx
	c.mu.Unlock()

	if pool == nil {
		return false
	}
	if _, loaded := c.inFlight.LoadOrStore(task.PurchaseID, struct{}{}); loaded {
		return true
	}

	submitted, ok := pool.TrySubmit(func() {
		defer c.inFlight.Delete(task.PurchaseID)

		if err := c.creditWithRetry(ctx, task); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to credit purchase, left for the sweep: %w", err),
				zap.String("purchase_id", task.PurchaseID.String()),
				zap.String("tx_hash", task.TxHash),
				zap.Int("round", task.RoundNumber),
			)
		}
	})
	if !ok {
		c.inFlight.Delete(task.PurchaseID)
		logger.Debug("Credit task not dispatched",
			zap.String("purchase_id", task.PurchaseID.String()),
			zap.Error(submitted.Wait()),
		)
		return false
	}
	return true
}

// creditWithRetry increments the round counter with exponential backoff retry
func (c *roundCrediter) creditWithRetry(ctx context.Context, task creditTask) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = c.config.RetryElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	backoffWithContext := backoff.WithContext(b, ctx)

	operation := func() error {
		applied, err := c.store.IncrementSoldTokens(ctx, task.PurchaseID, task.RoundNumber, task.Tokens)
		if err != nil {
			if errors.Is(err, domain.ErrRoundNotFound) || errors.Is(err, domain.ErrInvalidAmount) {
				return backoff.Permanent(err)
			}
			return err
		}

		if applied {
			logger.InfoCtx(ctx, "Purchase credited to round",
				zap.String("purchase_id", task.PurchaseID.String()),
				zap.Int("round", task.RoundNumber),
				zap.String("tokens", task.Tokens.String()),
			)
		} else {
			logger.DebugCtx(ctx, "Purchase already credited",
				zap.String("purchase_id", task.PurchaseID.String()))
		}
		return nil
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Round credit failed, retrying",
			zap.String("purchase_id", task.PurchaseID.String()),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return fmt.Errorf("failed after %d attempts: %w", attemptCount+1, err)
	}
	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
func (c *roundCrediter) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-c.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-c.stopChan:
		return false
	}
}
