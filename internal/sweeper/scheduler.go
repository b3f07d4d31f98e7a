package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/messaging"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
	"github.com/feral-file/ff-token-sale/internal/verifier"
)

// ErrSchedulerNotRunning is returned when a transaction is submitted before Start or after Stop
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// SchedulerConfig holds configuration for the retry scheduler
type SchedulerConfig struct {
	SweepInterval   time.Duration // Time to sleep between sweep cycles
	MinAge          time.Duration // Tracked hashes younger than this are not retried by the sweep
	MaxAge          time.Duration // Tracked hashes older than this are dropped as expired
	NotFoundGrace   time.Duration // How long an unknown hash is given to reach the mempool
	AttemptTimeout  time.Duration // Deadline of a single verification attempt
	OutcomeTTL      time.Duration // How long terminal outcomes stay queryable
	OutcomeSize     int           // Maximum number of terminal outcomes kept
	WorkerPoolSize  int           // Concurrent verification attempts
	WorkerQueueSize int           // Attempts waiting for a worker
}

// TrackedStatus is the scheduler's view of one submitted transaction
type TrackedStatus struct {
	TxHash       string
	Chain        domain.Chain
	BuyerAddress string
	RoundNumber  int
	State        domain.VerificationState
	Reason       string
	LastError    string
	Attempts     int
	PurchaseID   string
	SubmittedAt  time.Time
	UpdatedAt    time.Time
}

// Scheduler tracks submitted transactions and retries their verification until
// they are verified, rejected or expired
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -aux_files=github.com/feral-file/ff-token-sale/internal/sweeper=sweeper.go -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	Sweeper

	// Submit starts tracking a transaction and dispatches its first attempt.
	// It returns immediately; submitting a hash that is already known is a no-op.
	Submit(ctx context.Context, req verifier.Request) error

	// Status returns the tracked or recently finished state of a transaction
	Status(txHash string) (*TrackedStatus, bool)

	// Ready is closed once Start accepts submissions
	Ready() <-chan struct{}
}

type trackedTx struct {
	req      verifier.Request
	status   TrackedStatus
	inFlight bool
}

type scheduler struct {
	config    SchedulerConfig
	verifier  verifier.Verifier
	publisher messaging.Publisher
	clock     adapter.Clock

	mu       sync.Mutex
	tracked  map[string]*trackedTx
	outcomes *expirable.LRU[string, TrackedStatus]
	pool     pond.Pool
	ctx      context.Context

	running   atomic.Bool
	readyCh   chan struct{}
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduler creates a new retry scheduler
func NewScheduler(
	config SchedulerConfig,
	v verifier.Verifier,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Scheduler {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.OutcomeSize <= 0 {
		config.OutcomeSize = 1000
	}
	if config.AttemptTimeout <= 0 {
		config.AttemptTimeout = time.Minute
	}

	return &scheduler{
		config:    config,
		verifier:  v,
		publisher: publisher,
		clock:     clock,
		tracked:   make(map[string]*trackedTx),
		outcomes:  expirable.NewLRU[string, TrackedStatus](config.OutcomeSize, nil, config.OutcomeTTL),
		readyCh:   make(chan struct{}),
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *scheduler) Name() string {
	return "retry-scheduler"
}

// Start runs the sweep loop until the context is canceled or Stop is called
func (s *scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting retry scheduler",
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Duration("min_age", s.config.MinAge),
		zap.Duration("max_age", s.config.MaxAge),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.mu.Lock()
	s.ctx = ctx
	s.pool = newWorkerPool(ctx, s.config.WorkerPoolSize, s.config.WorkerQueueSize)
	s.mu.Unlock()
	close(s.readyCh)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Retry scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Retry scheduler stop requested")
			s.cleanup()
			return nil
		default:
			s.sweep()
			s.sleep(ctx, s.config.SweepInterval)
		}
	}
}

// cleanup stops accepting submissions and waits for in-flight attempts
func (s *scheduler) cleanup() {
	s.mu.Lock()
	pool := s.pool
	s.pool = nil
	s.mu.Unlock()

	if pool != nil {
		pool.StopAndWait()
	}
}

// Ready returns a channel closed once the worker pool is up
func (s *scheduler) Ready() <-chan struct{} {
	return s.readyCh
}

// Stop gracefully stops the scheduler with timeout support
func (s *scheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping retry scheduler")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Retry scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Retry scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// Submit starts tracking req and dispatches an immediate attempt
func (s *scheduler) Submit(ctx context.Context, req verifier.Request) error {
	txHash, err := domain.NormalizeTxHash(req.TxHash)
	if err != nil {
		return err
	}
	buyer, err := domain.NormalizeAddress(req.BuyerAddress)
	if err != nil {
		return err
	}
	if !req.ClaimedUSD.IsPositive() {
		return domain.ErrInvalidAmount
	}
	req.TxHash = txHash
	req.BuyerAddress = buyer

	now := s.clock.Now()

	s.mu.Lock()
	if s.pool == nil {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	if _, ok := s.tracked[txHash]; ok {
		s.mu.Unlock()
		logger.DebugCtx(ctx, "Transaction already tracked", zap.String("tx_hash", txHash))
		return nil
	}
	if _, ok := s.outcomes.Get(txHash); ok {
		s.mu.Unlock()
		logger.DebugCtx(ctx, "Transaction already has an outcome", zap.String("tx_hash", txHash))
		return nil
	}

	entry := &trackedTx{
		req: req,
		status: TrackedStatus{
			TxHash:       txHash,
			Chain:        req.Chain,
			BuyerAddress: buyer,
			RoundNumber:  req.RoundNumber,
			State:        domain.VerificationStateSubmitted,
			SubmittedAt:  now,
			UpdatedAt:    now,
		},
		inFlight: true,
	}
	s.tracked[txHash] = entry
	status := entry.status
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Transaction submitted for verification",
		zap.String("tx_hash", txHash),
		zap.String("buyer", buyer),
		zap.Int("round", req.RoundNumber),
	)
	s.publish(status, nil)
	s.dispatch(txHash)

	return nil
}

// Status returns the state of txHash, tracked entries first
func (s *scheduler) Status(txHash string) (*TrackedStatus, bool) {
	if normalized, err := domain.NormalizeTxHash(txHash); err == nil {
		txHash = normalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.tracked[txHash]; ok {
		status := entry.status
		return &status, true
	}
	if status, ok := s.outcomes.Get(txHash); ok {
		return &status, true
	}
	return nil, false
}

// sweep expires old entries and dispatches an attempt for every due entry
func (s *scheduler) sweep() {
	now := s.clock.Now()

	var (
		due     []string
		expired []TrackedStatus
	)

	s.mu.Lock()
	for txHash, entry := range s.tracked {
		age := now.Sub(entry.status.SubmittedAt)
		switch {
		case age > s.config.MaxAge:
			delete(s.tracked, txHash)
			entry.status.State = domain.VerificationStateExpired
			entry.status.Reason = "verification window elapsed"
			entry.status.UpdatedAt = now
			s.outcomes.Add(txHash, entry.status)
			expired = append(expired, entry.status)
		case entry.inFlight, age < s.config.MinAge:
			continue
		default:
			entry.inFlight = true
			due = append(due, txHash)
		}
	}
	tracked := len(s.tracked)
	s.mu.Unlock()

	for _, status := range expired {
		logger.Warn("Transaction verification expired",
			zap.String("tx_hash", status.TxHash),
			zap.Int("attempts", status.Attempts),
			zap.String("last_error", status.LastError),
		)
		s.publish(status, nil)
	}

	for _, txHash := range due {
		s.dispatch(txHash)
	}

	if len(due) > 0 || len(expired) > 0 {
		logger.Debug("Sweep cycle completed",
			zap.Int("tracked", tracked),
			zap.Int("dispatched", len(due)),
			zap.Int("expired", len(expired)),
		)
	}
}

// dispatch submits one attempt for txHash to the worker pool
func (s *scheduler) dispatch(txHash string) {
	s.mu.Lock()
	pool := s.pool
	s.mu.Unlock()

	if pool == nil {
		s.releaseInFlight(txHash)
		return
	}

	task, ok := pool.TrySubmit(func() {
		s.attempt(txHash)
	})
	if !ok {
		// Left tracked; the next sweep dispatches it again
		logger.Warn("Verification attempt not dispatched",
			zap.String("tx_hash", txHash),
			zap.Error(task.Wait()),
		)
		s.releaseInFlight(txHash)
	}
}

// attempt runs one verification and applies its outcome
func (s *scheduler) attempt(txHash string) {
	s.mu.Lock()
	entry, ok := s.tracked[txHash]
	if !ok {
		s.mu.Unlock()
		return
	}
	entry.status.Attempts++
	req := entry.req
	baseCtx := s.ctx
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(baseCtx, s.config.AttemptTimeout)
	defer cancel()

	purchase, err := s.verifier.Verify(ctx, req)
	s.handleOutcome(txHash, purchase, err)
}

// handleOutcome moves the entry to its next state
func (s *scheduler) handleOutcome(txHash string, purchase *schema.Purchase, err error) {
	now := s.clock.Now()

	s.mu.Lock()
	entry, ok := s.tracked[txHash]
	if !ok {
		// Expired while the attempt was running; a payment that made it into
		// the ledger is still reported as verified
		if err != nil {
			s.mu.Unlock()
			return
		}
		status, found := s.outcomes.Get(txHash)
		if !found {
			status = TrackedStatus{TxHash: txHash, SubmittedAt: now}
		}
		status.State = domain.VerificationStateVerified
		status.Reason = ""
		status.PurchaseID = purchase.ID.String()
		status.UpdatedAt = now
		s.outcomes.Add(txHash, status)
		s.mu.Unlock()

		s.publish(status, purchase)
		return
	}

	entry.inFlight = false
	entry.status.UpdatedAt = now
	age := now.Sub(entry.status.SubmittedAt)

	switch {
	case err == nil:
		entry.status.State = domain.VerificationStateVerified
		entry.status.PurchaseID = purchase.ID.String()
		entry.status.LastError = ""
	case domain.IsPermanent(err):
		entry.status.State = domain.VerificationStateFailed
		entry.status.Reason = err.Error()
	case errors.Is(err, domain.ErrTransactionNotFound) && age > s.config.NotFoundGrace:
		entry.status.State = domain.VerificationStateFailed
		entry.status.Reason = fmt.Sprintf("%s after %s", domain.ErrTransactionNotFound.Error(), s.config.NotFoundGrace)
	default:
		entry.status.LastError = err.Error()
		s.mu.Unlock()
		return
	}

	delete(s.tracked, txHash)
	s.outcomes.Add(txHash, entry.status)
	status := entry.status
	s.mu.Unlock()

	s.publish(status, purchase)
}

// releaseInFlight lets the next sweep retry an entry whose attempt could not be dispatched
func (s *scheduler) releaseInFlight(txHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.tracked[txHash]; ok {
		entry.inFlight = false
	}
}

// publish emits a status event; failures are logged and otherwise ignored
func (s *scheduler) publish(status TrackedStatus, purchase *schema.Purchase) {
	event := &messaging.PurchaseStatusEvent{
		ID:           ulid.MustNewDefault(s.clock.Now()).String(),
		TxHash:       status.TxHash,
		Chain:        status.Chain,
		BuyerAddress: status.BuyerAddress,
		RoundNumber:  status.RoundNumber,
		State:        status.State,
		Reason:       status.Reason,
		Attempts:     status.Attempts,
		PurchaseID:   status.PurchaseID,
		OccurredAt:   status.UpdatedAt,
	}
	if purchase != nil {
		event.TokensPurchased = purchase.TokensPurchased.String()
	}

	ctx := context.Background()
	s.mu.Lock()
	if s.ctx != nil {
		ctx = s.ctx
	}
	s.mu.Unlock()

	if err := s.publisher.PublishPurchaseStatus(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish purchase status",
			zap.String("tx_hash", status.TxHash),
			zap.String("state", string(status.State)),
			zap.Error(err),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (s *scheduler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
