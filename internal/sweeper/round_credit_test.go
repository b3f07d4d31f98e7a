package sweeper_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/mocks"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
	"github.com/feral-file/ff-token-sale/internal/sweeper"
)

// testCrediterMocks contains all the mocks needed for testing the round crediter
type testCrediterMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	clock    *mocks.MockClock
	crediter sweeper.RoundCrediter
}

func setupTestCrediter(t *testing.T) *testCrediterMocks {
	return setupTestCrediterWithPool(t, 2, 10)
}

func setupTestCrediterWithPool(t *testing.T, poolSize, queueSize int) *testCrediterMocks {
	ctrl := gomock.NewController(t)

	tm := &testCrediterMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(20 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()

	tm.crediter = sweeper.NewRoundCrediter(sweeper.RoundCreditConfig{
		SweepInterval:   time.Minute,
		BatchSize:       10,
		RetryElapsed:    2 * time.Second,
		WorkerPoolSize:  poolSize,
		WorkerQueueSize: queueSize,
	}, tm.store, tm.clock)

	return tm
}

// start runs the crediter in the background and stops it when the test ends
func (tm *testCrediterMocks) start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tm.crediter.Start(ctx)
	}()
	t.Cleanup(func() {
		_ = tm.crediter.Stop(context.Background())
		cancel()
		<-done
	})
}

// startIdle starts the crediter with nothing left to sweep and waits for its loop to run
func (tm *testCrediterMocks) startIdle(t *testing.T) {
	started := make(chan struct{})
	var once atomic.Bool
	tm.store.EXPECT().
		ListUncreditedPurchases(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) ([]store.UncreditedPurchase, error) {
			if once.CompareAndSwap(false, true) {
				close(started)
			}
			return nil, nil
		}).AnyTimes()

	tm.start(t)
	<-started
}

func TestRoundCrediter_Name(t *testing.T) {
	tm := setupTestCrediter(t)
	assert.Equal(t, "round-credit-sweeper", tm.crediter.Name())
}

func TestRoundCrediter_EnqueueBeforeStart(t *testing.T) {
	tm := setupTestCrediter(t)

	// No store expectations: nothing may be credited
	tm.crediter.Enqueue(context.Background(), verifiedPurchase())
}

func TestRoundCrediter_EnqueueCredits(t *testing.T) {
	tm := setupTestCrediter(t)
	purchase := verifiedPurchase()
	credited := make(chan decimal.Decimal, 1)

	tm.store.EXPECT().
		IncrementSoldTokens(gomock.Any(), purchase.ID, 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int, delta decimal.Decimal) (bool, error) {
			credited <- delta
			return true, nil
		}).Times(1)

	tm.startIdle(t)
	tm.crediter.Enqueue(context.Background(), purchase)

	select {
	case delta := <-credited:
		assert.True(t, decimal.NewFromInt(9000).Equal(delta))
	case <-time.After(time.Second):
		t.Fatal("purchase was not credited")
	}
}

func TestRoundCrediter_RetriesTransientErrors(t *testing.T) {
	tm := setupTestCrediter(t)
	purchase := verifiedPurchase()
	var calls atomic.Int32

	tm.store.EXPECT().
		IncrementSoldTokens(gomock.Any(), purchase.ID, 1, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, int, decimal.Decimal) (bool, error) {
			if calls.Add(1) == 1 {
				return false, errors.New("could not serialize access")
			}
			return true, nil
		}).Times(2)

	tm.startIdle(t)
	tm.crediter.Enqueue(context.Background(), purchase)

	require.Eventually(t, func() bool {
		return calls.Load() == 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRoundCrediter_PermanentErrorIsNotRetried(t *testing.T) {
	tm := setupTestCrediter(t)
	purchase := verifiedPurchase()
	var calls atomic.Int32

	tm.store.EXPECT().
		IncrementSoldTokens(gomock.Any(), purchase.ID, 1, gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, int, decimal.Decimal) (bool, error) {
			calls.Add(1)
			return false, domain.ErrRoundNotFound
		}).Times(1)

	tm.startIdle(t)
	tm.crediter.Enqueue(context.Background(), purchase)

	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 20*time.Millisecond)

	// Give a retry the chance to show up
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRoundCrediter_SweepCreditsLeftovers(t *testing.T) {
	tm := setupTestCrediter(t)
	leftover := store.UncreditedPurchase{
		PurchaseID:      uuid.New(),
		TxHash:          testTxHash,
		RoundNumber:     2,
		TokensPurchased: decimal.NewFromInt(500),
		CreatedAt:       time.Now().Add(-time.Hour),
	}
	credited := make(chan struct{})

	gomock.InOrder(
		tm.store.EXPECT().ListUncreditedPurchases(gomock.Any(), 10).Return([]store.UncreditedPurchase{leftover}, nil),
		tm.store.EXPECT().ListUncreditedPurchases(gomock.Any(), 10).Return(nil, nil).AnyTimes(),
	)
	tm.store.EXPECT().
		IncrementSoldTokens(gomock.Any(), leftover.PurchaseID, 2, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int, delta decimal.Decimal) (bool, error) {
			assert.True(t, decimal.NewFromInt(500).Equal(delta))
			close(credited)
			return true, nil
		})

	tm.start(t)

	select {
	case <-credited:
	case <-time.After(time.Second):
		t.Fatal("leftover purchase was not credited")
	}
}

func TestRoundCrediter_SweepErrorKeepsRunning(t *testing.T) {
	tm := setupTestCrediter(t)
	var sweeps atomic.Int32

	tm.store.EXPECT().
		ListUncreditedPurchases(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) ([]store.UncreditedPurchase, error) {
			sweeps.Add(1)
			return nil, errors.New("connection refused")
		}).MinTimes(2)

	tm.start(t)

	require.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestRoundCrediter_StopBeforeStart(t *testing.T) {
	tm := setupTestCrediter(t)
	assert.NoError(t, tm.crediter.Stop(context.Background()))
}

func TestRoundCrediter_DoubleStart(t *testing.T) {
	tm := setupTestCrediter(t)
	tm.startIdle(t)

	err := tm.crediter.Start(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestRoundCrediter_EnqueueDoesNotBlockOnBusyPool(t *testing.T) {
	tm := setupTestCrediterWithPool(t, 1, 1)
	release := make(chan struct{})
	var releaseOnce sync.Once
	var released, listed atomic.Bool
	started := make(chan struct{})

	purchases := []*schema.Purchase{verifiedPurchase(), verifiedPurchase(), verifiedPurchase()}

	var mu sync.Mutex
	credited := make(map[uuid.UUID]bool)

	tm.store.EXPECT().
		ListUncreditedPurchases(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) ([]store.UncreditedPurchase, error) {
			if listed.CompareAndSwap(false, true) {
				close(started)
			}
			if !released.Load() {
				return nil, nil
			}
			mu.Lock()
			defer mu.Unlock()
			var left []store.UncreditedPurchase
			for _, p := range purchases {
				if !credited[p.ID] {
					left = append(left, store.UncreditedPurchase{
						PurchaseID:      p.ID,
						TxHash:          p.TxHash,
						RoundNumber:     p.RoundNumber,
						TokensPurchased: p.TokensPurchased,
					})
				}
			}
			return left, nil
		}).AnyTimes()
	tm.store.EXPECT().
		IncrementSoldTokens(gomock.Any(), gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ int, _ decimal.Decimal) (bool, error) {
			<-release
			mu.Lock()
			defer mu.Unlock()
			applied := !credited[id]
			credited[id] = true
			return applied, nil
		}).AnyTimes()

	tm.start(t)
	t.Cleanup(func() { releaseOnce.Do(func() { close(release) }) })
	<-started

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, p := range purchases {
			tm.crediter.Enqueue(context.Background(), p)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue waited for a free worker")
	}

	// Purchases the pool turned away are picked up by the sweep
	released.Store(true)
	releaseOnce.Do(func() { close(release) })

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(credited) == len(purchases)
	}, 2*time.Second, 10*time.Millisecond)
}
