package block_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-token-sale/internal/block"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testHeadProviderMocks contains all the mocks needed for testing the head provider
type testHeadProviderMocks struct {
	ctrl     *gomock.Controller
	fetcher  *mocks.MockBlockFetcher
	clock    *mocks.MockClock
	provider block.HeadProvider
}

// setupTest creates all the mocks and head provider for testing
func setupTest(t *testing.T) *testHeadProviderMocks {
	ctrl := gomock.NewController(t)

	mockFetcher := mocks.NewMockBlockFetcher(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	provider := block.NewHeadProvider(mockFetcher, block.Config{
		TTL:         10 * time.Second,
		StaleWindow: 2 * time.Minute,
	}, mockClock)

	return &testHeadProviderMocks{
		ctrl:     ctrl,
		fetcher:  mockFetcher,
		clock:    mockClock,
		provider: provider,
	}
}

func TestHeadProvider_GetLatestBlock_FirstFetch(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum)
}

func TestHeadProvider_GetLatestBlock_UsesCache_WithinTTL(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	blockNum1, err1 := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err1)
	assert.Equal(t, uint64(1000), blockNum1)

	// Within TTL, the fetcher must not be called again
	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Second))

	blockNum2, err2 := tm.provider.GetLatestBlock(ctx)

	assert.NoError(t, err2)
	assert.Equal(t, uint64(1000), blockNum2)
}

func TestHeadProvider_GetLatestBlock_RefreshesCache_AfterTTL(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(15 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1001), nil)

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1001), blockNum)
}

func TestHeadProvider_GetLatestBlock_NeverMovesBackwards(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	// A lagging backend reports an older head
	tm.clock.EXPECT().Now().Return(now.Add(15 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(998), nil)

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum)
}

func TestHeadProvider_GetLatestBlock_UsesStaleCacheOnError_WithinStaleWindow(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	// Beyond TTL but within StaleWindow
	tm.clock.EXPECT().Now().Return(now.Add(30 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("network error"))

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), blockNum)
}

func TestHeadProvider_GetLatestBlock_ReturnsError_WhenNoCache_AndFetchFails(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	fetchError := errors.New("network error")
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), fetchError)

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.ErrorIs(t, err, fetchError)
	assert.Equal(t, uint64(0), blockNum)
	assert.Contains(t, err.Error(), "failed to fetch latest block and no valid cache available")
}

func TestHeadProvider_GetLatestBlock_ReturnsError_WhenStaleCache_BeyondStaleWindow(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Minute))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("network error"))

	blockNum, err := tm.provider.GetLatestBlock(ctx)

	assert.Error(t, err)
	assert.Equal(t, uint64(0), blockNum)
}

func TestHeadProvider_Confirmations(t *testing.T) {
	tests := []struct {
		name     string
		latest   uint64
		txBlock  uint64
		expected uint64
	}{
		{name: "three blocks on top", latest: 1003, txBlock: 1000, expected: 3},
		{name: "same block", latest: 1000, txBlock: 1000, expected: 0},
		{name: "head behind receipt", latest: 999, txBlock: 1000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			ctx := context.Background()

			tm.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(tt.latest, nil)

			confirmations, err := tm.provider.Confirmations(ctx, tt.txBlock)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, confirmations)
		})
	}
}

func TestHeadProvider_Confirmations_PropagatesError(t *testing.T) {
	tm := setupTest(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("rpc down"))

	_, err := tm.provider.Confirmations(ctx, 10)
	assert.Error(t, err)
}

func TestFetcherFunc(t *testing.T) {
	f := block.FetcherFunc(func(ctx context.Context) (uint64, error) {
		return 42, nil
	})

	n, err := f.FetchLatestBlock(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), n)
}

func TestHeadProvider_ConcurrentAccess(t *testing.T) {
	tm := setupTest(t)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil).AnyTimes()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blockNum, err := tm.provider.GetLatestBlock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1000), blockNum)
		}()
	}
	wg.Wait()
}
