package price_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/mocks"
	"github.com/feral-file/ff-token-sale/internal/price"
)

type testChainMocks struct {
	first  *mocks.MockPriceSource
	second *mocks.MockPriceSource
	clock  *mocks.MockClock
	oracle *price.ChainOracle
	now    time.Time
}

func setupChain(t *testing.T, fallback decimal.Decimal) *testChainMocks {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockPriceSource(ctrl)
	second := mocks.NewMockPriceSource(ctrl)
	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first.EXPECT().Name().Return("first").AnyTimes()
	second.EXPECT().Name().Return("second").AnyTimes()
	clock.EXPECT().Now().Return(now).AnyTimes()

	return &testChainMocks{
		first:  first,
		second: second,
		clock:  clock,
		now:    now,
		oracle: price.NewChainOracle([]price.Source{first, second}, price.ChainConfig{
			MaxSaneUSD:  decimal.NewFromInt(10000),
			FallbackUSD: fallback,
		}, clock),
	}
}

func TestChainOracle_FirstSourceWins(t *testing.T) {
	tm := setupChain(t, decimal.NewFromInt(3500))

	tm.first.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.RequireFromString("3421.5"), nil)

	quote, err := tm.oracle.CurrentEthUsdPrice(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3421.5", quote.Price.String())
	assert.Equal(t, domain.PriceSourceOracle, quote.Source)
	assert.Equal(t, "first", quote.Provider)
	assert.False(t, quote.Estimated)
	assert.Equal(t, tm.now, quote.FetchedAt)
}

func TestChainOracle_SkipsFailingAndInsaneSources(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		err   error
	}{
		{name: "error", err: errors.New("timeout")},
		{name: "zero", price: decimal.Zero},
		{name: "negative", price: decimal.NewFromInt(-1)},
		{name: "at sanity bound", price: decimal.NewFromInt(10000)},
		{name: "above sanity bound", price: decimal.NewFromInt(35000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupChain(t, decimal.NewFromInt(3500))

			tm.first.EXPECT().FetchEthUsd(gomock.Any()).Return(tt.price, tt.err)
			tm.second.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.NewFromInt(3400), nil)

			quote, err := tm.oracle.CurrentEthUsdPrice(context.Background())

			require.NoError(t, err)
			assert.Equal(t, "second", quote.Provider)
			assert.Equal(t, "3400", quote.Price.String())
		})
	}
}

func TestChainOracle_FallbackIsEstimated(t *testing.T) {
	tm := setupChain(t, decimal.NewFromInt(3500))

	tm.first.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.Zero, errors.New("down"))
	tm.second.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.Zero, errors.New("down"))

	quote, err := tm.oracle.CurrentEthUsdPrice(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3500", quote.Price.String())
	assert.Equal(t, domain.PriceSourceFallback, quote.Source)
	assert.True(t, quote.Estimated)
}

func TestChainOracle_NoFallbackConfigured(t *testing.T) {
	tm := setupChain(t, decimal.Zero)

	tm.first.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.Zero, errors.New("down"))
	tm.second.EXPECT().FetchEthUsd(gomock.Any()).Return(decimal.Zero, errors.New("down"))

	_, err := tm.oracle.CurrentEthUsdPrice(context.Background())

	assert.ErrorIs(t, err, domain.ErrPriceUnavailable)
	assert.True(t, domain.IsRetryable(err))
}
