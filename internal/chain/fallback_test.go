package chain_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/chain"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/mocks"
)

const testTxHash = "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testFallbackMocks struct {
	primary   *mocks.MockChainReader
	secondary *mocks.MockChainReader
	reader    chain.Reader
}

func setupFallback(t *testing.T) *testFallbackMocks {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockChainReader(ctrl)
	secondary := mocks.NewMockChainReader(ctrl)

	return &testFallbackMocks{
		primary:   primary,
		secondary: secondary,
		reader:    chain.NewFallbackReader(primary, secondary),
	}
}

func TestFallbackReader_PrimarySuccess(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	expected := &chain.Transaction{Hash: testTxHash, ValueWei: big.NewInt(1), BlockNumber: 10}
	tm.primary.EXPECT().FetchTransaction(ctx, testTxHash).Return(expected, nil)

	tx, err := tm.reader.FetchTransaction(ctx, testTxHash)

	require.NoError(t, err)
	assert.Equal(t, expected, tx)
}

func TestFallbackReader_FallsBackOnTransientError(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	expected := &chain.Receipt{Status: domain.ReceiptStatusSuccess, BlockNumber: 10}
	tm.primary.EXPECT().FetchReceipt(ctx, testTxHash).Return(nil, errors.New("connection refused"))
	tm.secondary.EXPECT().FetchReceipt(ctx, testTxHash).Return(expected, nil)

	receipt, err := tm.reader.FetchReceipt(ctx, testTxHash)

	require.NoError(t, err)
	assert.Equal(t, expected, receipt)
}

func TestFallbackReader_NotFoundIsAuthoritative(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	tm.primary.EXPECT().FetchTransaction(ctx, testTxHash).Return(nil, domain.ErrTransactionNotFound)

	_, err := tm.reader.FetchTransaction(ctx, testTxHash)

	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestFallbackReader_PendingIsAuthoritative(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	tm.primary.EXPECT().FetchReceipt(ctx, testTxHash).Return(nil, domain.ErrReceiptPending)

	_, err := tm.reader.FetchReceipt(ctx, testTxHash)

	assert.ErrorIs(t, err, domain.ErrReceiptPending)
}

func TestFallbackReader_LatestBlock(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	tm.primary.EXPECT().LatestBlock(ctx).Return(uint64(0), errors.New("timeout"))
	tm.secondary.EXPECT().LatestBlock(ctx).Return(uint64(1234), nil)

	n, err := tm.reader.LatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1234), n)
}

func TestFallbackReader_BothFail(t *testing.T) {
	tm := setupFallback(t)
	ctx := context.Background()

	secondaryErr := errors.New("rate limited")
	tm.primary.EXPECT().LatestBlock(ctx).Return(uint64(0), errors.New("timeout"))
	tm.secondary.EXPECT().LatestBlock(ctx).Return(uint64(0), secondaryErr)

	_, err := tm.reader.LatestBlock(ctx)

	assert.ErrorIs(t, err, secondaryErr)
}

func TestFallbackReader_NoFallbackAfterCancel(t *testing.T) {
	tm := setupFallback(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm.primary.EXPECT().LatestBlock(ctx).Return(uint64(0), context.Canceled)

	_, err := tm.reader.LatestBlock(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFallbackReader_SingleReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockChainReader(ctrl)

	assert.Same(t, primary, chain.NewFallbackReader(primary, nil))
	assert.Same(t, primary, chain.NewFallbackReader(nil, primary))
}
