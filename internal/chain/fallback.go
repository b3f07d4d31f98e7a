package chain

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
)

// fallbackReader queries the primary reader and only consults the secondary when
// the primary fails transiently. A NotFound or Pending answer from a healthy
// primary is authoritative.
type fallbackReader struct {
	primary   Reader
	secondary Reader
}

// NewFallbackReader creates a Reader that uses primary first and secondary on transient errors.
// A nil secondary yields primary unchanged.
func NewFallbackReader(primary, secondary Reader) Reader {
	if secondary == nil {
		return primary
	}
	if primary == nil {
		return secondary
	}
	return &fallbackReader{primary: primary, secondary: secondary}
}

func (r *fallbackReader) FetchTransaction(ctx context.Context, txHash string) (*Transaction, error) {
	tx, err := r.primary.FetchTransaction(ctx, txHash)
	if !shouldFallback(ctx, err) {
		return tx, err
	}

	logger.WarnCtx(ctx, "Primary chain reader failed, falling back", zap.String("op", "FetchTransaction"), zap.Error(err))
	return r.secondary.FetchTransaction(ctx, txHash)
}

func (r *fallbackReader) FetchReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	receipt, err := r.primary.FetchReceipt(ctx, txHash)
	if !shouldFallback(ctx, err) {
		return receipt, err
	}

	logger.WarnCtx(ctx, "Primary chain reader failed, falling back", zap.String("op", "FetchReceipt"), zap.Error(err))
	return r.secondary.FetchReceipt(ctx, txHash)
}

func (r *fallbackReader) LatestBlock(ctx context.Context) (uint64, error) {
	number, err := r.primary.LatestBlock(ctx)
	if !shouldFallback(ctx, err) {
		return number, err
	}

	logger.WarnCtx(ctx, "Primary chain reader failed, falling back", zap.String("op", "LatestBlock"), zap.Error(err))
	return r.secondary.LatestBlock(ctx)
}

func shouldFallback(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, domain.ErrTransactionNotFound) && !errors.Is(err, domain.ErrReceiptPending)
}
