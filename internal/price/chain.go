package price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
)

// ChainConfig holds the limits applied to upstream quotes
type ChainConfig struct {
	// MaxSaneUSD rejects quotes at or above this value
	MaxSaneUSD decimal.Decimal
	// FallbackUSD is returned, flagged as estimated, when every source fails.
	// Zero disables the fallback.
	FallbackUSD decimal.Decimal
	// SourceTimeout bounds each upstream call
	SourceTimeout time.Duration
}

// ChainOracle asks each source in order and returns the first sane quote
type ChainOracle struct {
	sources []Source
	config  ChainConfig
	clock   adapter.Clock
}

// NewChainOracle creates an oracle over sources in priority order
func NewChainOracle(sources []Source, config ChainConfig, clock adapter.Clock) *ChainOracle {
	return &ChainOracle{sources: sources, config: config, clock: clock}
}

// CurrentEthUsdPrice returns the first sane upstream quote or the fallback constant
func (o *ChainOracle) CurrentEthUsdPrice(ctx context.Context) (Quote, error) {
	var errs []error
	for _, source := range o.sources {
		price, err := o.fetch(ctx, source)
		if err == nil {
			return Quote{
				Price:     price,
				Source:    domain.PriceSourceOracle,
				Provider:  source.Name(),
				FetchedAt: o.clock.Now(),
			}, nil
		}

		logger.WarnCtx(ctx, "Price source failed", zap.String("source", source.Name()), zap.Error(err))
		errs = append(errs, err)

		if ctx.Err() != nil {
			return Quote{}, ctx.Err()
		}
	}

	if !o.config.FallbackUSD.IsPositive() {
		return Quote{}, fmt.Errorf("%w: %w", domain.ErrPriceUnavailable, errors.Join(errs...))
	}

	logger.WarnCtx(ctx, "All price sources failed, using fallback price",
		zap.String("fallback_usd", o.config.FallbackUSD.String()))

	return Quote{
		Price:     o.config.FallbackUSD,
		Source:    domain.PriceSourceFallback,
		Provider:  string(domain.PriceSourceFallback),
		Estimated: true,
		FetchedAt: o.clock.Now(),
	}, nil
}

func (o *ChainOracle) fetch(ctx context.Context, source Source) (decimal.Decimal, error) {
	if o.config.SourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.SourceTimeout)
		defer cancel()
	}

	price, err := source.FetchEthUsd(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if !price.IsPositive() || (o.config.MaxSaneUSD.IsPositive() && price.GreaterThanOrEqual(o.config.MaxSaneUSD)) {
		return decimal.Zero, fmt.Errorf("%s returned implausible price %s", source.Name(), price.String())
	}

	return price, nil
}
