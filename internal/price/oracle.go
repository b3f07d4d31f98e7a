package price

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// Quote is an ETH/USD rate together with where it came from
type Quote struct {
	Price     decimal.Decimal
	Source    domain.PriceSource
	Provider  string
	Estimated bool
	FetchedAt time.Time
}

// Oracle supplies the current ETH/USD rate
//
//go:generate mockgen -source=oracle.go -destination=../mocks/price_oracle.go -package=mocks -mock_names=Oracle=MockPriceOracle,Source=MockPriceSource
type Oracle interface {
	// CurrentEthUsdPrice returns a current rate. It only fails when no rate,
	// not even the fallback constant, can be produced.
	CurrentEthUsdPrice(ctx context.Context) (Quote, error)
}

// Source is one upstream price API
type Source interface {
	Name() string
	FetchEthUsd(ctx context.Context) (decimal.Decimal, error)
}
