package price

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-sale/internal/adapter"
)

// httpSource fetches a JSON document and extracts the rate from it
type httpSource[T any] struct {
	name    string
	url     string
	client  adapter.HTTPClient
	extract func(T) decimal.Decimal
}

func (s *httpSource[T]) Name() string {
	return s.name
}

func (s *httpSource[T]) FetchEthUsd(ctx context.Context) (decimal.Decimal, error) {
	var body T
	if err := s.client.Get(ctx, s.url, &body); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", s.name, err)
	}
	return s.extract(body), nil
}

type coinGeckoResponse struct {
	Ethereum struct {
		USD decimal.Decimal `json:"usd"`
	} `json:"ethereum"`
}

// NewCoinGeckoSource reads {"ethereum":{"usd":<price>}}
func NewCoinGeckoSource(url string, client adapter.HTTPClient) Source {
	return &httpSource[coinGeckoResponse]{
		name:    "coingecko",
		url:     url,
		client:  client,
		extract: func(r coinGeckoResponse) decimal.Decimal { return r.Ethereum.USD },
	}
}

type cryptoCompareResponse struct {
	USD decimal.Decimal `json:"USD"`
}

// NewCryptoCompareSource reads {"USD":<price>}
func NewCryptoCompareSource(url string, client adapter.HTTPClient) Source {
	return &httpSource[cryptoCompareResponse]{
		name:    "cryptocompare",
		url:     url,
		client:  client,
		extract: func(r cryptoCompareResponse) decimal.Decimal { return r.USD },
	}
}

type binanceResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// NewBinanceSource reads {"symbol":"ETHUSDT","price":"<price>"}
func NewBinanceSource(url string, client adapter.HTTPClient) Source {
	return &httpSource[binanceResponse]{
		name:    "binance",
		url:     url,
		client:  client,
		extract: func(r binanceResponse) decimal.Decimal { return r.Price },
	}
}

type coinCapResponse struct {
	Data struct {
		PriceUSD decimal.Decimal `json:"priceUsd"`
	} `json:"data"`
}

// NewCoinCapSource reads {"data":{"priceUsd":"<price>"}}
func NewCoinCapSource(url string, client adapter.HTTPClient) Source {
	return &httpSource[coinCapResponse]{
		name:    "coincap",
		url:     url,
		client:  client,
		extract: func(r coinCapResponse) decimal.Decimal { return r.Data.PriceUSD },
	}
}
