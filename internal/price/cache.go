package price

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-token-sale/internal/adapter"
)

// CachedOracle memoises upstream quotes for a TTL. Estimated quotes are never
// cached so the next call tries the upstream sources again.
type CachedOracle struct {
	next  Oracle
	ttl   time.Duration
	clock adapter.Clock

	group singleflight.Group

	mu     sync.RWMutex
	cached *Quote
}

// NewCachedOracle wraps next with a TTL cache
func NewCachedOracle(next Oracle, ttl time.Duration, clock adapter.Clock) *CachedOracle {
	return &CachedOracle{next: next, ttl: ttl, clock: clock}
}

// CurrentEthUsdPrice returns the cached quote while it is fresh
func (o *CachedOracle) CurrentEthUsdPrice(ctx context.Context) (Quote, error) {
	o.mu.RLock()
	cached := o.cached
	o.mu.RUnlock()

	if cached != nil && o.clock.Since(cached.FetchedAt) < o.ttl {
		return *cached, nil
	}

	v, err, _ := o.group.Do("eth_usd", func() (interface{}, error) {
		return o.next.CurrentEthUsdPrice(ctx)
	})
	if err != nil {
		return Quote{}, err
	}
	quote := v.(Quote)

	if !quote.Estimated {
		o.mu.Lock()
		o.cached = &quote
		o.mu.Unlock()
	}

	return quote, nil
}
