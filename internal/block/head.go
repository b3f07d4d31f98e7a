package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/logger"
)

// headInfo is the cached chain head
type headInfo struct {
	Number    uint64
	FetchedAt time.Time
}

// HeadProvider provides cached access to the chain head of one payment network.
// Confirmation depth checks run on every verification attempt, so the latest
// block number is cached for a short TTL instead of being fetched per attempt.
//
//go:generate mockgen -source=head.go -destination=../mocks/block_head_provider.go -package=mocks -mock_names=HeadProvider=MockHeadProvider,BlockFetcher=MockBlockFetcher
type HeadProvider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Confirmations returns how many blocks were mined on top of blockNumber
	Confirmations(ctx context.Context, blockNumber uint64) (uint64, error)
}

// BlockFetcher is the interface for fetching the latest block from the blockchain
type BlockFetcher interface {
	// FetchLatestBlock fetches the latest block from the blockchain
	FetchLatestBlock(ctx context.Context) (uint64, error)
}

// FetcherFunc adapts a function to BlockFetcher
type FetcherFunc func(ctx context.Context) (uint64, error)

// FetchLatestBlock calls f(ctx)
func (f FetcherFunc) FetchLatestBlock(ctx context.Context) (uint64, error) {
	return f(ctx)
}

// Config holds configuration for the HeadProvider
type Config struct {
	// TTL is how long to cache the block number
	TTL time.Duration

	// StaleWindow is how long to use stale data if fetching fails
	// If the cached data is older than this and fetch fails, return error
	StaleWindow time.Duration
}

type headProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	group singleflight.Group

	mu   sync.RWMutex
	head *headInfo
}

// NewHeadProvider creates a new HeadProvider with caching
func NewHeadProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) HeadProvider {
	return &headProvider{
		fetcher: fetcher,
		config:  config,
		clock:   clock,
	}
}

// GetLatestBlock returns the latest block number, using cache if valid.
// The returned number never moves backwards, a lagging backend cannot undo confirmations.
func (p *headProvider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.FetchedAt) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached block number", zap.Uint64("block_number", cached.Number))
		return cached.Number, nil
	}

	// Concurrent verifications share a single in-flight fetch
	v, err, _ := p.group.Do("latest", func() (interface{}, error) {
		logger.DebugCtx(ctx, "Fetching latest block number from chain reader")
		return p.fetcher.FetchLatestBlock(ctx)
	})
	if err != nil {
		if cached != nil && now.Sub(cached.FetchedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale block number", zap.Uint64("block_number", cached.Number))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block and no valid cache available: %w", err)
	}
	blockNumber := v.(uint64)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.head != nil && p.head.Number > blockNumber {
		logger.DebugCtx(ctx, "Chain reader returned an older head, keeping cached one",
			zap.Uint64("fetched", blockNumber),
			zap.Uint64("cached", p.head.Number))
		blockNumber = p.head.Number
	}
	p.head = &headInfo{
		Number:    blockNumber,
		FetchedAt: now,
	}

	return blockNumber, nil
}

// Confirmations returns latest - blockNumber, or zero when the head has not reached blockNumber yet
func (p *headProvider) Confirmations(ctx context.Context, blockNumber uint64) (uint64, error) {
	latest, err := p.GetLatestBlock(ctx)
	if err != nil {
		return 0, err
	}
	if latest <= blockNumber {
		return 0, nil
	}
	return latest - blockNumber, nil
}
