package sweeper

import (
	"context"

	"github.com/alitto/pond/v2"
)

// Sweeper is a background loop owned by cmd/api: the retry scheduler and the round crediter
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the loop until ctx is canceled or Stop is called.
	// It returns an error when the sweeper is already running.
	Start(ctx context.Context) error

	// Stop signals the loop and waits, bounded by ctx, for in-flight
	// verification attempts or credit tasks to drain
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}

// newWorkerPool builds a pool that turns tasks away once its queue is full
func newWorkerPool(ctx context.Context, size, queueSize int) pond.Pool {
	return pond.NewPool(
		size,
		pond.WithQueueSize(queueSize),
		pond.WithNonBlocking(true),
		pond.WithContext(ctx),
	)
}
