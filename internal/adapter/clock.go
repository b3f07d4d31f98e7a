package adapter

import "time"

// Clock is the time source of the scheduler, the crediter and the caches.
// Tests drive it with mocks.MockClock to move purchases past their grace and expiry windows.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current wall time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// After fires once after d, used between sweeps
	After(d time.Duration) <-chan time.Time
}

type wallClock struct{}

// NewClock returns the system clock
func NewClock() Clock {
	return wallClock{}
}

func (wallClock) Now() time.Time {
	return time.Now()
}

func (wallClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (wallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
