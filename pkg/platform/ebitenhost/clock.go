package ebitenhost

import "github.com/sorauchi/squarefield/pkg/clock"

// Clock re-exports pkg/clock.MonotonicClock: ebiten has no clock
// primitive of its own, so the host binding is just the generic one.
type Clock = clock.MonotonicClock

// NewClock constructs the host's monotonic clock.
func NewClock() *Clock {
	return clock.New()
}
