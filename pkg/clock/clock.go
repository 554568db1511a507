// Package clock provides the engine's monotonic millisecond time source.
package clock

import "time"

// MonotonicClock reports elapsed milliseconds since it was constructed,
// backed by time.Now()'s monotonic reading.
type MonotonicClock struct {
	epoch time.Time
}

// New returns a clock whose NowMs() starts at 0 from this instant.
func New() *MonotonicClock {
	return &MonotonicClock{epoch: time.Now()}
}

// NowMs returns milliseconds elapsed since New was called.
func (c *MonotonicClock) NowMs() float64 {
	return float64(time.Since(c.epoch)) / float64(time.Millisecond)
}
