package ebitenhost

import (
	"time"

	"github.com/sorauchi/squarefield/pkg/platform"
)

// IntervalScheduler implements platform.RepeatScheduler by running a
// time.Ticker on its own goroutine — the one genuine concurrent
// producer in the system: the 20ms FetchData timer.
type IntervalScheduler struct {
	clock platform.Clock
}

// NewIntervalScheduler binds an interval scheduler to a clock used to
// stamp each tick's nowMs.
func NewIntervalScheduler(clock platform.Clock) *IntervalScheduler {
	return &IntervalScheduler{clock: clock}
}

func (s *IntervalScheduler) Every(periodMs float64, fn func(nowMs float64)) platform.CancelFunc {
	ticker := time.NewTicker(time.Duration(periodMs * float64(time.Millisecond)))
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn(s.clock.NowMs())
			}
		}
	}()

	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
	}
}
