package clock

import (
	"testing"
	"time"
)

func TestNowMsIsMonotonicNonNegative(t *testing.T) {
	c := New()
	first := c.NowMs()
	if first < 0 {
		t.Fatalf("NowMs() = %v, want >= 0", first)
	}
	time.Sleep(2 * time.Millisecond)
	second := c.NowMs()
	if second <= first {
		t.Fatalf("NowMs() did not advance: %v then %v", first, second)
	}
}
