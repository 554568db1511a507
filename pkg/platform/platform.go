// Package platform declares the host capabilities the engine consumes,
// The engine depends only on these interfaces; ebitenhost
// is the one concrete binding shipped in this module.
package platform

// RenderSurface is the 2D raster context a SquareObject draws itself
// onto. Coordinates and sizes are in the surface's own pixel space.
type RenderSurface interface {
	FillRect(x, y, w, h float64, r, g, b, a uint8)
	ClearRect(x, y, w, h float64)
	Width() int
	Height() int
}

// PointerEvent is one press/move/release sample translated into the
// surface's coordinate space.
type PointerEvent struct {
	Kind PointerEventKind
	X, Y float64
}

// PointerEventKind distinguishes press/move/release pointer samples.
type PointerEventKind int

const (
	PointerMove PointerEventKind = iota
	PointerDown
	PointerUp
)

// PointerSource yields the pointer events observed since the last
// call to Poll. Implementations are expected to be polled once per
// host tick.
type PointerSource interface {
	Poll() []PointerEvent
}

// Clock is the engine's monotonic millisecond time source.
type Clock interface {
	NowMs() float64
}

// CancelFunc stops a scheduled repeat; safe to call more than once.
type CancelFunc func()

// RepeatScheduler installs a callback invoked at a fixed period,
// independent of the host's repaint cadence (used for the 20ms
// FetchData timer).
type RepeatScheduler interface {
	Every(periodMs float64, fn func(nowMs float64)) CancelFunc
}

// Interval is an alias for CancelFunc: the host's "interval"
// primitive is exactly a RepeatScheduler's Every call.
type Interval = CancelFunc
