// Package square implements SquareObject, the one renderable entity
// kind in the engine: a square whose position is driven by a
// chunkstore.KeyframeStore rather than being set directly.
package square

import (
	"context"

	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/geometry"
	"github.com/sorauchi/squarefield/pkg/platform"
)

// Color is a plain RGBA fill color, independent of any host package.
type Color struct {
	R, G, B, A uint8
}

// SquareObject tracks one object's playhead against its KeyframeStore
// and caches the most recently resolved position for rendering. Its
// position only ever changes through Update: there is no
// direct setter, matching the store-driven position model.
type SquareObject struct {
	objectID uint32
	size     float64
	color    Color
	store    *chunkstore.KeyframeStore

	currentTimeMs float64
	cachedX       float64
	cachedY       float64
}

// New constructs a SquareObject seeded with timeOffsetMs as its
// initial playhead; the offset is applied once, at construction.
func New(objectID uint32, size float64, color Color, store *chunkstore.KeyframeStore, timeOffsetMs float64) *SquareObject {
	return &SquareObject{
		objectID:      objectID,
		size:          size,
		color:         color,
		store:         store,
		currentTimeMs: timeOffsetMs,
	}
}

func (o *SquareObject) CurrentX() float64 { return o.cachedX }
func (o *SquareObject) CurrentY() float64 { return o.cachedY }
func (o *SquareObject) Size() float64     { return o.size }
func (o *SquareObject) ObjectID() uint32  { return o.objectID }
func (o *SquareObject) Color() Color      { return o.color }

// Update advances the playhead by deltaMs modulo the store's total
// duration, then asks the store for the interpolated position at the
// new playhead. A miss (chunk not resident) leaves cachedX/Y at their
// previous values rather than stalling: Update never suspends.
func (o *SquareObject) Update(deltaMs float64) {
	total := o.store.TotalDurationMs()
	o.currentTimeMs += deltaMs
	if total > 0 {
		o.currentTimeMs = mod(o.currentTimeMs, total)
	}

	if x, y, ok := o.store.InterpolatedAt(o.currentTimeMs); ok {
		o.cachedX, o.cachedY = x, y
	}
}

// PlayheadMs reports the current playhead. Callers that hand prefetch
// work to another goroutine must read this first and pass the result
// to PrefetchAt: currentTimeMs is written by Update with no lock of
// its own, so it must only ever be read from the same goroutine that
// calls Update.
func (o *SquareObject) PlayheadMs() float64 {
	return o.currentTimeMs
}

// Prefetch delegates to the store with the current playhead; it may
// suspend on block-store I/O. Safe only when called from the same
// goroutine that calls Update (see PlayheadMs); concurrent callers
// must use PrefetchAt with a snapshotted playhead instead.
func (o *SquareObject) Prefetch(ctx context.Context) error {
	return o.PrefetchAt(ctx, o.currentTimeMs)
}

// PrefetchAt prefetches around an explicit playhead, previously
// snapshotted via PlayheadMs on the engine goroutine. It touches only
// the KeyframeStore, which guards its cache with its own mutex, so
// PrefetchAt is safe to call from a goroutine other than the one
// driving Update.
func (o *SquareObject) PrefetchAt(ctx context.Context, playheadMs float64) error {
	return o.store.Prefetch(ctx, playheadMs)
}

// ResidentChunkCount reports how many of this object's chunks are
// currently cached. Diagnostic accessor, not used on the render path.
func (o *SquareObject) ResidentChunkCount() int {
	return len(o.store.ResidentChunkIndexes())
}

// AABB returns this object's current axis-aligned bounding box, used
// for viewport culling and hit testing.
func (o *SquareObject) AABB() geometry.AABB {
	return geometry.NewAABBFromOrigin(geometry.Vector2{X: o.cachedX, Y: o.cachedY}, o.size)
}

// Render fills a size x size rectangle at (cachedX, cachedY) with
// color.
func (o *SquareObject) Render(surface platform.RenderSurface) {
	surface.FillRect(o.cachedX, o.cachedY, o.size, o.size, o.color.R, o.color.G, o.color.B, o.color.A)
}

func mod(a, b float64) float64 {
	m := a - b*float64(int64(a/b))
	if m < 0 {
		m += b
	}
	return m
}
