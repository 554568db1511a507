// Package engine implements the engine: the owner of
// the object vector, the task queue, input state, and the viewport —
// the single logical execution context every other component defers
// mutation to.
package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/chunkstore"
	"github.com/sorauchi/squarefield/pkg/geometry"
	"github.com/sorauchi/squarefield/pkg/platform"
	"github.com/sorauchi/squarefield/pkg/square"
)

// HitIndexSink mirrors a browser's DOM hit-indices element: the engine
// writes the lowest hit object_id, or nil, every time it runs a hit
// test while paused (on press, on move, and on every paused frame).
type HitIndexSink interface {
	WriteHitIndex(objectID *uint32)
}

// Engine owns the dense object vector, the FIFO task queue, pointer
// input state, and the current viewport. All of it is mutated only
// from the dispatch loop goroutine started by Run (or the goroutine
// calling RunOnce).
type Engine struct {
	surface       platform.RenderSurface
	pointerSource platform.PointerSource
	clock         platform.Clock
	hitSink       HitIndexSink
	adapter       *blockstore.Adapter

	chunkDurationMs float32
	cacheCapacity   int
	verbose         bool
	rng             *rand.Rand

	objects      []*square.SquareObject
	nextObjectID uint32

	tasks chan engineTask

	paused          bool
	pressX, pressY  float64
	hitIndices      []uint32
	viewport        geometry.AABB
	lastFrameTimeMs float64
	haveLastFrame   bool
}

// Config bundles the construction-time dependencies a host binds in.
type Config struct {
	Surface         platform.RenderSurface
	PointerSource   platform.PointerSource
	Clock           platform.Clock
	HitSink         HitIndexSink // optional
	Adapter         *blockstore.Adapter
	ChunkDurationMs float32
	CacheCapacity   int
	Seed            int64
	Verbose         bool
}

// New constructs an engine bound to a canvas-equivalent surface and
// resets the block store, mirroring a fresh "new(canvas_id)" construction.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	e := &Engine{
		surface:         cfg.Surface,
		pointerSource:   cfg.PointerSource,
		clock:           cfg.Clock,
		hitSink:         cfg.HitSink,
		adapter:         cfg.Adapter,
		chunkDurationMs: cfg.ChunkDurationMs,
		cacheCapacity:   cfg.CacheCapacity,
		verbose:         cfg.Verbose,
		rng:             rand.New(rand.NewSource(cfg.Seed)),
		tasks:           make(chan engineTask, 64),
	}
	if e.cacheCapacity <= 0 {
		e.cacheCapacity = chunkstore.DefaultCacheCapacity
	}
	if e.chunkDurationMs <= 0 {
		e.chunkDurationMs = 1000
	}

	if e.adapter != nil {
		if err := e.adapter.Reset(ctx); err != nil {
			return nil, fmt.Errorf("engine: reset block store: %w", err)
		}
	}

	return e, nil
}

// AddObject allocates the next object_id, builds a KeyframeStore over
// pattern, persists every chunk, assigns a random time_offset, and
// pushes the resulting SquareObject onto the object vector.
//
// Callers must not call AddObject or GenerateObjects concurrently
// with Run or RunOnce: the object vector has no lock of its own,
// since only the dispatch loop goroutine is meant to touch it once
// the engine is running. Build the full object set first, then start
// dispatching.
func (e *Engine) AddObject(ctx context.Context, pattern chunkstore.PatternFunc, totalDurationMs float64, size float64, color square.Color) (uint32, error) {
	id := e.nextObjectID
	e.nextObjectID++

	store := chunkstore.New(id, e.chunkDurationMs, totalDurationMs, pattern, e.adapter, e.cacheCapacity)
	store.SetVerbose(e.verbose)
	if err := store.GenerateAndPersistAll(ctx); err != nil {
		return 0, fmt.Errorf("engine: add object %d: %w", id, err)
	}

	timeOffset := e.rng.Float64() * totalDurationMs
	obj := square.New(id, size, color, store, timeOffset)
	e.objects = append(e.objects, obj)

	return id, nil
}

// GenerateObjects batch-creates n objects, each with a pattern built
// by patternFactory from a seed and a color drawn from the engine's
// RNG (the app passes pattern.RandomWalk), yielding to the host after
// each object so a large batch does not stall the frame loop.
func (e *Engine) GenerateObjects(ctx context.Context, n int, totalDurationMs float64, size float64, areaWidth, areaHeight float64, patternFactory func(seed int64, areaWidth, areaHeight float64) chunkstore.PatternFunc) error {
	for i := 0; i < n; i++ {
		seed := e.rng.Int63()
		color := square.Color{
			R: uint8(e.rng.Intn(256)),
			G: uint8(e.rng.Intn(256)),
			B: uint8(e.rng.Intn(256)),
			A: 255,
		}
		if _, err := e.AddObject(ctx, patternFactory(seed, areaWidth, areaHeight), totalDurationMs, size, color); err != nil {
			return err
		}
		yieldToHost()
	}
	return nil
}

// ObjectCount reports the number of objects currently in the vector.
func (e *Engine) ObjectCount() int { return len(e.objects) }
