// Command squarefield runs the chunked-keyframe animation engine as
// an ebiten window: a field of squares, each replaying its own
// procedurally generated motion track from a chunked, LRU-cached
// keyframe store.
package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/config"
	"github.com/sorauchi/squarefield/pkg/engine"
	"github.com/sorauchi/squarefield/pkg/pattern"
	"github.com/sorauchi/squarefield/pkg/platform"
	"github.com/sorauchi/squarefield/pkg/platform/ebitenhost"
	"github.com/sorauchi/squarefield/pkg/schedule"
)

// defaultSquareSize is the side length of every generated square, in
// canvas pixels.
const defaultSquareSize = 20.0

// App is the ebiten.Game implementation wrapping the engine: Update
// drains engine input, ticks the scheduler shim, and enqueues
// UpdateAndRender; Draw blits the engine's own offscreen surface,
// since rendering already happened as part of processing that task.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg *config.EngineConfig
	eng *engine.Engine

	clock          platform.Clock
	offscreen      *ebiten.Image
	surface        *ebitenhost.Surface
	intervalCancel platform.CancelFunc
	repeater       *schedule.Repeater
	pending        func(nowMs float64) error

	verbose bool
}

// NewApp builds the engine, seeds it with cfg.ObjectCount random-walk
// objects, and installs the 20ms FetchData timer and the per-tick
// repaint shim. It does not block; the caller still calls
// ebiten.RunGame.
func NewApp(cfg *config.EngineConfig) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	store, err := openBlockStore(cfg)
	if err != nil {
		cancel()
		return nil, err
	}
	adapter := blockstore.NewAdapter(store)

	offscreen := ebiten.NewImage(cfg.CanvasWidth, cfg.CanvasHeight)
	surface := ebitenhost.NewSurface(offscreen)
	pointerSource := ebitenhost.NewPointerSource()
	clock := ebitenhost.NewClock()
	hitSink := newLogHitSink(cfg.Verbose)

	eng, err := engine.New(ctx, engine.Config{
		Surface:         surface,
		PointerSource:   pointerSource,
		Clock:           clock,
		HitSink:         hitSink,
		Adapter:         adapter,
		ChunkDurationMs: cfg.ChunkDurationMs,
		CacheCapacity:   cfg.CacheCapacity,
		Seed:            time.Now().UnixNano(),
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		cancel()
		return nil, err
	}

	if err := eng.GenerateObjects(ctx, cfg.ObjectCount, float64(cfg.TotalDurationMs()), defaultSquareSize,
		float64(cfg.CanvasWidth), float64(cfg.CanvasHeight), pattern.RandomWalk); err != nil {
		cancel()
		return nil, err
	}

	app := &App{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		eng:       eng,
		clock:     clock,
		offscreen: offscreen,
		surface:   surface,
		verbose:   cfg.Verbose,
	}

	scheduler := ebitenhost.NewIntervalScheduler(clock)
	app.intervalCancel = scheduler.Every(20, func(nowMs float64) {
		app.eng.EnqueueFetchData()
	})

	app.repeater = schedule.NewRepeater(app.requestNextFrame, app.onFrame)
	app.repeater.Start()

	return app, nil
}

// requestNextFrame is the RequestNextFrame primitive schedule.Repeater
// wraps: ebiten already calls Update once per tick, so this is just a
// pass-through that stashes the callback for Update to invoke.
func (a *App) requestNextFrame(fn func(nowMs float64) error) {
	a.pending = fn
}

// onFrame is the repeater's wrapped callback: enqueue this tick's
// UpdateAndRender and process the queue synchronously so rendering
// has completed onto the offscreen surface before Update returns.
func (a *App) onFrame(nowMs float64) error {
	a.eng.EnqueueUpdateAndRender(nowMs)
	a.eng.RunOnce(a.ctx)
	return nil
}

func (a *App) Update() error {
	fn := a.pending
	a.pending = nil
	if fn == nil {
		return nil
	}
	return fn(a.clock.NowMs())
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.offscreen, nil)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.CanvasWidth, a.cfg.CanvasHeight
}

// Close stops the FetchData timer and the engine's own goroutines.
func (a *App) Close() {
	if a.intervalCancel != nil {
		a.intervalCancel()
	}
	a.cancel()
}

// logHitSink writes hit-index changes to the log, standing in for the
// browser's "hit-indices" DOM element, since ebiten has no
// DOM to write to.
type logHitSink struct {
	verbose bool
}

func newLogHitSink(verbose bool) *logHitSink {
	return &logHitSink{verbose: verbose}
}

func (s *logHitSink) WriteHitIndex(objectID *uint32) {
	if !s.verbose {
		return
	}
	if objectID == nil {
		log.Printf("[HitIndex] None")
		return
	}
	log.Printf("[HitIndex] %d", *objectID)
}
