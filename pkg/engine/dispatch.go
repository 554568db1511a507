package engine

import (
	"context"

	"github.com/sorauchi/squarefield/pkg/square"
)

// engineTaskKind distinguishes the two task shapes the dispatch loop
// consumes.
type engineTaskKind int

const (
	taskFetchData engineTaskKind = iota
	taskUpdateAndRender
)

type engineTask struct {
	kind    engineTaskKind
	deltaMs float64
}

// EnqueueFetchData pushes a FetchData task onto the queue. Called by
// the host's 20ms interval primitive; the send blocks if the queue is
// momentarily full, which is the desired backpressure since the
// queue is strictly FIFO and has no drop semantics.
func (e *Engine) EnqueueFetchData() {
	e.tasks <- engineTask{kind: taskFetchData}
}

// EnqueueUpdateAndRender pushes an UpdateAndRender task computed from
// the host's repaint callback. nowMs is the clock reading at the call
// site; the engine derives delta from its own last_frame_time.
func (e *Engine) EnqueueUpdateAndRender(nowMs float64) {
	var delta float64
	if e.haveLastFrame {
		delta = nowMs - e.lastFrameTimeMs
	}
	e.lastFrameTimeMs = nowMs
	e.haveLastFrame = true
	e.tasks <- engineTask{kind: taskUpdateAndRender, deltaMs: delta}
}

// Run drains the task queue FIFO, processing each task to completion
// before popping the next, until ctx is cancelled. It is the engine's
// single logical execution context: every field mutation in this
// package happens either here, before Run is started, or in
// EnqueueUpdateAndRender, which records last_frame_time on the
// caller's goroutine.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-e.tasks:
			e.process(ctx, t)
		}
	}
}

// RunOnce drains and processes every task currently queued, without
// blocking for more. Hosts that already tick the engine once per host
// frame (ebitenhost's App.Update) call this instead of Run, so the
// UpdateAndRender task for the current frame is guaranteed to have
// completed — and therefore rendered onto the surface — before the
// host's own Update call returns and Draw blits that surface.
func (e *Engine) RunOnce(ctx context.Context) {
	for {
		select {
		case t := <-e.tasks:
			e.process(ctx, t)
		default:
			return
		}
	}
}

// process dispatches one popped task. UpdateAndRender is synchronous
// and is run inline, matching the "never suspends" requirement: it
// never waits on a block-store round trip. FetchData is the one
// suspension point: the engine goroutine snapshots every object's
// playhead here, then hands the snapshot to its own goroutine so a
// stalled block-store call stalls only that goroutine, never the
// consumer loop that keeps draining UpdateAndRender tasks behind it.
// Only the snapshotted playheads and each KeyframeStore (which guards
// its own cache with a private mutex, see pkg/chunkstore) cross to
// that goroutine — SquareObject's currentTimeMs/cachedX/Y fields,
// which Update mutates with no lock of their own, are never touched
// off the engine goroutine.
func (e *Engine) process(ctx context.Context, t engineTask) {
	switch t.kind {
	case taskFetchData:
		e.dispatchFetchData(ctx)
	case taskUpdateAndRender:
		e.updateAndRender(ctx, t.deltaMs)
	}
}

// fetchJob pairs an object with its playhead as read on the engine
// goroutine at dispatch time, so the background fetch never reads
// SquareObject state directly.
type fetchJob struct {
	obj      *square.SquareObject
	playhead float64
}

// dispatchFetchData snapshots every object's current playhead inline,
// then prefetches around each snapshot on its own goroutine.
func (e *Engine) dispatchFetchData(ctx context.Context) {
	jobs := make([]fetchJob, len(e.objects))
	for i, obj := range e.objects {
		jobs[i] = fetchJob{obj: obj, playhead: obj.PlayheadMs()}
	}
	go e.runFetchJobs(ctx, jobs)
}

// runFetchJobs prefetches every job sequentially, bounding concurrent
// block-store load to one object at a time. A failed or stalled
// prefetch is logged and does not block the remaining objects from
// eventually being attempted on the next tick.
func (e *Engine) runFetchJobs(ctx context.Context, jobs []fetchJob) {
	for _, job := range jobs {
		if err := job.obj.PrefetchAt(ctx, job.playhead); err != nil {
			e.logf("[Engine] prefetch failed for object %d: %v", job.obj.ObjectID(), err)
		}
	}
}
