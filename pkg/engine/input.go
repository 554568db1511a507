package engine

import "github.com/sorauchi/squarefield/pkg/platform"

// pollInput drains pointer events observed since the last tick and
// applies the Running/Paused input state machine.
func (e *Engine) pollInput() {
	for _, ev := range e.pointerSource.Poll() {
		e.applyPointerEvent(ev)
	}
}

func (e *Engine) applyPointerEvent(ev platform.PointerEvent) {
	switch ev.Kind {
	case platform.PointerDown:
		if !e.paused {
			e.paused = true
			e.pressX, e.pressY = ev.X, ev.Y
			e.runHitTest(ev.X, ev.Y)
		}
	case platform.PointerMove:
		if e.paused {
			e.pressX, e.pressY = ev.X, ev.Y
			e.runHitTest(ev.X, ev.Y)
		}
	case platform.PointerUp:
		if e.paused {
			e.paused = false
			e.hitIndices = nil
		}
	}
}

// HitIndices returns the object_ids whose cached AABB contains (x, y),
// ascending by object_id: a linear scan in vector order since objects
// are appended in allocation order.
func (e *Engine) HitIndices(x, y float64) []uint32 {
	var hits []uint32
	for _, obj := range e.objects {
		if obj.AABB().Contains(x, y) {
			hits = append(hits, obj.ObjectID())
		}
	}
	return hits
}

// runHitTest recomputes the hit set at (x, y) and writes the first
// (lowest object_id) hit, or nil, to the hit-index sink.
func (e *Engine) runHitTest(x, y float64) {
	e.hitIndices = e.HitIndices(x, y)

	if e.hitSink == nil {
		return
	}
	if len(e.hitIndices) == 0 {
		e.hitSink.WriteHitIndex(nil)
		return
	}
	first := e.hitIndices[0]
	e.hitSink.WriteHitIndex(&first)
}

// Paused reports whether the engine is currently in the Paused input
// state.
func (e *Engine) Paused() bool { return e.paused }
