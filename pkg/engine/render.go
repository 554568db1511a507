package engine

import "context"

// updateAndRender processes one UpdateAndRender task: advances every
// object unless paused, clears and redraws the surface with viewport
// culling, then refreshes the hit test while paused. It never
// suspends — block-store I/O only happens in the FetchData task.
func (e *Engine) updateAndRender(_ context.Context, deltaMs float64) {
	e.pollInput()

	if !e.paused {
		for _, obj := range e.objects {
			obj.Update(deltaMs)
		}
	}

	e.surface.ClearRect(0, 0, float64(e.surface.Width()), float64(e.surface.Height()))
	e.recomputeViewport()

	for _, obj := range e.objects {
		box := obj.AABB()
		if !box.Intersects(e.viewport) {
			continue
		}
		obj.Render(e.surface)
	}

	if e.paused {
		e.runHitTest(e.pressX, e.pressY)
	}
}

func (e *Engine) recomputeViewport() {
	e.viewport = viewportAABB(float64(e.surface.Width()), float64(e.surface.Height()))
}
