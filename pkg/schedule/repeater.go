// Package schedule implements the frame-scheduling shim:
// a self-re-arming wrapper around the host's "call me before next
// repaint" primitive.
package schedule

// RequestNextFrame is the host primitive being wrapped: it schedules
// fn to run before the next repaint and returns nothing; cmd/squarefield's
// App.requestNextFrame satisfies this directly since ebiten.Game.Update
// is already invoked once per tick, making its Repeater a thin
// pass-through.
type RequestNextFrame func(fn func(nowMs float64) error)

// Repeater re-arms a callback after every host repaint tick until
// cancelled. The callback is invoked at most once per tick.
type Repeater struct {
	request   RequestNextFrame
	callback  func(nowMs float64) error
	cancelled bool
}

// NewRepeater builds a Repeater bound to a host scheduling primitive.
// It does not start running until Start is called.
func NewRepeater(request RequestNextFrame, callback func(nowMs float64) error) *Repeater {
	return &Repeater{request: request, callback: callback}
}

// Start arms the first tick.
func (r *Repeater) Start() {
	r.armNext()
}

// Cancel drops the outer handle: once the in-flight tick (if any)
// completes, no further tick is armed.
func (r *Repeater) Cancel() {
	r.cancelled = true
}

func (r *Repeater) armNext() {
	if r.cancelled {
		return
	}
	r.request(func(nowMs float64) error {
		if r.cancelled {
			return nil
		}
		err := r.callback(nowMs)
		if err != nil {
			return err
		}
		r.armNext()
		return nil
	})
}
