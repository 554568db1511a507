package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sorauchi/squarefield/pkg/platform"
)

// PointerSource polls ebiten's cursor and left mouse button once per
// call, diffing against the previous poll to emit press/move/release
// events.
type PointerSource struct {
	haveLast bool
	lastX    int
	lastY    int
	pressed  bool
}

// NewPointerSource constructs a pointer source with no prior state.
func NewPointerSource() *PointerSource {
	return &PointerSource{}
}

// Poll reports the pointer events observed since the previous call.
// Ebiten's own Update is already called once per host tick, so a
// single poll per tick matches the engine's expected cadence.
func (p *PointerSource) Poll() []platform.PointerEvent {
	x, y := ebiten.CursorPosition()
	var events []platform.PointerEvent

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.pressed = true
		events = append(events, platform.PointerEvent{Kind: platform.PointerDown, X: float64(x), Y: float64(y)})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.pressed = false
		events = append(events, platform.PointerEvent{Kind: platform.PointerUp, X: float64(x), Y: float64(y)})
	case p.haveLast && (x != p.lastX || y != p.lastY):
		events = append(events, platform.PointerEvent{Kind: platform.PointerMove, X: float64(x), Y: float64(y)})
	}

	p.lastX, p.lastY = x, y
	p.haveLast = true
	return events
}
