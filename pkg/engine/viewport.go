package engine

import "github.com/sorauchi/squarefield/pkg/geometry"

// viewportAABB builds the canvas-space viewport box from its current
// pixel dimensions, origin at (0,0).
func viewportAABB(width, height float64) geometry.AABB {
	return geometry.NewAABB(geometry.Vector2{X: 0, Y: 0}, geometry.Vector2{X: width, Y: height})
}
