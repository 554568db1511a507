package geometry

// AABB is an axis-aligned bounding box in canvas coordinates. All
// arithmetic is performed in float64 regardless of the precision of
// whatever produced the corners.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewAABB builds a box from its min and max corners directly.
func NewAABB(min, max Vector2) AABB {
	return AABB{MinX: min.X, MinY: min.Y, MaxX: max.X, MaxY: max.Y}
}

// NewAABBFromOrigin builds a box from a top-left origin and a uniform
// size, as used for square objects (size x size). It produces the
// same semantics as NewAABB given the equivalent corners.
func NewAABBFromOrigin(origin Vector2, size float64) AABB {
	return AABB{
		MinX: origin.X,
		MinY: origin.Y,
		MaxX: origin.X + size,
		MaxY: origin.Y + size,
	}
}

// Contains reports whether the point (x, y) lies within the box,
// inclusive of the boundary.
func (b AABB) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether b and other overlap, using a separating
// axis test on X and Y.
func (b AABB) Intersects(other AABB) bool {
	if b.MaxX < other.MinX || other.MaxX < b.MinX {
		return false
	}
	if b.MaxY < other.MinY || other.MaxY < b.MinY {
		return false
	}
	return true
}
