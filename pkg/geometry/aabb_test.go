package geometry

import "testing"

func TestNewAABBConstructorsAgree(t *testing.T) {
	min := Vector2{X: 10, Y: 20}
	max := Vector2{X: 60, Y: 70}

	fromCorners := NewAABB(min, max)
	fromOrigin := NewAABBFromOrigin(min, 50)

	if fromCorners != fromOrigin {
		t.Fatalf("constructors disagree: %+v vs %+v", fromCorners, fromOrigin)
	}
}

func TestContains(t *testing.T) {
	box := NewAABB(Vector2{X: 0, Y: 0}, Vector2{X: 10, Y: 10})

	cases := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 10, true},
		{-0.1, 5, false},
		{5, 10.1, false},
	}

	for _, c := range cases {
		if got := box.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIntersects(t *testing.T) {
	viewport := NewAABB(Vector2{X: 0, Y: 0}, Vector2{X: 500, Y: 500})

	cases := []struct {
		name string
		box  AABB
		want bool
	}{
		{"outside left/above", NewAABBFromOrigin(Vector2{X: -200, Y: -200}, 50), false},
		{"inside", NewAABBFromOrigin(Vector2{X: 250, Y: 250}, 50), true},
		{"outside right/below", NewAABBFromOrigin(Vector2{X: 600, Y: 600}, 50), false},
		{"touching edge", NewAABBFromOrigin(Vector2{X: -50, Y: 0}, 50), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := viewport.Intersects(c.box); got != c.want {
				t.Errorf("Intersects(%v) = %v, want %v", c.box, got, c.want)
			}
			if got := c.box.Intersects(viewport); got != c.want {
				t.Errorf("Intersects is not symmetric for %v", c.box)
			}
		})
	}
}
