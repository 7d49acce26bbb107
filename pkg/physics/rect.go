// pkg/physics/rect.go
package physics

// Rect represents an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2D {
	return Vector2D{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// CenterY returns the y coordinate of the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Contains checks if a point lies inside the rectangle
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.X &&
		point.X < r.Right() &&
		point.Y >= r.Y &&
		point.Y < r.Bottom()
}

// Intersects checks if two rectangles overlap. Rectangles that
// merely touch along an edge do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !(other.X >= r.Right() ||
		other.Right() <= r.X ||
		other.Y >= r.Bottom() ||
		other.Bottom() <= r.Y)
}

// Clamp restricts a scalar value to the range [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
