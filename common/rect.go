package common

// Rect is an axis-aligned bounding box in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the two rects overlap. The comparisons are
// strict on all four axes: rects that merely touch edges do not intersect.
// This is the single collision primitive for platform resolution, enemy
// contact, coin pickup and goal detection.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
