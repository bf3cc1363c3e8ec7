package d3d11ui

// Rect is an axis-aligned rectangle in GUI points, Min inclusive and Max
// exclusive. Clip rectangles in frame output use this type.
type Rect struct {
	Min, Max Point
}

// R is a convenience function to create a Rect.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the height of the rectangle.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Intersect returns the intersection of two rectangles. The result may be
// empty.
func (r Rect) Intersect(s Rect) Rect {
	if s.Min.X > r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y > r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X < r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y < r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Scale returns the rectangle with both corners multiplied by s.
func (r Rect) Scale(s float32) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}
