package d3d11ui

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 15, 15), R(5, 5, 10, 10)},
		{"contained", R(0, 0, 10, 10), R(2, 2, 4, 4), R(2, 2, 4, 4)},
		{"identical", R(1, 2, 3, 4), R(1, 2, 3, 4), R(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", R(0, 0, 1, 1), false},
		{"zero area", R(5, 5, 5, 5), true},
		{"inverted", R(10, 10, 0, 0), true},
		{"disjoint intersection", R(0, 0, 5, 5).Intersect(R(6, 6, 10, 10)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectScale(t *testing.T) {
	got := R(1, 2, 3, 4).Scale(2)
	if got != R(2, 4, 6, 8) {
		t.Errorf("Scale(2) = %v, want R(2,4,6,8)", got)
	}
	if w := got.Width(); w != 4 {
		t.Errorf("Width() = %v, want 4", w)
	}
	if h := got.Height(); h != 4 {
		t.Errorf("Height() = %v, want 4", h)
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add() = %v, want (4,5)", got)
	}
	if got := p.Sub(Pt(3, 4)); got != Pt(0, 0) {
		t.Errorf("Sub() = %v, want (0,0)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul() = %v, want (6,8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}
