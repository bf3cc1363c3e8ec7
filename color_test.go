package d3d11ui

import (
	"image/color"
	"testing"
)

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Color
	}{
		{"opaque red", color.RGBA{R: 255, A: 255}, RGB(255, 0, 0)},
		{"white", color.White, RGB(255, 255, 255)},
		{"transparent", color.Transparent, Color{}},
		{"premultiplies nrgba", color.NRGBA{R: 255, A: 0}, Color{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorFloats(t *testing.T) {
	if got := RGB(255, 0, 255).floats(); got != [4]float32{1, 0, 1, 1} {
		t.Errorf("floats() = %v, want [1 0 1 1]", got)
	}
	if got := (Color{}).floats(); got != [4]float32{0, 0, 0, 0} {
		t.Errorf("floats() = %v, want zeros", got)
	}
}
