package d3d11ui

import "image/color"

// Color is a premultiplied RGBA color with 8 bits per channel, in gamma
// space. This is the color encoding of GUI vertex colors and texture
// pixels.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromColor converts a standard color.Color. The standard library already
// reports premultiplied components.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// floats widens the color to normalized float32 components, the layout the
// vertex shader consumes.
func (c Color) floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
