package d3d11ui

import (
	"image"
	"image/color"
	"testing"
)

func TestImageFromRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	im := ImageFromRGBA(src)
	if im.Width != 3 || im.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", im.Width, im.Height)
	}
	if err := im.validate(); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if &im.Pix[0] != &src.Pix[0] {
		t.Error("tight source was copied instead of wrapped")
	}
	if im.Pix[4] != 255 {
		t.Errorf("pixel (1,0) red = %d, want 255", im.Pix[4])
	}
}

func TestImageFromRGBASubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	sub := src.SubImage(image.Rect(2, 3, 6, 7)).(*image.RGBA)

	im := ImageFromRGBA(sub)
	if im.Width != 4 || im.Height != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", im.Width, im.Height)
	}
	// Pixel (0,0) of the view is (2,3) of the source.
	if im.Pix[0] != 2 || im.Pix[1] != 3 {
		t.Errorf("pixel (0,0) = (%d,%d), want (2,3)", im.Pix[0], im.Pix[1])
	}
	last := (3*4 + 3) * 4
	if im.Pix[last] != 5 || im.Pix[last+1] != 6 {
		t.Errorf("pixel (3,3) = (%d,%d), want (5,6)", im.Pix[last], im.Pix[last+1])
	}
}

func TestImageFromImagePremultiplies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})

	im := ImageFromImage(src)
	if im.Width != 1 || im.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 1x1", im.Width, im.Height)
	}
	r, a := im.Pix[0], im.Pix[3]
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
	if r < 127 || r > 129 {
		t.Errorf("red = %d, want premultiplied ~128", r)
	}
}

func TestPatchPixels(t *testing.T) {
	dst := make([]uint8, 4*4*4)
	src := solidImage(2, 2, RGB(9, 8, 7))

	patchPixels(dst, 4, src, image.Pt(1, 1))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := (y*4 + x) * 4
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if inside && dst[i] != 9 {
				t.Errorf("pixel (%d,%d) red = %d, want 9", x, y, dst[i])
			}
			if !inside && dst[i] != 0 {
				t.Errorf("pixel (%d,%d) red = %d, want untouched 0", x, y, dst[i])
			}
		}
	}
}
