package d3d11ui

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageFromRGBA wraps a premultiplied *image.RGBA as an Image without
// copying when the source has no excess stride.
func ImageFromRGBA(src *image.RGBA) Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if src.Stride == 4*w && b.Min == (image.Point{}) {
		return Image{Width: w, Height: h, Pix: src.Pix[:4*w*h]}
	}
	pix := make([]uint8, 4*w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[(b.Min.Y+y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X)*4:]
		copy(pix[y*4*w:(y+1)*4*w], row[:4*w])
	}
	return Image{Width: w, Height: h, Pix: pix}
}

// ImageFromImage converts any image.Image into the premultiplied RGBA8
// payload texture deltas carry.
func ImageFromImage(src image.Image) Image {
	if rgba, ok := src.(*image.RGBA); ok {
		return ImageFromRGBA(rgba)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return ImageFromRGBA(dst)
}

// patchPixels copies src into dst at the given pixel origin. dst is a
// row-major RGBA8 buffer dstW pixels wide. The caller has already checked
// that src fits.
func patchPixels(dst []uint8, dstW int, src Image, origin image.Point) {
	rowBytes := src.Width * 4
	for y := 0; y < src.Height; y++ {
		di := ((origin.Y+y)*dstW + origin.X) * 4
		si := y * rowBytes
		copy(dst[di:di+rowBytes], src.Pix[si:si+rowBytes])
	}
}
