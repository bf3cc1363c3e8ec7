package d3d11ui

import "github.com/chewxy/math32"

// vertexData is the vertex layout uploaded to the GPU. It matches the
// input signature of the vertex shader: clip-space position, texture
// coordinates and a widened float color.
type vertexData struct {
	pos   [2]float32
	uv    [2]float32
	color [4]float32
}

// vertexStride is the byte size of vertexData as laid out above.
const vertexStride = 8 * 4

// drawCall is one scissor-clipped indexed draw into the shared frame
// buffers.
type drawCall struct {
	indexStart uint32
	indexCount uint32
	baseVertex int32
	texture    TextureID
	scissor    [4]int32 // left, top, right, bottom in pixels
}

// clipTransform maps GUI points to Direct3D clip space for a given target
// size in pixels. Clip space spans [-1, 1] on both axes with Y pointing
// up, so the Y axis is flipped.
type clipTransform struct {
	sx, sy float32
}

func newClipTransform(widthPx, heightPx uint32, pixelsPerPoint float32) clipTransform {
	return clipTransform{
		sx: 2 * pixelsPerPoint / float32(widthPx),
		sy: 2 * pixelsPerPoint / float32(heightPx),
	}
}

func (t clipTransform) apply(v Vertex) vertexData {
	return vertexData{
		pos:   [2]float32{v.Pos.X*t.sx - 1, 1 - v.Pos.Y*t.sy},
		uv:    [2]float32{v.UV.X, v.UV.Y},
		color: v.Color.floats(),
	}
}

// scissorRect converts a clip rectangle in points to a pixel scissor
// rectangle clamped to the render target bounds. ok is false when nothing
// would survive the clip.
func scissorRect(clip Rect, pixelsPerPoint float32, widthPx, heightPx uint32) (rect [4]int32, ok bool) {
	px := clip.Scale(pixelsPerPoint).
		Intersect(R(0, 0, float32(widthPx), float32(heightPx)))
	if px.Empty() {
		return rect, false
	}
	rect = [4]int32{
		int32(math32.Floor(px.Min.X)),
		int32(math32.Floor(px.Min.Y)),
		int32(math32.Ceil(px.Max.X)),
		int32(math32.Ceil(px.Max.Y)),
	}
	return rect, true
}

// frameGeometry is the frame's combined vertex and index data plus the
// draw calls spanning it.
type frameGeometry struct {
	vertices []vertexData
	indices  []uint32
	draws    []drawCall
}

// buildFrameGeometry flattens the frame's clipped meshes into single
// vertex and index lists. Malformed meshes and fully clipped meshes are
// skipped; texture existence is checked later, at draw time, once deltas
// have been applied.
func buildFrameGeometry(meshes []ClippedMesh, widthPx, heightPx uint32, pixelsPerPoint float32) frameGeometry {
	t := newClipTransform(widthPx, heightPx, pixelsPerPoint)

	var g frameGeometry
	for i := range meshes {
		cm := &meshes[i]
		if !cm.Mesh.drawable() {
			continue
		}
		scissor, ok := scissorRect(cm.Clip, pixelsPerPoint, widthPx, heightPx)
		if !ok {
			continue
		}
		g.draws = append(g.draws, drawCall{
			indexStart: uint32(len(g.indices)),
			indexCount: uint32(len(cm.Mesh.Indices)),
			baseVertex: int32(len(g.vertices)),
			texture:    cm.Mesh.Texture,
			scissor:    scissor,
		})
		for _, v := range cm.Mesh.Vertices {
			g.vertices = append(g.vertices, t.apply(v))
		}
		g.indices = append(g.indices, cm.Mesh.Indices...)
	}
	return g
}

// fitBufferSize implements the upload buffer growth policy: reallocate to
// the exact required size when too small, never shrink.
func fitBufferSize(current, required int) (size int, grow bool) {
	if required > current {
		return required, true
	}
	return current, false
}
