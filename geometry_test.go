package d3d11ui

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestClipTransform(t *testing.T) {
	tests := []struct {
		name           string
		width, height  uint32
		pixelsPerPoint float32
		pos            Point
		want           [2]float32
	}{
		{"origin maps to top left", 800, 600, 1, Pt(0, 0), [2]float32{-1, 1}},
		{"far corner maps to bottom right", 800, 600, 1, Pt(800, 600), [2]float32{1, -1}},
		{"center maps to clip origin", 800, 600, 1, Pt(400, 300), [2]float32{0, 0}},
		{"scale factor doubles point size", 800, 600, 2, Pt(200, 150), [2]float32{0, 0}},
		{"fractional scale", 400, 400, 1.5, Pt(100, 100), [2]float32{-0.25, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newClipTransform(tt.width, tt.height, tt.pixelsPerPoint)
			got := tr.apply(Vertex{Pos: tt.pos}).pos
			if !approxEqual(got[0], tt.want[0]) || !approxEqual(got[1], tt.want[1]) {
				t.Errorf("apply(%v) pos = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestClipTransformKeepsUVAndColor(t *testing.T) {
	tr := newClipTransform(100, 100, 1)
	v := Vertex{Pos: Pt(10, 20), UV: Pt(0.25, 0.75), Color: Color{R: 255, G: 0, B: 0, A: 255}}
	got := tr.apply(v)
	if got.uv != [2]float32{0.25, 0.75} {
		t.Errorf("uv = %v, want [0.25 0.75]", got.uv)
	}
	if got.color != [4]float32{1, 0, 0, 1} {
		t.Errorf("color = %v, want [1 0 0 1]", got.color)
	}
}

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name           string
		clip           Rect
		pixelsPerPoint float32
		width, height  uint32
		want           [4]int32
		wantOK         bool
	}{
		{
			name: "inside target", clip: R(10, 20, 110, 220),
			pixelsPerPoint: 1, width: 800, height: 600,
			want: [4]int32{10, 20, 110, 220}, wantOK: true,
		},
		{
			name: "scaled by pixels per point", clip: R(10, 10, 20, 20),
			pixelsPerPoint: 2, width: 800, height: 600,
			want: [4]int32{20, 20, 40, 40}, wantOK: true,
		},
		{
			name: "clamped to target bounds", clip: R(-50, -50, 1000, 1000),
			pixelsPerPoint: 1, width: 800, height: 600,
			want: [4]int32{0, 0, 800, 600}, wantOK: true,
		},
		{
			name: "fractional bounds round outward", clip: R(10.4, 10.6, 20.2, 20.8),
			pixelsPerPoint: 1, width: 800, height: 600,
			want: [4]int32{10, 10, 21, 21}, wantOK: true,
		},
		{
			name: "entirely off target", clip: R(900, 0, 1000, 100),
			pixelsPerPoint: 1, width: 800, height: 600,
			wantOK: false,
		},
		{
			name: "inverted rectangle", clip: R(100, 100, 50, 50),
			pixelsPerPoint: 1, width: 800, height: 600,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scissorRect(tt.clip, tt.pixelsPerPoint, tt.width, tt.height)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("scissorRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func quadMesh(tex TextureID) Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Pos: Pt(0, 0)}, {Pos: Pt(10, 0)}, {Pos: Pt(10, 10)}, {Pos: Pt(0, 10)},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Texture: tex,
	}
}

func TestBuildFrameGeometry(t *testing.T) {
	atlas := ManagedTextureID(0)
	image := ManagedTextureID(1)
	clip := R(0, 0, 100, 100)

	g := buildFrameGeometry([]ClippedMesh{
		{Clip: clip, Mesh: quadMesh(atlas)},
		{Clip: clip, Mesh: quadMesh(image)},
	}, 100, 100, 1)

	if len(g.vertices) != 8 {
		t.Fatalf("len(vertices) = %d, want 8", len(g.vertices))
	}
	if len(g.indices) != 12 {
		t.Fatalf("len(indices) = %d, want 12", len(g.indices))
	}
	if len(g.draws) != 2 {
		t.Fatalf("len(draws) = %d, want 2", len(g.draws))
	}
	first, second := g.draws[0], g.draws[1]
	if first.indexStart != 0 || first.indexCount != 6 || first.baseVertex != 0 {
		t.Errorf("first draw = %+v, want start 0 count 6 base 0", first)
	}
	if second.indexStart != 6 || second.indexCount != 6 || second.baseVertex != 4 {
		t.Errorf("second draw = %+v, want start 6 count 6 base 4", second)
	}
	if first.texture != atlas || second.texture != image {
		t.Errorf("draw textures = %v, %v, want %v, %v", first.texture, second.texture, atlas, image)
	}
}

func TestBuildFrameGeometrySkipsMalformedMeshes(t *testing.T) {
	atlas := ManagedTextureID(0)
	clip := R(0, 0, 100, 100)

	g := buildFrameGeometry([]ClippedMesh{
		{Clip: clip, Mesh: Mesh{Texture: atlas}}, // empty
		{Clip: clip, Mesh: Mesh{
			Vertices: []Vertex{{}, {}},
			Indices:  []uint32{0, 1}, // incomplete triangle
			Texture:  atlas,
		}},
		{Clip: R(200, 200, 300, 300), Mesh: quadMesh(atlas)}, // fully clipped
		{Clip: clip, Mesh: quadMesh(atlas)},
	}, 100, 100, 1)

	if len(g.draws) != 1 {
		t.Fatalf("len(draws) = %d, want 1", len(g.draws))
	}
	if len(g.vertices) != 4 || len(g.indices) != 6 {
		t.Errorf("geometry = %d vertices, %d indices, want 4 and 6",
			len(g.vertices), len(g.indices))
	}
}

func TestFitBufferSize(t *testing.T) {
	tests := []struct {
		name              string
		current, required int
		wantSize          int
		wantGrow          bool
	}{
		{"initial allocation", 0, 1024, 1024, true},
		{"fits in current", 4096, 1024, 4096, false},
		{"exact fit", 4096, 4096, 4096, false},
		{"grows to exact size", 1024, 5000, 5000, true},
		{"never shrinks", 8192, 16, 8192, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, grow := fitBufferSize(tt.current, tt.required)
			if size != tt.wantSize || grow != tt.wantGrow {
				t.Errorf("fitBufferSize(%d, %d) = (%d, %v), want (%d, %v)",
					tt.current, tt.required, size, grow, tt.wantSize, tt.wantGrow)
			}
		})
	}
}
