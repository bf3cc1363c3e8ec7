package d3d11ui

import (
	"fmt"
	"image"
)

// TextureKind distinguishes the two namespaces of texture identifiers.
type TextureKind uint8

const (
	// TextureManaged identifies textures owned by the GUI library and kept
	// alive through texture deltas (the font atlas, decoded images).
	TextureManaged TextureKind = iota

	// TextureUser identifies textures registered by the application through
	// Renderer.RegisterUserTexture.
	TextureUser
)

// String returns a human-readable name for the kind.
func (k TextureKind) String() string {
	switch k {
	case TextureManaged:
		return "Managed"
	case TextureUser:
		return "User"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// TextureID is an opaque texture identifier. Managed IDs are assigned by
// the GUI library; user IDs are allocated by the renderer. The two
// namespaces never collide.
type TextureID struct {
	Kind TextureKind
	ID   uint64
}

// ManagedTextureID returns the ID of a GUI-managed texture.
func ManagedTextureID(id uint64) TextureID {
	return TextureID{Kind: TextureManaged, ID: id}
}

// String implements fmt.Stringer.
func (t TextureID) String() string {
	return fmt.Sprintf("%s(%d)", t.Kind, t.ID)
}

// Vertex is a single GUI vertex: position in points, texture coordinates
// in the unit square, and a premultiplied gamma-space color.
type Vertex struct {
	Pos   Point
	UV    Point
	Color Color
}

// Mesh is a textured triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// ClippedMesh pairs a mesh with the clip rectangle (in points) it must be
// scissored to.
type ClippedMesh struct {
	Clip Rect
	Mesh Mesh
}

// Image is a block of premultiplied RGBA8 pixels in row-major order.
type Image struct {
	Width  int
	Height int
	// Pix holds Width*Height*4 bytes in R, G, B, A order.
	Pix []uint8
}

// validate reports whether the image holds a consistent pixel payload.
func (im Image) validate() error {
	if im.Width <= 0 || im.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImage, im.Width, im.Height)
	}
	if len(im.Pix) != im.Width*im.Height*4 {
		return fmt.Errorf("%w: %dx%d with %d pixel bytes", ErrInvalidImage, im.Width, im.Height, len(im.Pix))
	}
	return nil
}

// ImageDelta instructs the texture cache to create or update a managed
// texture. A nil Pos replaces the whole texture, reallocating it to the
// image's dimensions; a non-nil Pos patches the sub-region at that pixel
// offset.
type ImageDelta struct {
	ID    TextureID
	Pos   *image.Point
	Image Image
}

// TexturesDelta is the per-frame set of texture cache changes. Set entries
// are applied in order, then Free entries release managed textures.
type TexturesDelta struct {
	Set  []ImageDelta
	Free []TextureID
}

// IsEmpty reports whether the delta carries no changes.
func (d TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// FrameOutput is the part of the GUI library's per-frame output consumed
// by the renderer. It is produced fresh each frame and consumed once.
type FrameOutput struct {
	// Textures holds the texture cache changes to apply before drawing.
	Textures TexturesDelta

	// Meshes is the ordered draw list.
	Meshes []ClippedMesh

	// PixelsPerPoint is the scale from GUI points to physical pixels
	// (the window's scale factor).
	PixelsPerPoint float32
}

// drawable reports whether the mesh should be drawn at all, logging and
// skipping the malformed cases the same way the GUI library's other
// backends do.
func (m *Mesh) drawable() bool {
	if len(m.Indices) == 0 {
		return false
	}
	if len(m.Indices)%3 != 0 {
		logger().Warn("skipping mesh with incomplete triangle",
			"indices", len(m.Indices), "texture", m.Texture.String())
		return false
	}
	return true
}
