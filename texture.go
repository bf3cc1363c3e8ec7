package d3d11ui

import (
	"fmt"
	"image"
)

// textureBackend creates and updates GPU textures on behalf of the pool.
// T identifies a live GPU texture; the Direct3D11 implementation lives in
// texture_windows.go, and tests substitute a recording fake.
type textureBackend[T any] interface {
	// CreateTexture allocates a texture sized to the image and fills it.
	CreateTexture(im Image) (T, error)

	// UploadTexture replaces the full contents of an existing texture.
	// The image dimensions match the ones the texture was created with.
	UploadTexture(tex T, im Image) error

	// ReleaseTexture frees the GPU resources behind tex.
	ReleaseTexture(tex T)
}

// poolEntry is one cached texture. Managed entries keep a CPU pixel
// mirror so partial deltas can be folded in and re-uploaded whole; user
// entries only carry the registered view.
type poolEntry[T any] struct {
	tex    T
	user   bool
	pixels []uint8
	width  int
	height int
}

// texturePool is the texture cache: a mapping from GUI-assigned texture
// identifiers to GPU textures, maintained by applying texture deltas
// before each frame is drawn.
type texturePool[T any] struct {
	backend  textureBackend[T]
	entries  map[TextureID]*poolEntry[T]
	nextUser uint64
}

func newTexturePool[T any](backend textureBackend[T]) *texturePool[T] {
	return &texturePool[T]{
		backend: backend,
		entries: make(map[TextureID]*poolEntry[T]),
	}
}

// get returns the GPU texture for id.
func (p *texturePool[T]) get(id TextureID) (T, bool) {
	e, ok := p.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.tex, true
}

// registerUser adds an externally owned texture and allocates a user ID
// for it. The pool never writes to or releases user textures.
func (p *texturePool[T]) registerUser(tex T) TextureID {
	id := TextureID{Kind: TextureUser, ID: p.nextUser}
	p.nextUser++
	p.entries[id] = &poolEntry[T]{tex: tex, user: true}
	return id
}

// unregisterUser removes a previously registered user texture. It reports
// whether the ID named one.
func (p *texturePool[T]) unregisterUser(id TextureID) bool {
	e, ok := p.entries[id]
	if !ok || !e.user {
		return false
	}
	delete(p.entries, id)
	return true
}

// update applies a frame's texture deltas: Set entries in order, then
// Free entries. Requests that name unknown or user textures are logged
// and ignored; native failures abort the frame.
func (p *texturePool[T]) update(delta TexturesDelta) error {
	for _, set := range delta.Set {
		if set.ID.Kind != TextureManaged {
			logger().Warn("ignoring texture delta for non-managed texture", "texture", set.ID.String())
			continue
		}
		if set.Pos == nil {
			if err := p.create(set.ID, set.Image); err != nil {
				return err
			}
		} else if err := p.patch(set.ID, set.Image, *set.Pos); err != nil {
			return err
		}
	}
	for _, id := range delta.Free {
		e, ok := p.entries[id]
		if !ok || e.user {
			continue
		}
		p.backend.ReleaseTexture(e.tex)
		delete(p.entries, id)
	}
	return nil
}

// create allocates a texture for a whole-image delta, replacing any
// previous entry under the same ID.
func (p *texturePool[T]) create(id TextureID, im Image) error {
	if err := im.validate(); err != nil {
		return fmt.Errorf("texture %s: %w", id, err)
	}
	pixels := make([]uint8, len(im.Pix))
	copy(pixels, im.Pix)

	tex, err := p.backend.CreateTexture(im)
	if err != nil {
		return fmt.Errorf("texture %s: %w", id, err)
	}
	if old, ok := p.entries[id]; ok && !old.user {
		p.backend.ReleaseTexture(old.tex)
	}
	p.entries[id] = &poolEntry[T]{
		tex:    tex,
		pixels: pixels,
		width:  im.Width,
		height: im.Height,
	}
	logger().Debug("texture created", "texture", id.String(), "width", im.Width, "height", im.Height)
	return nil
}

// patch folds a partial delta into the CPU mirror and re-uploads the
// texture.
func (p *texturePool[T]) patch(id TextureID, im Image, pos image.Point) error {
	e, ok := p.entries[id]
	if !ok || e.user {
		logger().Warn("ignoring partial update for unknown texture", "texture", id.String())
		return nil
	}
	if err := im.validate(); err != nil {
		return fmt.Errorf("texture %s: %w", id, err)
	}
	if pos.X < 0 || pos.Y < 0 || pos.X+im.Width > e.width || pos.Y+im.Height > e.height {
		return fmt.Errorf("%w: texture %s: %dx%d update at %v exceeds %dx%d",
			ErrInvalidImage, id, im.Width, im.Height, pos, e.width, e.height)
	}
	patchPixels(e.pixels, e.width, im, pos)
	whole := Image{Width: e.width, Height: e.height, Pix: e.pixels}
	if err := p.backend.UploadTexture(e.tex, whole); err != nil {
		return fmt.Errorf("texture %s: %w", id, err)
	}
	return nil
}

// releaseAll frees every managed texture and forgets user registrations.
func (p *texturePool[T]) releaseAll() {
	for id, e := range p.entries {
		if !e.user {
			p.backend.ReleaseTexture(e.tex)
		}
		delete(p.entries, id)
	}
}
