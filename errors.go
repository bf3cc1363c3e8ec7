package d3d11ui

import "errors"

// Renderer errors. Failures of native Direct3D11 calls are wrapped and
// carry a d3d11.ErrorCode; use d3d11.IsDeviceRemoved to detect a lost
// device.
var (
	// ErrRendererReleased is returned when operating on a released renderer.
	ErrRendererReleased = errors.New("d3d11ui: renderer released")

	// ErrNilDevice is returned when constructing a renderer without a device.
	ErrNilDevice = errors.New("d3d11ui: device is nil")

	// ErrNilTarget is returned when rendering without a context or render
	// target view.
	ErrNilTarget = errors.New("d3d11ui: device context or render target is nil")

	// ErrTextureNotFound is returned when a mesh references a texture that
	// is not in the cache. This signals a bug in the caller's GUI-library
	// integration, not a recoverable condition.
	ErrTextureNotFound = errors.New("d3d11ui: texture not found")

	// ErrInvalidImage is returned when a texture delta carries no pixels or
	// an update that does not fit the target texture.
	ErrInvalidImage = errors.New("d3d11ui: invalid image data")

	// ErrUnsupportedFormat is returned for texture formats without a DXGI
	// equivalent supported by this backend.
	ErrUnsupportedFormat = errors.New("d3d11ui: unsupported texture format")
)
