package d3d11ui

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/d3d11ui/d3d11"
)

// DXGIFormat maps a WebGPU-style texture format to its DXGI equivalent.
// Only the color formats this backend can sample are supported.
func DXGIFormat(f gputypes.TextureFormat) (uint32, error) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return d3d11.DXGI_FORMAT_R8G8B8A8_UNORM, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return d3d11.DXGI_FORMAT_B8G8R8A8_UNORM, nil
	case gputypes.TextureFormatR8Unorm:
		return d3d11.DXGI_FORMAT_R8_UNORM, nil
	default:
		return d3d11.DXGI_FORMAT_UNKNOWN, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// formatBytesPerPixel returns the pixel width in bytes of a supported
// format.
func formatBytesPerPixel(f gputypes.TextureFormat) int {
	if f == gputypes.TextureFormatR8Unorm {
		return 1
	}
	return 4
}
