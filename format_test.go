package d3d11ui

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/d3d11ui/d3d11"
)

func TestDXGIFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.TextureFormat
		want    uint32
		wantErr bool
	}{
		{"rgba8", gputypes.TextureFormatRGBA8Unorm, d3d11.DXGI_FORMAT_R8G8B8A8_UNORM, false},
		{"bgra8", gputypes.TextureFormatBGRA8Unorm, d3d11.DXGI_FORMAT_B8G8R8A8_UNORM, false},
		{"r8", gputypes.TextureFormatR8Unorm, d3d11.DXGI_FORMAT_R8_UNORM, false},
		{"depth format unsupported", gputypes.TextureFormatDepth24PlusStencil8, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DXGIFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DXGIFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("DXGIFormat() error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("DXGIFormat() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatBytesPerPixel(t *testing.T) {
	if got := formatBytesPerPixel(gputypes.TextureFormatR8Unorm); got != 1 {
		t.Errorf("R8 bytes per pixel = %d, want 1", got)
	}
	if got := formatBytesPerPixel(gputypes.TextureFormatRGBA8Unorm); got != 4 {
		t.Errorf("RGBA8 bytes per pixel = %d, want 4", got)
	}
}
