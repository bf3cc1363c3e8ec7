package d3d11ui

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/d3d11ui/d3d11"
)

// d3dTexture pairs a texture with its shader resource view. Entries
// registered through RegisterUserTexture carry only the view.
type d3dTexture struct {
	tex *d3d11.Texture2D
	srv *d3d11.ShaderResourceView
}

// srvBackend implements textureBackend on a Direct3D11 device. Managed
// textures are DYNAMIC so updates go through a single Map(WRITE_DISCARD)
// without a staging resource. ctx is rebound at the start of every frame;
// the pool is only touched from the render loop.
type srvBackend struct {
	device *d3d11.Device
	ctx    *d3d11.DeviceContext
}

func (b *srvBackend) CreateTexture(im Image) (d3dTexture, error) {
	desc := d3d11.TEXTURE2D_DESC{
		Width:          uint32(im.Width),
		Height:         uint32(im.Height),
		MipLevels:      1,
		ArraySize:      1,
		Format:         d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
		SampleDesc:     d3d11.SAMPLE_DESC{Count: 1},
		Usage:          d3d11.D3D11_USAGE_DYNAMIC,
		BindFlags:      d3d11.D3D11_BIND_SHADER_RESOURCE,
		CPUAccessFlags: d3d11.D3D11_CPU_ACCESS_WRITE,
	}
	tex, err := b.device.CreateTexture2D(&desc, im.Pix, uint32(im.Width*4))
	if err != nil {
		return d3dTexture{}, err
	}
	srvDesc := d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D{
		SHADER_RESOURCE_VIEW_DESC: d3d11.SHADER_RESOURCE_VIEW_DESC{
			Format:        d3d11.DXGI_FORMAT_R8G8B8A8_UNORM,
			ViewDimension: d3d11.D3D11_SRV_DIMENSION_TEXTURE2D,
		},
		Texture2D: d3d11.TEX2D_SRV{MipLevels: 1},
	}
	srv, err := b.device.CreateShaderResourceViewTex2D(tex.AsResource(), &srvDesc)
	if err != nil {
		tex.Release()
		return d3dTexture{}, err
	}
	return d3dTexture{tex: tex, srv: srv}, nil
}

func (b *srvBackend) UploadTexture(t d3dTexture, im Image) error {
	mapped, err := b.ctx.Map(t.tex.AsResource(), 0, d3d11.D3D11_MAP_WRITE_DISCARD, 0)
	if err != nil {
		return err
	}
	rowBytes := im.Width * 4
	dst := mapped.MappedBytes(int(mapped.RowPitch) * im.Height)
	for y := 0; y < im.Height; y++ {
		copy(dst[y*int(mapped.RowPitch):], im.Pix[y*rowBytes:(y+1)*rowBytes])
	}
	b.ctx.Unmap(t.tex.AsResource(), 0)
	return nil
}

func (b *srvBackend) ReleaseTexture(t d3dTexture) {
	if t.srv != nil {
		t.srv.Release()
	}
	if t.tex != nil {
		t.tex.Release()
	}
}

// NewUserTexture creates an immutable texture from raw pixels in the
// given format and returns its shader resource view, ready to be passed
// to Renderer.RegisterUserTexture. The caller owns the view and releases
// it after unregistering.
func NewUserTexture(device *d3d11.Device, width, height int, pix []byte, format gputypes.TextureFormat) (*d3d11.ShaderResourceView, error) {
	dxgi, err := DXGIFormat(format)
	if err != nil {
		return nil, err
	}
	bpp := formatBytesPerPixel(format)
	if width <= 0 || height <= 0 || len(pix) != width*height*bpp {
		return nil, fmt.Errorf("%w: %dx%d with %d pixel bytes", ErrInvalidImage, width, height, len(pix))
	}
	desc := d3d11.TEXTURE2D_DESC{
		Width:      uint32(width),
		Height:     uint32(height),
		MipLevels:  1,
		ArraySize:  1,
		Format:     dxgi,
		SampleDesc: d3d11.SAMPLE_DESC{Count: 1},
		Usage:      d3d11.D3D11_USAGE_IMMUTABLE,
		BindFlags:  d3d11.D3D11_BIND_SHADER_RESOURCE,
	}
	tex, err := device.CreateTexture2D(&desc, pix, uint32(width*bpp))
	if err != nil {
		return nil, err
	}
	srvDesc := d3d11.SHADER_RESOURCE_VIEW_DESC_TEX2D{
		SHADER_RESOURCE_VIEW_DESC: d3d11.SHADER_RESOURCE_VIEW_DESC{
			Format:        dxgi,
			ViewDimension: d3d11.D3D11_SRV_DIMENSION_TEXTURE2D,
		},
		Texture2D: d3d11.TEX2D_SRV{MipLevels: 1},
	}
	srv, err := device.CreateShaderResourceViewTex2D(tex.AsResource(), &srvDesc)
	// The view keeps its own reference to the texture.
	tex.Release()
	if err != nil {
		return nil, err
	}
	return srv, nil
}
