package d3d11ui

import (
	"fmt"

	"github.com/gogpu/d3d11ui/d3d11"
)

var (
	semanticPosition = []byte("POSITION\x00")
	semanticTexcoord = []byte("TEXCOORD\x00")
	semanticColor    = []byte("COLOR\x00")
)

// Renderer draws frame output onto a caller supplied render target. It
// owns its pipeline state and the textures created from texture deltas;
// the device and context stay owned by the caller and must outlive the
// renderer.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	device       *d3d11.Device
	inputLayout  *d3d11.InputLayout
	vertexShader *d3d11.VertexShader
	pixelShader  *d3d11.PixelShader
	rasterizer   *d3d11.RasterizerState
	sampler      *d3d11.SamplerState
	blend        *d3d11.BlendState
	buffers      meshBuffers
	backend      *srvBackend
	textures     *texturePool[d3dTexture]
	released     bool
}

// NewRenderer creates a renderer on the given device. The embedded
// shaders are compiled at startup, so d3dcompiler_47.dll must be
// loadable.
func NewRenderer(device *d3d11.Device) (*Renderer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	vsCode, err := d3d11.Compile(guiShaderSource, vertexShaderEntry, vertexShaderTarget)
	if err != nil {
		return nil, fmt.Errorf("compile vertex shader: %w", err)
	}
	psCode, err := d3d11.Compile(guiShaderSource, pixelShaderEntry, pixelShaderTarget)
	if err != nil {
		return nil, fmt.Errorf("compile pixel shader: %w", err)
	}

	r := &Renderer{device: device}
	r.backend = &srvBackend{device: device}
	r.textures = newTexturePool[d3dTexture](r.backend)

	fail := func(stage string, err error) (*Renderer, error) {
		r.Release()
		return nil, fmt.Errorf("%s: %w", stage, err)
	}

	r.vertexShader, err = device.CreateVertexShader(vsCode)
	if err != nil {
		return fail("create vertex shader", err)
	}
	r.pixelShader, err = device.CreatePixelShader(psCode)
	if err != nil {
		return fail("create pixel shader", err)
	}
	r.inputLayout, err = device.CreateInputLayout([]d3d11.INPUT_ELEMENT_DESC{
		{
			SemanticName: &semanticPosition[0],
			Format:       d3d11.DXGI_FORMAT_R32G32_FLOAT,
		},
		{
			SemanticName:      &semanticTexcoord[0],
			Format:            d3d11.DXGI_FORMAT_R32G32_FLOAT,
			AlignedByteOffset: d3d11.D3D11_APPEND_ALIGNED_ELEMENT,
		},
		{
			SemanticName:      &semanticColor[0],
			Format:            d3d11.DXGI_FORMAT_R32G32B32A32_FLOAT,
			AlignedByteOffset: d3d11.D3D11_APPEND_ALIGNED_ELEMENT,
		},
	}, vsCode)
	if err != nil {
		return fail("create input layout", err)
	}
	r.rasterizer, err = device.CreateRasterizerState(&d3d11.RASTERIZER_DESC{
		FillMode:      d3d11.D3D11_FILL_SOLID,
		CullMode:      d3d11.D3D11_CULL_NONE,
		ScissorEnable: 1,
	})
	if err != nil {
		return fail("create rasterizer state", err)
	}
	r.sampler, err = device.CreateSamplerState(&d3d11.SAMPLER_DESC{
		Filter:         d3d11.D3D11_FILTER_MIN_MAG_MIP_LINEAR,
		AddressU:       d3d11.D3D11_TEXTURE_ADDRESS_BORDER,
		AddressV:       d3d11.D3D11_TEXTURE_ADDRESS_BORDER,
		AddressW:       d3d11.D3D11_TEXTURE_ADDRESS_BORDER,
		ComparisonFunc: d3d11.D3D11_COMPARISON_ALWAYS,
		BorderColor:    [4]float32{1, 1, 1, 1},
	})
	if err != nil {
		return fail("create sampler state", err)
	}
	blendDesc := d3d11.BLEND_DESC{}
	blendDesc.RenderTarget[0] = d3d11.RENDER_TARGET_BLEND_DESC{
		BlendEnable:           1,
		SrcBlend:              d3d11.D3D11_BLEND_ONE,
		DestBlend:             d3d11.D3D11_BLEND_INV_SRC_ALPHA,
		BlendOp:               d3d11.D3D11_BLEND_OP_ADD,
		SrcBlendAlpha:         d3d11.D3D11_BLEND_INV_DEST_ALPHA,
		DestBlendAlpha:        d3d11.D3D11_BLEND_ONE,
		BlendOpAlpha:          d3d11.D3D11_BLEND_OP_ADD,
		RenderTargetWriteMask: d3d11.D3D11_COLOR_WRITE_ENABLE_ALL,
	}
	r.blend, err = device.CreateBlendState(&blendDesc)
	if err != nil {
		return fail("create blend state", err)
	}
	return r, nil
}

// Render applies the frame's texture deltas and draws its meshes onto
// target. The caller saves and restores any pipeline state it wants to
// keep; Render leaves its own state bound.
//
// The frame is dropped at the first failure. A failed frame may have
// applied some texture deltas and issued some draws already.
func (r *Renderer) Render(ctx *d3d11.DeviceContext, target *d3d11.RenderTargetView, out FrameOutput) error {
	if r.released {
		return ErrRendererReleased
	}
	if ctx == nil || target == nil {
		return ErrNilTarget
	}
	r.backend.ctx = ctx
	if err := r.textures.update(out.Textures); err != nil {
		return fmt.Errorf("apply texture deltas: %w", err)
	}
	if len(out.Meshes) == 0 {
		return nil
	}

	width, height, err := targetSize(target)
	if err != nil {
		return err
	}
	ppp := out.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	g := buildFrameGeometry(out.Meshes, width, height, ppp)
	if len(g.draws) == 0 {
		return nil
	}

	// Resolve every texture up front so a bad frame fails before any
	// draw reaches the target.
	views := make([]*d3d11.ShaderResourceView, len(g.draws))
	for i, dc := range g.draws {
		tex, ok := r.textures.get(dc.texture)
		if !ok {
			return fmt.Errorf("%w: %v", ErrTextureNotFound, dc.texture)
		}
		views[i] = tex.srv
	}

	if err := r.buffers.upload(r.device, ctx, g); err != nil {
		return err
	}

	ctx.IASetPrimitiveTopology(d3d11.D3D11_PRIMITIVE_TOPOLOGY_TRIANGLELIST)
	ctx.IASetInputLayout(r.inputLayout)
	ctx.IASetVertexBuffers(r.buffers.vertexBuf, uint32(vertexStride), 0)
	ctx.IASetIndexBuffer(r.buffers.indexBuf, d3d11.DXGI_FORMAT_R32_UINT, 0)
	ctx.VSSetShader(r.vertexShader)
	ctx.PSSetShader(r.pixelShader)
	ctx.PSSetSamplers(0, r.sampler)
	ctx.RSSetState(r.rasterizer)
	ctx.RSSetViewports(&d3d11.VIEWPORT{
		Width:    float32(width),
		Height:   float32(height),
		MaxDepth: 1,
	})
	ctx.OMSetRenderTargets(target)
	ctx.OMSetBlendState(r.blend, &[4]float32{}, 0xffffffff)

	for i, dc := range g.draws {
		ctx.RSSetScissorRects(&d3d11.RECT{
			Left:   dc.scissor[0],
			Top:    dc.scissor[1],
			Right:  dc.scissor[2],
			Bottom: dc.scissor[3],
		})
		ctx.PSSetShaderResources(0, views[i])
		ctx.DrawIndexed(dc.indexCount, dc.indexStart, dc.baseVertex)
	}
	return nil
}

// RegisterUserTexture adds an externally owned shader resource view to
// the renderer and returns the ID meshes refer to it by. The renderer
// never releases the view.
func (r *Renderer) RegisterUserTexture(srv *d3d11.ShaderResourceView) TextureID {
	return r.textures.registerUser(d3dTexture{srv: srv})
}

// UnregisterUserTexture removes a previously registered view. It reports
// whether the ID was known.
func (r *Renderer) UnregisterUserTexture(id TextureID) bool {
	return r.textures.unregisterUser(id)
}

// Release frees all resources owned by the renderer. Further calls are
// no-ops and a released renderer fails every Render.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.textures.releaseAll()
	r.buffers.release()
	if r.blend != nil {
		r.blend.Release()
	}
	if r.sampler != nil {
		r.sampler.Release()
	}
	if r.rasterizer != nil {
		r.rasterizer.Release()
	}
	if r.inputLayout != nil {
		r.inputLayout.Release()
	}
	if r.pixelShader != nil {
		r.pixelShader.Release()
	}
	if r.vertexShader != nil {
		r.vertexShader.Release()
	}
}

// targetSize reads the pixel dimensions of a render target from its
// underlying texture.
func targetSize(target *d3d11.RenderTargetView) (uint32, uint32, error) {
	res := target.GetResource()
	defer res.Release()
	tex, err := res.QueryTexture2D()
	if err != nil {
		return 0, 0, fmt.Errorf("query render target size: %w", err)
	}
	defer tex.Release()
	desc := tex.GetDesc()
	return desc.Width, desc.Height, nil
}
