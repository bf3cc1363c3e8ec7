package d3d11

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

type SWAP_CHAIN_DESC struct {
	BufferDesc   MODE_DESC
	SampleDesc   SAMPLE_DESC
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow windows.Handle
	Windowed     uint32
	SwapEffect   uint32
	Flags        uint32
}

type SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRate      RATIONAL
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     SAMPLE_DESC
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type SAMPLER_DESC struct {
	Filter         uint32
	AddressU       uint32
	AddressV       uint32
	AddressW       uint32
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc uint32
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type SHADER_RESOURCE_VIEW_DESC_TEX2D struct {
	SHADER_RESOURCE_VIEW_DESC
	Texture2D TEX2D_SRV
}

type SHADER_RESOURCE_VIEW_DESC struct {
	Format        uint32
	ViewDimension uint32
}

type TEX2D_SRV struct {
	MostDetailedMip uint32
	MipLevels       uint32
}

type INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

type BUFFER_DESC struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

type SUBRESOURCE_DATA struct {
	SysMem           *byte
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

type MAPPED_SUBRESOURCE struct {
	PData      uintptr
	RowPitch   uint32
	DepthPitch uint32
}

type VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// RECT matches the Win32 RECT layout used by RSSetScissorRects.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type BLEND_DESC struct {
	AlphaToCoverageEnable  uint32
	IndependentBlendEnable uint32
	RenderTarget           [8]RENDER_TARGET_BLEND_DESC
}

type RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           uint32
	SrcBlend              uint32
	DestBlend             uint32
	BlendOp               uint32
	SrcBlendAlpha         uint32
	DestBlendAlpha        uint32
	BlendOpAlpha          uint32
	RenderTargetWriteMask uint8
}

type RASTERIZER_DESC struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	ScissorEnable         uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
}

type GUID struct {
	Data1   uint32
	Data2   uint16
	Data3   uint16
	Data4_0 uint8
	Data4_1 uint8
	Data4_2 uint8
	Data4_3 uint8
	Data4_4 uint8
	Data4_5 uint8
	Data4_6 uint8
	Data4_7 uint8
}

type IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type deviceChildVTbl struct {
	IUnknownVTbl
	GetDevice               uintptr
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
}

type Device struct {
	vtbl *struct {
		IUnknownVTbl
		CreateBuffer                         uintptr
		CreateTexture1D                      uintptr
		CreateTexture2D                      uintptr
		CreateTexture3D                      uintptr
		CreateShaderResourceView             uintptr
		CreateUnorderedAccessView            uintptr
		CreateRenderTargetView               uintptr
		CreateDepthStencilView               uintptr
		CreateInputLayout                    uintptr
		CreateVertexShader                   uintptr
		CreateGeometryShader                 uintptr
		CreateGeometryShaderWithStreamOutput uintptr
		CreatePixelShader                    uintptr
		CreateHullShader                     uintptr
		CreateDomainShader                   uintptr
		CreateComputeShader                  uintptr
		CreateClassLinkage                   uintptr
		CreateBlendState                     uintptr
		CreateDepthStencilState              uintptr
		CreateRasterizerState                uintptr
		CreateSamplerState                   uintptr
		CreateQuery                          uintptr
		CreatePredicate                      uintptr
		CreateCounter                        uintptr
		CreateDeferredContext                uintptr
		OpenSharedResource                   uintptr
		CheckFormatSupport                   uintptr
		CheckMultisampleQualityLevels        uintptr
		CheckCounterInfo                     uintptr
		CheckCounter                         uintptr
		CheckFeatureSupport                  uintptr
		GetPrivateData                       uintptr
		SetPrivateData                       uintptr
		SetPrivateDataInterface              uintptr
		GetFeatureLevel                      uintptr
		GetCreationFlags                     uintptr
		GetDeviceRemovedReason               uintptr
		GetImmediateContext                  uintptr
		SetExceptionMode                     uintptr
		GetExceptionMode                     uintptr
	}
}

type DeviceContext struct {
	vtbl *struct {
		IUnknownVTbl
		GetDevice                                 uintptr
		GetPrivateData                            uintptr
		SetPrivateData                            uintptr
		SetPrivateDataInterface                   uintptr
		VSSetConstantBuffers                      uintptr
		PSSetShaderResources                      uintptr
		PSSetShader                               uintptr
		PSSetSamplers                             uintptr
		VSSetShader                               uintptr
		DrawIndexed                               uintptr
		Draw                                      uintptr
		Map                                       uintptr
		Unmap                                     uintptr
		PSSetConstantBuffers                      uintptr
		IASetInputLayout                          uintptr
		IASetVertexBuffers                        uintptr
		IASetIndexBuffer                          uintptr
		DrawIndexedInstanced                      uintptr
		DrawInstanced                             uintptr
		GSSetConstantBuffers                      uintptr
		GSSetShader                               uintptr
		IASetPrimitiveTopology                    uintptr
		VSSetShaderResources                      uintptr
		VSSetSamplers                             uintptr
		Begin                                     uintptr
		End                                       uintptr
		GetData                                   uintptr
		SetPredication                            uintptr
		GSSetShaderResources                      uintptr
		GSSetSamplers                             uintptr
		OMSetRenderTargets                        uintptr
		OMSetRenderTargetsAndUnorderedAccessViews uintptr
		OMSetBlendState                           uintptr
		OMSetDepthStencilState                    uintptr
		SOSetTargets                              uintptr
		DrawAuto                                  uintptr
		DrawIndexedInstancedIndirect              uintptr
		DrawInstancedIndirect                     uintptr
		Dispatch                                  uintptr
		DispatchIndirect                          uintptr
		RSSetState                                uintptr
		RSSetViewports                            uintptr
		RSSetScissorRects                         uintptr
		CopySubresourceRegion                     uintptr
		CopyResource                              uintptr
		UpdateSubresource                         uintptr
		CopyStructureCount                        uintptr
		ClearRenderTargetView                     uintptr
		ClearUnorderedAccessViewUint              uintptr
		ClearUnorderedAccessViewFloat             uintptr
		ClearDepthStencilView                     uintptr
		GenerateMips                              uintptr
		SetResourceMinLOD                         uintptr
		GetResourceMinLOD                         uintptr
		ResolveSubresource                        uintptr
		ExecuteCommandList                        uintptr
		HSSetShaderResources                      uintptr
		HSSetShader                               uintptr
		HSSetSamplers                             uintptr
		HSSetConstantBuffers                      uintptr
		DSSetShaderResources                      uintptr
		DSSetShader                               uintptr
		DSSetSamplers                             uintptr
		DSSetConstantBuffers                      uintptr
		CSSetShaderResources                      uintptr
		CSSetUnorderedAccessViews                 uintptr
		CSSetShader                               uintptr
		CSSetSamplers                             uintptr
		CSSetConstantBuffers                      uintptr
		VSGetConstantBuffers                      uintptr
		PSGetShaderResources                      uintptr
		PSGetShader                               uintptr
		PSGetSamplers                             uintptr
		VSGetShader                               uintptr
		PSGetConstantBuffers                      uintptr
		IAGetInputLayout                          uintptr
		IAGetVertexBuffers                        uintptr
		IAGetIndexBuffer                          uintptr
		GSGetConstantBuffers                      uintptr
		GSGetShader                               uintptr
		IAGetPrimitiveTopology                    uintptr
		VSGetShaderResources                      uintptr
		VSGetSamplers                             uintptr
		GetPredication                            uintptr
		GSGetShaderResources                      uintptr
		GSGetSamplers                             uintptr
		OMGetRenderTargets                        uintptr
		OMGetRenderTargetsAndUnorderedAccessViews uintptr
		OMGetBlendState                           uintptr
		OMGetDepthStencilState                    uintptr
		SOGetTargets                              uintptr
		RSGetState                                uintptr
		RSGetViewports                            uintptr
		RSGetScissorRects                         uintptr
		HSGetShaderResources                      uintptr
		HSGetShader                               uintptr
		HSGetSamplers                             uintptr
		HSGetConstantBuffers                      uintptr
		DSGetShaderResources                      uintptr
		DSGetShader                               uintptr
		DSGetSamplers                             uintptr
		DSGetConstantBuffers                      uintptr
		CSGetShaderResources                      uintptr
		CSGetUnorderedAccessViews                 uintptr
		CSGetShader                               uintptr
		CSGetSamplers                             uintptr
		CSGetConstantBuffers                      uintptr
		ClearState                                uintptr
		Flush                                     uintptr
		GetType                                   uintptr
		GetContextFlags                           uintptr
		FinishCommandList                         uintptr
	}
}

type SwapChain struct {
	vtbl *struct {
		IUnknownVTbl
		SetPrivateData          uintptr
		SetPrivateDataInterface uintptr
		GetPrivateData          uintptr
		GetParent               uintptr
		GetDevice               uintptr
		Present                 uintptr
		GetBuffer               uintptr
		SetFullscreenState      uintptr
		GetFullscreenState      uintptr
		GetDesc                 uintptr
		ResizeBuffers           uintptr
		ResizeTarget            uintptr
		GetContainingOutput     uintptr
		GetFrameStatistics      uintptr
		GetLastPresentCount     uintptr
	}
}

type Resource struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type Texture2D struct {
	vtbl *struct {
		deviceChildVTbl
		GetType             uintptr
		SetEvictionPriority uintptr
		GetEvictionPriority uintptr
		GetDesc             uintptr
	}
}

type Buffer struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type RenderTargetView struct {
	vtbl *struct {
		deviceChildVTbl
		GetResource uintptr
		GetDesc     uintptr
	}
}

type ShaderResourceView struct {
	vtbl *struct {
		deviceChildVTbl
		GetResource uintptr
		GetDesc     uintptr
	}
}

type SamplerState struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type VertexShader struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type PixelShader struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type InputLayout struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type RasterizerState struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

type BlendState struct {
	vtbl *struct {
		deviceChildVTbl
	}
}

var IID_ID3D11Texture2D = GUID{0x6f15aaf2, 0xd208, 0x4e89, 0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}

var (
	d3d11DLL = windows.NewLazySystemDLL("d3d11.dll")

	procCreateDevice             = d3d11DLL.NewProc("D3D11CreateDevice")
	procCreateDeviceAndSwapChain = d3d11DLL.NewProc("D3D11CreateDeviceAndSwapChain")
)

// CreateDevice creates a hardware device and its immediate context.
func CreateDevice(driverType, flags uint32) (*Device, *DeviceContext, uint32, error) {
	var (
		dev     *Device
		ctx     *DeviceContext
		featLvl uint32
	)
	r, _, _ := procCreateDevice.Call(
		0,                                 // pAdapter
		uintptr(driverType),               // DriverType
		0,                                 // Software
		uintptr(flags),                    // Flags
		0,                                 // pFeatureLevels
		0,                                 // FeatureLevels
		D3D11_SDK_VERSION,                 // SDKVersion
		uintptr(unsafe.Pointer(&dev)),     // ppDevice
		uintptr(unsafe.Pointer(&featLvl)), // pFeatureLevel
		uintptr(unsafe.Pointer(&ctx)),     // ppImmediateContext
	)
	if r != 0 {
		return nil, nil, 0, ErrorCode{Name: "D3D11CreateDevice", Code: uint32(r)}
	}
	return dev, ctx, featLvl, nil
}

// CreateDeviceAndSwapChain creates a hardware device together with a swap
// chain for the given window.
func CreateDeviceAndSwapChain(driverType, flags uint32, swapDesc *SWAP_CHAIN_DESC) (*Device, *DeviceContext, *SwapChain, uint32, error) {
	var (
		dev     *Device
		ctx     *DeviceContext
		swchain *SwapChain
		featLvl uint32
	)
	r, _, _ := procCreateDeviceAndSwapChain.Call(
		0,                                 // pAdapter
		uintptr(driverType),               // DriverType
		0,                                 // Software
		uintptr(flags),                    // Flags
		0,                                 // pFeatureLevels
		0,                                 // FeatureLevels
		D3D11_SDK_VERSION,                 // SDKVersion
		uintptr(unsafe.Pointer(swapDesc)), // pSwapChainDesc
		uintptr(unsafe.Pointer(&swchain)), // ppSwapChain
		uintptr(unsafe.Pointer(&dev)),     // ppDevice
		uintptr(unsafe.Pointer(&featLvl)), // pFeatureLevel
		uintptr(unsafe.Pointer(&ctx)),     // ppImmediateContext
	)
	if r != 0 {
		return nil, nil, nil, 0, ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: uint32(r)}
	}
	return dev, ctx, swchain, featLvl, nil
}

func (d *Device) CreateBuffer(desc *BUFFER_DESC, data []byte) (*Buffer, error) {
	var dataDesc *SUBRESOURCE_DATA
	if len(data) > 0 {
		dataDesc = &SUBRESOURCE_DATA{
			SysMem: &data[0],
		}
	}
	var buf *Buffer
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateBuffer,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(dataDesc)),
		uintptr(unsafe.Pointer(&buf)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateBuffer", Code: uint32(r)}
	}
	return buf, nil
}

// CreateTexture2D creates a 2D texture, optionally initialized from data
// laid out with the given row pitch.
func (d *Device) CreateTexture2D(desc *TEXTURE2D_DESC, data []byte, rowPitch uint32) (*Texture2D, error) {
	var dataDesc *SUBRESOURCE_DATA
	if len(data) > 0 {
		dataDesc = &SUBRESOURCE_DATA{
			SysMem:      &data[0],
			SysMemPitch: rowPitch,
		}
	}
	var tex *Texture2D
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateTexture2D,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(dataDesc)),
		uintptr(unsafe.Pointer(&tex)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateTexture2D", Code: uint32(r)}
	}
	return tex, nil
}

func (d *Device) CreateShaderResourceViewTex2D(res *Resource, desc *SHADER_RESOURCE_VIEW_DESC_TEX2D) (*ShaderResourceView, error) {
	var view *ShaderResourceView
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateShaderResourceView,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&view)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateShaderResourceView", Code: uint32(r)}
	}
	return view, nil
}

func (d *Device) CreateRenderTargetView(res *Resource) (*RenderTargetView, error) {
	var target *RenderTargetView
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateRenderTargetView,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc
		uintptr(unsafe.Pointer(&target)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateRenderTargetView", Code: uint32(r)}
	}
	return target, nil
}

func (d *Device) CreateInputLayout(descs []INPUT_ELEMENT_DESC, bytecode []byte) (*InputLayout, error) {
	var pdesc *INPUT_ELEMENT_DESC
	if len(descs) > 0 {
		pdesc = &descs[0]
	}
	var layout *InputLayout
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateInputLayout,
		6,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(pdesc)),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		uintptr(unsafe.Pointer(&layout)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateInputLayout", Code: uint32(r)}
	}
	return layout, nil
}

func (d *Device) CreateVertexShader(bytecode []byte) (*VertexShader, error) {
	var shader *VertexShader
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateVertexShader,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
		0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateVertexShader", Code: uint32(r)}
	}
	return shader, nil
}

func (d *Device) CreatePixelShader(bytecode []byte) (*PixelShader, error) {
	var shader *PixelShader
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreatePixelShader,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
		0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreatePixelShader", Code: uint32(r)}
	}
	return shader, nil
}

func (d *Device) CreateRasterizerState(desc *RASTERIZER_DESC) (*RasterizerState, error) {
	var state *RasterizerState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateRasterizerState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateRasterizerState", Code: uint32(r)}
	}
	return state, nil
}

func (d *Device) CreateSamplerState(desc *SAMPLER_DESC) (*SamplerState, error) {
	var sampler *SamplerState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateSamplerState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&sampler)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateSamplerState", Code: uint32(r)}
	}
	return sampler, nil
}

func (d *Device) CreateBlendState(desc *BLEND_DESC) (*BlendState, error) {
	var state *BlendState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateBlendState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11DeviceCreateBlendState", Code: uint32(r)}
	}
	return state, nil
}

func (c *DeviceContext) ClearState() {
	syscall.Syscall(
		c.vtbl.ClearState,
		1,
		uintptr(unsafe.Pointer(c)),
		0, 0,
	)
}

func (c *DeviceContext) ClearRenderTargetView(target *RenderTargetView, color *[4]float32) {
	syscall.Syscall(
		c.vtbl.ClearRenderTargetView,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(target)),
		uintptr(unsafe.Pointer(color)),
	)
}

func (c *DeviceContext) IASetPrimitiveTopology(mode uint32) {
	syscall.Syscall(
		c.vtbl.IASetPrimitiveTopology,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(mode),
		0,
	)
}

func (c *DeviceContext) IASetInputLayout(layout *InputLayout) {
	syscall.Syscall(
		c.vtbl.IASetInputLayout,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(layout)),
		0,
	)
}

func (c *DeviceContext) IASetVertexBuffers(buf *Buffer, stride, offset uint32) {
	syscall.Syscall6(
		c.vtbl.IASetVertexBuffers,
		6,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&stride)),
		uintptr(unsafe.Pointer(&offset)),
	)
}

func (c *DeviceContext) IASetIndexBuffer(buf *Buffer, format, offset uint32) {
	syscall.Syscall6(
		c.vtbl.IASetIndexBuffer,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(buf)),
		uintptr(format),
		uintptr(offset),
		0, 0,
	)
}

func (c *DeviceContext) VSSetShader(s *VertexShader) {
	syscall.Syscall6(
		c.vtbl.VSSetShader,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(s)),
		0, // ppClassInstances
		0, // NumClassInstances
		0, 0,
	)
}

func (c *DeviceContext) PSSetShader(s *PixelShader) {
	syscall.Syscall6(
		c.vtbl.PSSetShader,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(s)),
		0, // ppClassInstances
		0, // NumClassInstances
		0, 0,
	)
}

func (c *DeviceContext) PSSetSamplers(startSlot uint32, s *SamplerState) {
	syscall.Syscall6(
		c.vtbl.PSSetSamplers,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		1, // NumSamplers
		uintptr(unsafe.Pointer(&s)),
		0, 0,
	)
}

func (c *DeviceContext) PSSetShaderResources(startSlot uint32, s *ShaderResourceView) {
	syscall.Syscall6(
		c.vtbl.PSSetShaderResources,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		1, // NumViews
		uintptr(unsafe.Pointer(&s)),
		0, 0,
	)
}

func (c *DeviceContext) RSSetState(state *RasterizerState) {
	syscall.Syscall(
		c.vtbl.RSSetState,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		0,
	)
}

func (c *DeviceContext) RSSetViewports(viewport *VIEWPORT) {
	syscall.Syscall(
		c.vtbl.RSSetViewports,
		3,
		uintptr(unsafe.Pointer(c)),
		1, // NumViewports
		uintptr(unsafe.Pointer(viewport)),
	)
}

func (c *DeviceContext) RSSetScissorRects(rect *RECT) {
	syscall.Syscall(
		c.vtbl.RSSetScissorRects,
		3,
		uintptr(unsafe.Pointer(c)),
		1, // NumRects
		uintptr(unsafe.Pointer(rect)),
	)
}

func (c *DeviceContext) OMSetRenderTargets(target *RenderTargetView) {
	syscall.Syscall6(
		c.vtbl.OMSetRenderTargets,
		4,
		uintptr(unsafe.Pointer(c)),
		1, // NumViews
		uintptr(unsafe.Pointer(&target)),
		0, // pDepthStencilView
		0, 0,
	)
}

func (c *DeviceContext) OMSetBlendState(state *BlendState, factor *[4]float32, sampleMask uint32) {
	syscall.Syscall6(
		c.vtbl.OMSetBlendState,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		uintptr(unsafe.Pointer(factor)),
		uintptr(sampleMask),
		0, 0,
	)
}

func (c *DeviceContext) Map(res *Resource, subResource, mapType, mapFlags uint32) (MAPPED_SUBRESOURCE, error) {
	var mapped MAPPED_SUBRESOURCE
	r, _, _ := syscall.Syscall6(
		c.vtbl.Map,
		6,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		uintptr(subResource),
		uintptr(mapType),
		uintptr(mapFlags),
		uintptr(unsafe.Pointer(&mapped)),
	)
	if r != 0 {
		return mapped, ErrorCode{Name: "ID3D11DeviceContextMap", Code: uint32(r)}
	}
	return mapped, nil
}

func (c *DeviceContext) Unmap(res *Resource, subResource uint32) {
	syscall.Syscall(
		c.vtbl.Unmap,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		uintptr(subResource),
	)
}

func (c *DeviceContext) DrawIndexed(count, start uint32, base int32) {
	syscall.Syscall6(
		c.vtbl.DrawIndexed,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(count),
		uintptr(start),
		uintptr(base),
		0, 0,
	)
}

// GetResource returns the resource the view refers to. The returned
// reference must be released by the caller.
func (v *RenderTargetView) GetResource() *Resource {
	var res *Resource
	syscall.Syscall(
		v.vtbl.GetResource,
		2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&res)),
		0,
	)
	return res
}

func (t *Texture2D) GetDesc() TEXTURE2D_DESC {
	var desc TEXTURE2D_DESC
	syscall.Syscall(
		t.vtbl.GetDesc,
		2,
		uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(&desc)),
		0,
	)
	return desc
}

func (s *SwapChain) Present(syncInterval int, flags uint32) error {
	r, _, _ := syscall.Syscall(
		s.vtbl.Present,
		3,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChainPresent", Code: uint32(r)}
	}
	return nil
}

func (s *SwapChain) ResizeBuffers(buffers, width, height, newFormat, flags uint32) error {
	r, _, _ := syscall.Syscall6(
		s.vtbl.ResizeBuffers,
		6,
		uintptr(unsafe.Pointer(s)),
		uintptr(buffers),
		uintptr(width),
		uintptr(height),
		uintptr(newFormat),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChainResizeBuffers", Code: uint32(r)}
	}
	return nil
}

// BackBuffer returns the swap chain's back buffer texture. The returned
// reference must be released by the caller.
func (s *SwapChain) BackBuffer() (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.Syscall6(
		s.vtbl.GetBuffer,
		4,
		uintptr(unsafe.Pointer(s)),
		0, // Buffer
		uintptr(unsafe.Pointer(&IID_ID3D11Texture2D)),
		uintptr(unsafe.Pointer(&tex)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGISwapChainGetBuffer", Code: uint32(r)}
	}
	return tex, nil
}

// QueryTexture2D returns the ID3D11Texture2D interface of a resource.
// The returned reference must be released by the caller.
func (r *Resource) QueryTexture2D() (*Texture2D, error) {
	var tex *Texture2D
	hr, _, _ := syscall.Syscall(
		r.vtbl.QueryInterface,
		3,
		uintptr(unsafe.Pointer(r)),
		uintptr(unsafe.Pointer(&IID_ID3D11Texture2D)),
		uintptr(unsafe.Pointer(&tex)),
	)
	if hr != 0 {
		return nil, ErrorCode{Name: "IUnknownQueryInterface", Code: uint32(hr)}
	}
	return tex, nil
}

// MappedBytes returns the mapped memory as a byte slice of length n.
// The slice is valid until the matching Unmap.
func (m MAPPED_SUBRESOURCE) MappedBytes(n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(m.PData)), n)
}

// IUnknownRelease releases a COM reference through the given vtable slot.
func IUnknownRelease(obj unsafe.Pointer, releaseMethod uintptr) {
	syscall.Syscall(
		releaseMethod,
		1,
		uintptr(obj),
		0, 0,
	)
}

func (d *Device) Release() {
	IUnknownRelease(unsafe.Pointer(d), d.vtbl.Release)
}

func (c *DeviceContext) Release() {
	IUnknownRelease(unsafe.Pointer(c), c.vtbl.Release)
}

func (s *SwapChain) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

func (r *Resource) Release() {
	IUnknownRelease(unsafe.Pointer(r), r.vtbl.Release)
}

func (t *Texture2D) Release() {
	IUnknownRelease(unsafe.Pointer(t), t.vtbl.Release)
}

func (b *Buffer) Release() {
	IUnknownRelease(unsafe.Pointer(b), b.vtbl.Release)
}

func (v *RenderTargetView) Release() {
	IUnknownRelease(unsafe.Pointer(v), v.vtbl.Release)
}

func (v *ShaderResourceView) Release() {
	IUnknownRelease(unsafe.Pointer(v), v.vtbl.Release)
}

func (s *SamplerState) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

func (s *VertexShader) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

func (s *PixelShader) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

func (l *InputLayout) Release() {
	IUnknownRelease(unsafe.Pointer(l), l.vtbl.Release)
}

func (s *RasterizerState) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

func (s *BlendState) Release() {
	IUnknownRelease(unsafe.Pointer(s), s.vtbl.Release)
}

// Resource conversions for contexts Map/Unmap and view creation.

func (b *Buffer) AsResource() *Resource {
	return (*Resource)(unsafe.Pointer(b))
}

func (t *Texture2D) AsResource() *Resource {
	return (*Resource)(unsafe.Pointer(t))
}
