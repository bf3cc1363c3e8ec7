package d3d11

// Values below mirror the Windows SDK headers (d3d11.h, dxgiformat.h,
// dxgi.h). They are plain constants so that OS-independent packages can
// reference formats and capability flags without pulling in the bindings.

const (
	D3D11_SDK_VERSION = 7

	D3D_DRIVER_TYPE_HARDWARE = 1
	D3D_DRIVER_TYPE_WARP     = 5
)

// DXGI formats.
const (
	DXGI_FORMAT_UNKNOWN             = 0
	DXGI_FORMAT_R32G32B32A32_FLOAT  = 2
	DXGI_FORMAT_R32G32_FLOAT        = 16
	DXGI_FORMAT_R8G8B8A8_UNORM      = 28
	DXGI_FORMAT_R8G8B8A8_UNORM_SRGB = 29
	DXGI_FORMAT_R32_FLOAT           = 41
	DXGI_FORMAT_R32_UINT            = 42
	DXGI_FORMAT_R16_UINT            = 57
	DXGI_FORMAT_R8_UNORM            = 61
	DXGI_FORMAT_B8G8R8A8_UNORM      = 87
)

// Resource usage and access.
const (
	D3D11_USAGE_DEFAULT   = 0
	D3D11_USAGE_IMMUTABLE = 1
	D3D11_USAGE_DYNAMIC   = 2
	D3D11_USAGE_STAGING   = 3

	D3D11_BIND_VERTEX_BUFFER   = 0x1
	D3D11_BIND_INDEX_BUFFER    = 0x2
	D3D11_BIND_CONSTANT_BUFFER = 0x4
	D3D11_BIND_SHADER_RESOURCE = 0x8
	D3D11_BIND_RENDER_TARGET   = 0x20

	D3D11_CPU_ACCESS_WRITE = 0x10000
	D3D11_CPU_ACCESS_READ  = 0x20000

	D3D11_MAP_READ               = 1
	D3D11_MAP_WRITE              = 2
	D3D11_MAP_READ_WRITE         = 3
	D3D11_MAP_WRITE_DISCARD      = 4
	D3D11_MAP_WRITE_NO_OVERWRITE = 5
)

// Input assembly.
const (
	D3D11_PRIMITIVE_TOPOLOGY_TRIANGLELIST = 4

	D3D11_INPUT_PER_VERTEX_DATA = 0

	D3D11_APPEND_ALIGNED_ELEMENT = 0xffffffff
)

// Rasterizer state.
const (
	D3D11_FILL_SOLID = 3

	D3D11_CULL_NONE = 1
)

// Sampler state.
const (
	D3D11_FILTER_MIN_MAG_MIP_POINT  = 0x00
	D3D11_FILTER_MIN_MAG_MIP_LINEAR = 0x15

	D3D11_TEXTURE_ADDRESS_WRAP   = 1
	D3D11_TEXTURE_ADDRESS_MIRROR = 2
	D3D11_TEXTURE_ADDRESS_CLAMP  = 3
	D3D11_TEXTURE_ADDRESS_BORDER = 4

	D3D11_COMPARISON_NEVER  = 1
	D3D11_COMPARISON_ALWAYS = 8

	D3D11_FLOAT32_MAX = 3.402823466e+38
)

// Blend state.
const (
	D3D11_BLEND_ZERO           = 1
	D3D11_BLEND_ONE            = 2
	D3D11_BLEND_SRC_ALPHA      = 5
	D3D11_BLEND_INV_SRC_ALPHA  = 6
	D3D11_BLEND_DEST_ALPHA     = 7
	D3D11_BLEND_INV_DEST_ALPHA = 8

	D3D11_BLEND_OP_ADD = 1

	D3D11_COLOR_WRITE_ENABLE_ALL = 0xf
)

// Views.
const (
	D3D11_SRV_DIMENSION_TEXTURE2D = 4
)

// Device creation flags.
const (
	D3D11_CREATE_DEVICE_DEBUG        = 0x2
	D3D11_CREATE_DEVICE_BGRA_SUPPORT = 0x20
)

// Swap chain.
const (
	DXGI_USAGE_RENDER_TARGET_OUTPUT = 0x20

	DXGI_SWAP_EFFECT_DISCARD = 0
)

// Status and error codes returned by the runtime.
const (
	DXGI_STATUS_OCCLUDED      = 0x087A0001
	DXGI_ERROR_DEVICE_HUNG    = 0x887A0006
	DXGI_ERROR_DEVICE_REMOVED = 0x887A0005
	DXGI_ERROR_DEVICE_RESET   = 0x887A0007
	E_OUTOFMEMORY             = 0x8007000E
)
