package d3d11

import "unsafe"

// The FromRaw wrappers let applications that own their Direct3D11 objects
// hand them to this module. No reference is added; the caller keeps
// ownership and must keep the object alive for as long as the wrapper is
// in use.

// DeviceFromRaw wraps a native ID3D11Device pointer.
func DeviceFromRaw(ptr unsafe.Pointer) *Device {
	return (*Device)(ptr)
}

// ContextFromRaw wraps a native ID3D11DeviceContext pointer.
func ContextFromRaw(ptr unsafe.Pointer) *DeviceContext {
	return (*DeviceContext)(ptr)
}

// RenderTargetViewFromRaw wraps a native ID3D11RenderTargetView pointer.
func RenderTargetViewFromRaw(ptr unsafe.Pointer) *RenderTargetView {
	return (*RenderTargetView)(ptr)
}

// ShaderResourceViewFromRaw wraps a native ID3D11ShaderResourceView pointer.
func ShaderResourceViewFromRaw(ptr unsafe.Pointer) *ShaderResourceView {
	return (*ShaderResourceView)(ptr)
}
