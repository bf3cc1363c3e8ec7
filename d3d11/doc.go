// Package d3d11 provides a minimal set of Direct3D11 and DXGI bindings
// sufficient for rendering GUI frame output.
//
// The bindings call COM methods directly through interface vtables, so no
// cgo is required. Only the subset of the API used by the renderer and the
// example programs is wrapped: device and swap chain creation, buffers,
// 2D textures and their views, shader and state objects, and the draw and
// state-setting calls of the immediate context.
//
// All functional code is Windows-only. On other platforms the package
// exposes only constants and the ErrorCode type, which keeps packages that
// reference DXGI formats portable.
//
// Applications that already own a Direct3D11 device can wrap their native
// pointers with DeviceFromRaw and ContextFromRaw instead of creating a new
// device here. The renderer never takes ownership of wrapped objects.
package d3d11
