// Package d3d11ui renders immediate-mode GUI frame output with Direct3D11.
//
// # Overview
//
// d3d11ui is a thin render backend: it consumes the per-frame output of a
// retained-mode GUI library (clipped triangle meshes, texture deltas and a
// pixels-per-point scale) and turns it into Direct3D11 draw calls against a
// caller-supplied device context and render target view. It deliberately
// does nothing else: window management, event loops, device and swap chain
// creation and input handling all belong to the owning application. The
// d3d11 subpackage provides the bindings the examples use for that outer
// plumbing.
//
// # Quick Start
//
//	dev, ctx, _, err := d3d11.CreateDevice(d3d11.D3D_DRIVER_TYPE_HARDWARE, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	r, err := d3d11ui.NewRenderer(dev)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Release()
//
//	// Each frame, with out being the GUI library's frame output:
//	if err := r.Render(ctx, target, out); err != nil {
//		// A failed frame is simply not rendered; on device loss,
//		// recreate the device and the renderer.
//	}
//
// # Frame model
//
// A FrameOutput is produced fresh each frame and consumed exactly once.
// Texture deltas are applied before any drawing, so a mesh may reference a
// texture created earlier in the same frame. The only state retained across
// frames is the texture cache and the reusable vertex/index upload buffers.
//
// # Color space
//
// Vertex colors and texture pixels are premultiplied RGBA8 in gamma space,
// and blending happens in gamma space. The render target must therefore use
// a non-sRGB format such as DXGI_FORMAT_R8G8B8A8_UNORM.
//
// # Concurrency
//
// A Renderer is owned by a single thread, the one driving the render loop.
// None of its methods are safe for concurrent use. SetLogger is the only
// exception and may be called from any goroutine.
package d3d11ui
