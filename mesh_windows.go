package d3d11ui

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/d3d11ui/d3d11"
)

// meshBuffers holds the dynamic vertex and index buffers shared by all
// draws of a frame. Buffers grow to the exact frame size when the current
// capacity is too small and are never shrunk.
type meshBuffers struct {
	vertexBuf *d3d11.Buffer
	indexBuf  *d3d11.Buffer
	vertexCap int
	indexCap  int
}

func (b *meshBuffers) upload(device *d3d11.Device, ctx *d3d11.DeviceContext, g frameGeometry) error {
	vtxBytes := len(g.vertices) * vertexStride
	idxBytes := len(g.indices) * 4

	if size, grow := fitBufferSize(b.vertexCap, vtxBytes); grow {
		if b.vertexBuf != nil {
			b.vertexBuf.Release()
			b.vertexBuf = nil
		}
		buf, err := device.CreateBuffer(&d3d11.BUFFER_DESC{
			ByteWidth:      uint32(size),
			Usage:          d3d11.D3D11_USAGE_DYNAMIC,
			BindFlags:      d3d11.D3D11_BIND_VERTEX_BUFFER,
			CPUAccessFlags: d3d11.D3D11_CPU_ACCESS_WRITE,
		}, nil)
		if err != nil {
			return fmt.Errorf("create vertex buffer (%d bytes): %w", size, err)
		}
		b.vertexBuf = buf
		b.vertexCap = size
		logger().Debug("d3d11ui: vertex buffer grown", "bytes", size)
	}
	if size, grow := fitBufferSize(b.indexCap, idxBytes); grow {
		if b.indexBuf != nil {
			b.indexBuf.Release()
			b.indexBuf = nil
		}
		buf, err := device.CreateBuffer(&d3d11.BUFFER_DESC{
			ByteWidth:      uint32(size),
			Usage:          d3d11.D3D11_USAGE_DYNAMIC,
			BindFlags:      d3d11.D3D11_BIND_INDEX_BUFFER,
			CPUAccessFlags: d3d11.D3D11_CPU_ACCESS_WRITE,
		}, nil)
		if err != nil {
			return fmt.Errorf("create index buffer (%d bytes): %w", size, err)
		}
		b.indexBuf = buf
		b.indexCap = size
		logger().Debug("d3d11ui: index buffer grown", "bytes", size)
	}

	mapped, err := ctx.Map(b.vertexBuf.AsResource(), 0, d3d11.D3D11_MAP_WRITE_DISCARD, 0)
	if err != nil {
		return fmt.Errorf("map vertex buffer: %w", err)
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(&g.vertices[0])), vtxBytes)
	copy(mapped.MappedBytes(vtxBytes), src)
	ctx.Unmap(b.vertexBuf.AsResource(), 0)

	mapped, err = ctx.Map(b.indexBuf.AsResource(), 0, d3d11.D3D11_MAP_WRITE_DISCARD, 0)
	if err != nil {
		return fmt.Errorf("map index buffer: %w", err)
	}
	src = unsafe.Slice((*byte)(unsafe.Pointer(&g.indices[0])), idxBytes)
	copy(mapped.MappedBytes(idxBytes), src)
	ctx.Unmap(b.indexBuf.AsResource(), 0)
	return nil
}

func (b *meshBuffers) release() {
	if b.vertexBuf != nil {
		b.vertexBuf.Release()
		b.vertexBuf = nil
	}
	if b.indexBuf != nil {
		b.indexBuf.Release()
		b.indexBuf = nil
	}
	b.vertexCap = 0
	b.indexCap = 0
}
