package d3d11

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3dcompilerDLL = windows.NewLazySystemDLL("d3dcompiler_47.dll")

	procD3DCompile = d3dcompilerDLL.NewProc("D3DCompile")
)

type blob struct {
	vtbl *struct {
		IUnknownVTbl
		GetBufferPointer uintptr
		GetBufferSize    uintptr
	}
}

// Compile compiles HLSL source for the given entry point and target profile
// (for example "vs_4_0" or "ps_4_0") and returns the DXBC bytecode.
func Compile(src []byte, entryPoint, target string) ([]byte, error) {
	var (
		code    *blob
		errBlob *blob
	)
	entryPoint0 := []byte(entryPoint + "\x00")
	target0 := []byte(target + "\x00")
	r, _, _ := procD3DCompile.Call(
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		0, // pSourceName
		0, // pDefines
		0, // pInclude
		uintptr(unsafe.Pointer(&entryPoint0[0])),
		uintptr(unsafe.Pointer(&target0[0])),
		0, // Flags1
		0, // Flags2
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&errBlob)),
	)
	var compileErr string
	if errBlob != nil {
		compileErr = string(errBlob.data())
		IUnknownRelease(unsafe.Pointer(errBlob), errBlob.vtbl.Release)
	}
	if r != 0 {
		return nil, fmt.Errorf("D3DCompile %s: %#x: %s", entryPoint, r, compileErr)
	}
	bytecode := code.data()
	cp := make([]byte, len(bytecode))
	copy(cp, bytecode)
	IUnknownRelease(unsafe.Pointer(code), code.vtbl.Release)
	return cp, nil
}

func (b *blob) data() []byte {
	ptr, _, _ := syscall.Syscall(
		b.vtbl.GetBufferPointer,
		1,
		uintptr(unsafe.Pointer(b)),
		0, 0,
	)
	n, _, _ := syscall.Syscall(
		b.vtbl.GetBufferSize,
		1,
		uintptr(unsafe.Pointer(b)),
		0, 0,
	)
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(n))
}
