package d3d11ui

import _ "embed"

// Embedded HLSL shader source, compiled at renderer construction through
// d3dcompiler_47.

//go:embed shaders/gui.hlsl
var guiShaderSource []byte

// Shader entry points and target profiles. Feature level 10.0 hardware is
// the floor, so the 4.0 profiles are sufficient.
const (
	vertexShaderEntry  = "vs_main"
	vertexShaderTarget = "vs_4_0"

	pixelShaderEntry  = "ps_main"
	pixelShaderTarget = "ps_4_0"
)
