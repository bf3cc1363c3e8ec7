package d3d11

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	err := ErrorCode{Name: "IDXGISwapChainPresent", Code: DXGI_ERROR_DEVICE_REMOVED}
	want := "IDXGISwapChainPresent: 0x887a0005"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsDeviceRemoved(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"device removed", ErrorCode{Name: "Present", Code: DXGI_ERROR_DEVICE_REMOVED}, true},
		{"device reset", ErrorCode{Name: "Present", Code: DXGI_ERROR_DEVICE_RESET}, true},
		{"device hung", ErrorCode{Name: "Present", Code: DXGI_ERROR_DEVICE_HUNG}, true},
		{"occluded status", ErrorCode{Name: "Present", Code: DXGI_STATUS_OCCLUDED}, false},
		{"out of memory", ErrorCode{Name: "CreateBuffer", Code: E_OUTOFMEMORY}, false},
		{"other error type", errors.New("not an hresult"), false},
		{"wrapped code", fmt.Errorf("frame: %w", ErrorCode{Code: DXGI_ERROR_DEVICE_REMOVED}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDeviceRemoved(tt.err); got != tt.want {
				t.Errorf("IsDeviceRemoved() = %v, want %v", got, tt.want)
			}
		})
	}
}
