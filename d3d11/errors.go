package d3d11

import (
	"errors"
	"fmt"
)

// ErrorCode is a failed HRESULT returned by a Direct3D11 or DXGI call.
// Name identifies the call that failed.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

// IsDeviceRemoved reports whether err carries one of the DXGI codes that
// signal a lost device. A renderer built on a removed device cannot recover;
// the owning application must recreate the device and everything derived
// from it.
func IsDeviceRemoved(err error) bool {
	var code ErrorCode
	if !errors.As(err, &code) {
		return false
	}
	switch code.Code {
	case DXGI_ERROR_DEVICE_HUNG, DXGI_ERROR_DEVICE_REMOVED, DXGI_ERROR_DEVICE_RESET:
		return true
	}
	return false
}
