//go:build !windows

package wmutil

// EnumerateMonitors returns ErrUnsupported on non-Windows platforms.
func EnumerateMonitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}

// GetPrimaryMonitor returns ErrUnsupported on non-Windows platforms.
func GetPrimaryMonitor() (Monitor, error) {
	return Monitor{}, ErrUnsupported
}

// GetMonitorFromPoint returns ErrUnsupported on non-Windows platforms.
func GetMonitorFromPoint(x, y int) (Monitor, error) {
	return Monitor{}, ErrUnsupported
}

// GetWindowMonitor returns ErrUnsupported on non-Windows platforms.
func GetWindowMonitor(hwnd uintptr) (Monitor, error) {
	return Monitor{}, ErrUnsupported
}

// SetPrimaryMonitor returns ErrUnsupported on non-Windows platforms.
func SetPrimaryMonitor(name string) (bool, error) {
	return false, ErrUnsupported
}

// SetPrimary returns ErrUnsupported on non-Windows platforms.
func (m Monitor) SetPrimary() (bool, error) {
	return false, ErrUnsupported
}

// VirtualBounds returns ErrUnsupported on non-Windows platforms.
func VirtualBounds() (Rect, error) {
	return Rect{}, ErrUnsupported
}
