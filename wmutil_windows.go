//go:build windows

package wmutil

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/spyoungtech/wmutil/internal/winapi"
)

// Windows grants a process a limited number of syscall callback slots, so
// the enumeration callback is registered once and the per-call accumulator
// travels through the LPARAM.
var enumMonitorsCallback = syscall.NewCallback(collectMonitor)

// EnumerateMonitors returns a snapshot of every attached display in
// OS-reported order. The order is not stable across calls; Name is the
// identity key.
func EnumerateMonitors() ([]Monitor, error) {
	var snap snapshot
	ok := winapi.EnumDisplayMonitors(0, nil, enumMonitorsCallback, uintptr(unsafe.Pointer(&snap)))
	return snap.result(ok, syscall.GetLastError())
}

// collectMonitor appends one display to the snapshot under construction.
// Returning 0 aborts the enumeration after a failed info query.
func collectMonitor(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	snap := (*snapshot)(unsafe.Pointer(lparam))
	m, err := describeMonitor(hMonitor)
	if err != nil {
		snap.err = err
		return 0
	}
	snap.monitors = append(snap.monitors, m)
	return 1
}

// describeMonitor builds a Monitor snapshot for a live monitor handle.
// Refresh rate and scale factor are best effort: a failed mode or DPI query
// leaves the zero-rate / 1.0 defaults rather than failing the snapshot.
func describeMonitor(hMonitor win.HMONITOR) (Monitor, error) {
	mi, ok := winapi.GetMonitorInfoEx(hMonitor)
	if !ok {
		return Monitor{}, fmt.Errorf("%w: GetMonitorInfo: %v", ErrQueryFailed, syscall.GetLastError())
	}
	m := Monitor{
		Handle:      uintptr(hMonitor),
		Name:        windows.UTF16ToString(mi.Device[:]),
		Bounds:      rectFromRECT(mi.RcMonitor),
		WorkArea:    rectFromRECT(mi.RcWork),
		ScaleFactor: 1,
		Primary:     mi.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}
	if dm, ok := winapi.CurrentDisplaySettings(&mi.Device[0]); ok {
		m.RefreshRateMillihertz = int(dm.DisplayFrequency) * 1000
	}
	if dpi, ok := winapi.MonitorDPI(hMonitor); ok {
		m.ScaleFactor = float64(dpi) / 96
	}
	return m, nil
}

// rectFromRECT converts a win.RECT into virtual-desktop geometry.
func rectFromRECT(r win.RECT) Rect {
	return Rect{
		X: int(r.Left),
		Y: int(r.Top),
		W: int(r.Right - r.Left),
		H: int(r.Bottom - r.Top),
	}
}

// GetPrimaryMonitor returns the display at the virtual-desktop origin.
func GetPrimaryMonitor() (Monitor, error) {
	monitors, err := EnumerateMonitors()
	if err != nil {
		return Monitor{}, err
	}
	m, ok := FindPrimary(monitors)
	if !ok {
		return Monitor{}, ErrNoDisplays
	}
	return m, nil
}

// GetMonitorFromPoint returns the monitor containing the point, falling back
// to the geometrically nearest display for out-of-bounds coordinates. Ties go
// to the first monitor in enumeration order.
func GetMonitorFromPoint(x, y int) (Monitor, error) {
	monitors, err := EnumerateMonitors()
	if err != nil {
		return Monitor{}, err
	}
	m, ok := MonitorAt(monitors, x, y)
	if !ok {
		return Monitor{}, ErrNoDisplays
	}
	return m, nil
}

// GetWindowMonitor returns the monitor hosting the window, or the nearest
// display when the window spans or sits outside every monitor rectangle.
func GetWindowMonitor(hwnd uintptr) (Monitor, error) {
	if !winapi.IsWindow(hwnd) {
		return Monitor{}, fmt.Errorf("%w: %#x", ErrInvalidWindowHandle, hwnd)
	}
	hMonitor := win.MonitorFromWindow(win.HWND(hwnd), win.MONITOR_DEFAULTTONEAREST)
	if hMonitor == 0 {
		return Monitor{}, ErrNoDisplays
	}
	return describeMonitor(hMonitor)
}

// SetPrimaryMonitor makes the named display the primary monitor by
// translating every display so the target lands at the virtual-desktop
// origin, preserving the relative layout. The new positions are staged per
// device in the registry and committed as a single display-settings
// transaction, so the desktop never passes through an intermediate layout.
//
// A false result means the OS declined the change. Invalid input is
// reported through ErrUnknownMonitor instead of false. The call is a no-op
// returning true when the named display is already primary.
func SetPrimaryMonitor(name string) (bool, error) {
	monitors, err := EnumerateMonitors()
	if err != nil {
		return false, err
	}
	if len(monitors) == 0 {
		return false, ErrNoDisplays
	}
	target, ok := FindByName(monitors, name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownMonitor, name)
	}
	if target.Bounds.X == 0 && target.Bounds.Y == 0 {
		return true, nil
	}

	shifted := shiftLayout(monitors, -target.Bounds.X, -target.Bounds.Y)
	for i, m := range monitors {
		device, err := windows.UTF16PtrFromString(m.Name)
		if err != nil {
			return false, fmt.Errorf("%w: device name %q: %v", ErrQueryFailed, m.Name, err)
		}
		dm, ok := winapi.CurrentDisplaySettings(device)
		if !ok {
			return false, fmt.Errorf("%w: EnumDisplaySettingsEx(%q): %v", ErrQueryFailed, m.Name, syscall.GetLastError())
		}
		dm.Position = win.POINT{X: int32(shifted[i].Bounds.X), Y: int32(shifted[i].Bounds.Y)}
		dm.Fields |= winapi.DM_POSITION
		flags := winapi.CDS_UPDATEREGISTRY | winapi.CDS_NORESET
		if m.Equal(target) {
			flags |= winapi.CDS_SET_PRIMARY
		}
		if winapi.StageDisplaySettings(device, &dm, flags) != winapi.DISP_CHANGE_SUCCESSFUL {
			return false, nil
		}
	}
	return winapi.CommitDisplaySettings() == winapi.DISP_CHANGE_SUCCESSFUL, nil
}

// SetPrimary makes this monitor the primary display, addressed by Name.
func (m Monitor) SetPrimary() (bool, error) {
	return SetPrimaryMonitor(m.Name)
}

// VirtualBounds returns the bounding rectangle of the entire virtual desktop
// across all monitors.
func VirtualBounds() (Rect, error) {
	return Rect{
		X: int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)),
		Y: int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)),
		W: int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)),
		H: int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)),
	}, nil
}
