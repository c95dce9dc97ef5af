//go:build windows

// Package winapi declares the user32 and shcore calls that the
// github.com/lxn/win binding does not cover.
package winapi

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// DLLs - loaded lazily on first use.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")
)

// user32 procs. EnumDisplayMonitors is declared here because the pinned
// lxn/win revision does not export it.
var (
	procIsWindow                 = user32.NewProc("IsWindow")
	procEnumDisplayMonitors      = user32.NewProc("EnumDisplayMonitors")
	procEnumDisplaySettingsExW   = user32.NewProc("EnumDisplaySettingsExW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
)

// shcore procs. shcore.dll is absent before Windows 8.1, so call sites
// must tolerate a missing proc.
var (
	procGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")
)

// Display-settings constants from winuser.h and wingdi.h.
const (
	ENUM_CURRENT_SETTINGS uint32 = 0xFFFFFFFF

	DM_POSITION uint32 = 0x00000020

	CDS_UPDATEREGISTRY uint32 = 0x00000001
	CDS_SET_PRIMARY    uint32 = 0x00000010
	CDS_NORESET        uint32 = 0x10000000

	DISP_CHANGE_SUCCESSFUL int32 = 0

	MDT_EFFECTIVE_DPI uint32 = 0
)

// MONITORINFOEX extends win.MONITORINFO with the display device path.
type MONITORINFOEX struct {
	win.MONITORINFO
	Device [win.CCHDEVICENAME]uint16
}

// DEVMODE mirrors the display variant of the wingdi DEVMODEW structure.
// Field offsets must match the C layout exactly; the printer-only union
// members are spelled as the display fields that alias them.
type DEVMODE struct {
	DeviceName         [win.CCHDEVICENAME]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	Position           win.POINT
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// EnumDisplayMonitors walks every display monitor, invoking fnEnum (a
// syscall.NewCallback value) once per monitor with dwData passed through.
func EnumDisplayMonitors(hdc win.HDC, rcClip *win.RECT, fnEnum, dwData uintptr) bool {
	ret, _, _ := procEnumDisplayMonitors.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(rcClip)),
		fnEnum,
		dwData,
	)
	return ret != 0
}

// IsWindow reports whether hwnd identifies an existing window.
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// GetMonitorInfoEx queries extended monitor info, including the device path.
func GetMonitorInfoEx(hMonitor win.HMONITOR) (MONITORINFOEX, bool) {
	var mi MONITORINFOEX
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	ok := win.GetMonitorInfo(hMonitor, &mi.MONITORINFO)
	return mi, ok
}

// CurrentDisplaySettings reads the active display mode for a device path.
func CurrentDisplaySettings(device *uint16) (DEVMODE, bool) {
	var dm DEVMODE
	dm.Size = uint16(unsafe.Sizeof(dm))
	ret, _, _ := procEnumDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(ENUM_CURRENT_SETTINGS),
		uintptr(unsafe.Pointer(&dm)),
		0,
	)
	return dm, ret != 0
}

// StageDisplaySettings registers a new mode for one device in the registry
// without applying it. A later CommitDisplaySettings applies every staged
// change at once.
func StageDisplaySettings(device *uint16, dm *DEVMODE, flags uint32) int32 {
	ret, _, _ := procChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(unsafe.Pointer(dm)),
		0,
		uintptr(flags),
		0,
	)
	return int32(ret)
}

// CommitDisplaySettings applies all staged mode changes as one transaction.
func CommitDisplaySettings() int32 {
	ret, _, _ := procChangeDisplaySettingsExW.Call(0, 0, 0, 0, 0)
	return int32(ret)
}

// MonitorDPI returns the effective DPI for a monitor. ok is false when
// shcore.dll or GetDpiForMonitor is unavailable or the call fails.
func MonitorDPI(hMonitor win.HMONITOR) (uint32, bool) {
	if err := procGetDpiForMonitor.Find(); err != nil {
		return 0, false
	}
	var dpiX, dpiY uint32
	hr, _, _ := procGetDpiForMonitor.Call(
		uintptr(hMonitor),
		uintptr(MDT_EFFECTIVE_DPI),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if int32(hr) != 0 {
		return 0, false
	}
	// The X and Y values are documented to be identical for MDT_EFFECTIVE_DPI.
	return dpiX, true
}
