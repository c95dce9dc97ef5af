package wmutil

import "errors"

var (
	// ErrQueryFailed implies the OS display query itself failed.
	ErrQueryFailed = errors.New("display query failed")

	// ErrNoDisplays implies the query succeeded but the OS reported zero displays.
	ErrNoDisplays = errors.New("no displays attached")

	// ErrInvalidWindowHandle implies a window handle does not refer to a live window.
	ErrInvalidWindowHandle = errors.New("window handle does not refer to a live window")

	// ErrUnknownMonitor implies a monitor name does not match any attached display.
	ErrUnknownMonitor = errors.New("no attached display matches the monitor name")

	// ErrUnsupported implies the current platform has no display backend.
	ErrUnsupported = errors.New("display operations are only supported on Windows")
)
