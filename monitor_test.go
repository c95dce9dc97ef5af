package wmutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoMonitorLayout mirrors a side-by-side arrangement with the secondary
// display up and to the left of the primary.
func twoMonitorLayout() []Monitor {
	return []Monitor{
		{Handle: 101, Name: `\\.\DISPLAY1`, Bounds: Rect{X: -3840, Y: -418, W: 1920, H: 1080}},
		{Handle: 102, Name: `\\.\DISPLAY2`, Bounds: Rect{X: 0, Y: 0, W: 3440, H: 1440}, Primary: true},
	}
}

// TestMonitorEqual_NameOnly verifies equality follows Name and ignores handles.
func TestMonitorEqual_NameOnly(t *testing.T) {
	a := Monitor{Handle: 1, Name: `\\.\DISPLAY1`, Bounds: Rect{W: 1920, H: 1080}}
	b := Monitor{Handle: 2, Name: `\\.\DISPLAY1`, Bounds: Rect{X: 100, W: 2560, H: 1440}}
	c := Monitor{Handle: 1, Name: `\\.\DISPLAY2`}

	assert.True(t, a.Equal(b), "same name, differing handles and geometry")
	assert.False(t, a.Equal(c), "same handle must not imply equality")
}

// TestRectContains_ClosedOpen verifies inclusive top-left and exclusive bottom-right edges.
func TestRectContains_ClosedOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 4}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior", 12, 22, true},
		{"top-left corner inclusive", 10, 20, true},
		{"right edge exclusive", 15, 22, false},
		{"bottom edge exclusive", 12, 24, false},
		{"last contained point", 14, 23, true},
		{"left of rect", 9, 22, false},
		{"above rect", 12, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

// TestRectDistanceTo verifies squared rectangle distances from sample points.
func TestRectDistanceTo(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.Zero(t, r.DistanceTo(5, 5), "interior point")
	assert.Zero(t, r.DistanceTo(0, 0), "corner point")
	assert.Equal(t, 9, r.DistanceTo(-3, 5), "three columns left")
	assert.Equal(t, 4, r.DistanceTo(5, 11), "two rows below the last contained row")
	assert.Equal(t, 8, r.DistanceTo(-2, -2), "diagonal")
}

// TestMonitorAt_Inside verifies points inside a rectangle resolve to that monitor.
func TestMonitorAt_Inside(t *testing.T) {
	monitors := twoMonitorLayout()

	m, ok := MonitorAt(monitors, -3000, -100)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY1`, m.Name)

	m, ok = MonitorAt(monitors, 1720, 700)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY2`, m.Name)
}

// TestMonitorAt_NearestFallback verifies out-of-bounds points resolve to the nearest monitor.
func TestMonitorAt_NearestFallback(t *testing.T) {
	monitors := twoMonitorLayout()

	// Far right of the primary: outside both rectangles, nearest to DISPLAY2.
	m, ok := MonitorAt(monitors, 5000, 700)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY2`, m.Name)

	// Far left: nearest to DISPLAY1.
	m, ok = MonitorAt(monitors, -9000, -100)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY1`, m.Name)
}

// TestMonitorAt_CloneTieBreak verifies overlapping rectangles resolve to the first monitor.
func TestMonitorAt_CloneTieBreak(t *testing.T) {
	clones := []Monitor{
		{Handle: 1, Name: `\\.\DISPLAY1`, Bounds: Rect{W: 1920, H: 1080}, Primary: true},
		{Handle: 2, Name: `\\.\DISPLAY2`, Bounds: Rect{W: 1920, H: 1080}},
	}

	m, ok := MonitorAt(clones, 960, 540)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY1`, m.Name, "first in enumeration order wins for overlapping rectangles")
}

// TestMonitorAt_EquidistantTieBreak verifies equidistant rectangles resolve to the first monitor.
func TestMonitorAt_EquidistantTieBreak(t *testing.T) {
	monitors := []Monitor{
		{Name: `\\.\DISPLAY1`, Bounds: Rect{X: 0, Y: 0, W: 10, H: 10}},
		{Name: `\\.\DISPLAY2`, Bounds: Rect{X: 0, Y: 21, W: 10, H: 10}},
	}

	// (5, 15) is six rows past DISPLAY1's last row and six rows above DISPLAY2.
	m, ok := MonitorAt(monitors, 5, 15)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY1`, m.Name)
}

// TestMonitorAt_Empty verifies lookup reports failure for an empty snapshot.
func TestMonitorAt_Empty(t *testing.T) {
	_, ok := MonitorAt(nil, 0, 0)
	assert.False(t, ok)
}

// TestFindByName verifies lookup by device path.
func TestFindByName(t *testing.T) {
	monitors := twoMonitorLayout()

	m, ok := FindByName(monitors, `\\.\DISPLAY2`)
	require.True(t, ok)
	assert.True(t, m.Primary)

	_, ok = FindByName(monitors, `\\.\DISPLAY9`)
	assert.False(t, ok)
}

// TestFindPrimary verifies exactly one monitor is primary and is returned.
func TestFindPrimary(t *testing.T) {
	monitors := twoMonitorLayout()

	m, ok := FindPrimary(monitors)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY2`, m.Name)

	for i := range monitors {
		if monitors[i].Primary {
			assert.Equal(t, m.Name, monitors[i].Name, "exactly one monitor is primary")
		}
	}
}

// TestFindPrimary_NoneFlagged verifies the first monitor stands in when none is flagged.
func TestFindPrimary_NoneFlagged(t *testing.T) {
	monitors := []Monitor{
		{Name: `\\.\DISPLAY1`, Bounds: Rect{X: -1920, W: 1920, H: 1080}},
		{Name: `\\.\DISPLAY2`, Bounds: Rect{W: 1920, H: 1080}},
	}

	m, ok := FindPrimary(monitors)
	require.True(t, ok)
	assert.Equal(t, `\\.\DISPLAY1`, m.Name, "first monitor stands in when none is flagged")

	_, ok = FindPrimary(nil)
	assert.False(t, ok)
}

// TestShiftLayout_NewPrimaryAtOrigin verifies the target lands at the origin and the rest shift with it.
func TestShiftLayout_NewPrimaryAtOrigin(t *testing.T) {
	monitors := twoMonitorLayout()
	target, ok := FindByName(monitors, `\\.\DISPLAY1`)
	require.True(t, ok)

	shifted := shiftLayout(monitors, -target.Bounds.X, -target.Bounds.Y)

	a, ok := FindByName(shifted, `\\.\DISPLAY1`)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 1920, H: 1080}, a.Bounds)

	b, ok := FindByName(shifted, `\\.\DISPLAY2`)
	require.True(t, ok)
	assert.Equal(t, Rect{X: 3840, Y: 418, W: 3440, H: 1440}, b.Bounds)
}

// TestShiftLayout_PreservesRelativeOffsets verifies translation keeps the relative arrangement.
func TestShiftLayout_PreservesRelativeOffsets(t *testing.T) {
	monitors := twoMonitorLayout()
	shifted := shiftLayout(monitors, 3840, 418)

	wantDX := monitors[1].Bounds.X - monitors[0].Bounds.X
	wantDY := monitors[1].Bounds.Y - monitors[0].Bounds.Y
	assert.Equal(t, wantDX, shifted[1].Bounds.X-shifted[0].Bounds.X)
	assert.Equal(t, wantDY, shifted[1].Bounds.Y-shifted[0].Bounds.Y)
}

// TestShiftLayout_ZeroVectorIsIdentity verifies a zero translation changes nothing.
func TestShiftLayout_ZeroVectorIsIdentity(t *testing.T) {
	monitors := twoMonitorLayout()
	shifted := shiftLayout(monitors, 0, 0)
	assert.Equal(t, monitors, shifted)
}

// TestSnapshotResult_RecordedErrorWins verifies an error recorded mid-pass
// surfaces even when the enumeration call reports overall success, and that
// no partial monitor list leaks out alongside it.
func TestSnapshotResult_RecordedErrorWins(t *testing.T) {
	recorded := fmt.Errorf("%w: GetMonitorInfo", ErrQueryFailed)
	snap := snapshot{monitors: []Monitor{{Name: `\\.\DISPLAY1`}}, err: recorded}

	monitors, err := snap.result(true, nil)
	require.ErrorIs(t, err, ErrQueryFailed)
	assert.Nil(t, monitors, "a partial list must not be returned with an error")

	monitors, err = snap.result(false, errors.New("call failed"))
	require.ErrorIs(t, err, recorded, "the recorded error takes precedence over the call error")
	assert.Nil(t, monitors)
}

// TestSnapshotResult_FailedCall verifies a failed enumeration call wraps the
// OS error detail.
func TestSnapshotResult_FailedCall(t *testing.T) {
	var snap snapshot
	_, err := snap.result(false, errors.New("access denied"))
	require.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorContains(t, err, "access denied")
}

// TestSnapshotResult_Success verifies a clean pass hands back the monitors.
func TestSnapshotResult_Success(t *testing.T) {
	snap := snapshot{monitors: twoMonitorLayout()}
	monitors, err := snap.result(true, nil)
	require.NoError(t, err)
	assert.Equal(t, twoMonitorLayout(), monitors)
}

// TestMonitorString verifies the one-line rendering, refresh rate, and primary marker.
func TestMonitorString(t *testing.T) {
	m := Monitor{
		Name:                  `\\.\DISPLAY2`,
		Bounds:                Rect{X: 0, Y: 0, W: 3440, H: 1440},
		RefreshRateMillihertz: 59940,
		Primary:               true,
	}
	assert.Equal(t, `\\.\DISPLAY2 3440x1440+0+0 59.940Hz (primary)`, m.String())

	noRate := Monitor{Name: `\\.\DISPLAY1`, Bounds: Rect{X: -3840, Y: -418, W: 1920, H: 1080}}
	assert.Equal(t, `\\.\DISPLAY1 1920x1080-3840-418`, noRate.String())
}

// TestRectTranslate verifies Translate shifts a copy and leaves the receiver alone.
func TestRectTranslate(t *testing.T) {
	r := Rect{X: -3840, Y: -418, W: 1920, H: 1080}
	got := r.Translate(3840, 418)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 1920, H: 1080}, got)
	assert.Equal(t, Rect{X: -3840, Y: -418, W: 1920, H: 1080}, r, "Translate returns a copy")
}
