package wmutil

import "fmt"

// Rect is an axis-aligned rectangle in virtual-desktop coordinates.
// X and Y can be negative for displays left of or above the primary.
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// DistanceTo returns the squared distance from the point to the closest
// point of the rectangle. Zero means the point is inside.
func (r Rect) DistanceTo(x, y int) int {
	dx := axisDistance(x, r.X, r.W)
	dy := axisDistance(y, r.Y, r.H)
	return dx*dx + dy*dy
}

// Translate returns a copy of the rectangle shifted by the given vector.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// axisDistance returns the distance from v to the interval [start, start+extent).
func axisDistance(v, start, extent int) int {
	if v < start {
		return start - v
	}
	if v >= start+extent {
		return v - (start + extent - 1)
	}
	return 0
}

// Monitor is a point-in-time snapshot of one attached display.
//
// Name is the durable identity key. Handle is only valid for the enumeration
// that produced it and must never be compared across snapshots.
type Monitor struct {
	Handle                uintptr `json:"handle" yaml:"handle"`
	Name                  string  `json:"name" yaml:"name"`
	Bounds                Rect    `json:"bounds" yaml:"bounds"`
	WorkArea              Rect    `json:"work_area" yaml:"work_area"`
	RefreshRateMillihertz int     `json:"refresh_rate_millihertz" yaml:"refresh_rate_millihertz"`
	ScaleFactor           float64 `json:"scale_factor" yaml:"scale_factor"`
	Primary               bool    `json:"primary" yaml:"primary"`
}

// Equal reports whether two snapshots refer to the same display.
// Only Name participates; handles are not stable across enumerations.
func (m Monitor) Equal(other Monitor) bool {
	return m.Name == other.Name
}

// String renders a one-line description of the monitor.
func (m Monitor) String() string {
	s := fmt.Sprintf("%s %dx%d%+d%+d", m.Name, m.Bounds.W, m.Bounds.H, m.Bounds.X, m.Bounds.Y)
	if m.RefreshRateMillihertz > 0 {
		s += fmt.Sprintf(" %d.%03dHz", m.RefreshRateMillihertz/1000, m.RefreshRateMillihertz%1000)
	}
	if m.Primary {
		s += " (primary)"
	}
	return s
}

// FindByName returns the monitor whose device path matches name.
func FindByName(monitors []Monitor, name string) (Monitor, bool) {
	for _, m := range monitors {
		if m.Name == name {
			return m, true
		}
	}
	return Monitor{}, false
}

// FindPrimary returns the monitor flagged as primary. If the OS reported no
// primary (a transient state during mode changes), the first monitor stands in.
func FindPrimary(monitors []Monitor) (Monitor, bool) {
	for _, m := range monitors {
		if m.Primary {
			return m, true
		}
	}
	if len(monitors) > 0 {
		return monitors[0], true
	}
	return Monitor{}, false
}

// MonitorAt returns the monitor whose rectangle contains the point, or the
// geometrically nearest monitor when the point lies outside every rectangle.
// Ties, including overlapping rectangles from cloned displays, go to the
// first monitor in enumeration order. ok is false only for an empty slice.
func MonitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, m := range monitors {
		if m.Bounds.Contains(x, y) {
			return m, true
		}
	}
	var nearest Monitor
	best := -1
	for _, m := range monitors {
		if d := m.Bounds.DistanceTo(x, y); best < 0 || d < best {
			nearest = m
			best = d
		}
	}
	if best < 0 {
		return Monitor{}, false
	}
	return nearest, true
}

// snapshot accumulates monitors during one enumeration pass.
type snapshot struct {
	monitors []Monitor
	err      error
}

// result interprets a finished enumeration pass. An error recorded while
// visiting a monitor wins even when the OS call reports overall success: a
// callback abort is not guaranteed to surface as a failed return, and a
// partial list must never be mistaken for a complete snapshot. callErr
// supplies the OS error detail when the call itself failed.
func (s *snapshot) result(ok bool, callErr error) ([]Monitor, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !ok {
		return nil, fmt.Errorf("%w: EnumDisplayMonitors: %v", ErrQueryFailed, callErr)
	}
	return s.monitors, nil
}

// shiftLayout returns copies of all monitors translated by the same vector,
// preserving the relative arrangement.
func shiftLayout(monitors []Monitor, dx, dy int) []Monitor {
	out := make([]Monitor, len(monitors))
	for i, m := range monitors {
		m.Bounds = m.Bounds.Translate(dx, dy)
		m.WorkArea = m.WorkArea.Translate(dx, dy)
		out[i] = m
	}
	return out
}
