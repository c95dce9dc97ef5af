// Package wmutil exposes Windows display metadata (geometry, refresh rate,
// scale factor, primary status) and lets callers change which monitor is the
// primary display.
//
// Every operation is a stateless, synchronous call against the live OS
// display configuration. Monitor values are snapshots: changing the
// configuration never updates an existing value, and callers re-enumerate to
// observe the result. The device path (Monitor.Name) is the durable identity
// key; monitor handles go stale between enumerations and must not be compared
// across snapshots.
//
// On platforms other than Windows every operation returns ErrUnsupported.
package wmutil
