// Package gesture carries the hand-gesture signal from whatever produces it
// (camera pipeline, pointer emulation, tests) to the render loop. Producers
// overwrite a latest-value cell; the consumer polls it once per frame and
// smooths what it reads.
package gesture

import "sync/atomic"

// State is one gesture sample. Expansion is a 0..1 burst amount, Rotation an
// absolute angle in radians, Zoom a scale multiplier. The two discrete flags
// report recognized hand poses.
type State struct {
	Expansion float32
	Rotation  float32
	Zoom      float32
	PeaceSign bool
	Namaste   bool
}

// Neutral is the state rendered when no gesture source is available.
func Neutral() State {
	return State{Zoom: 1}
}

// Source hands out the most recent gesture sample. Implementations must be
// safe to call from the render loop while a producer updates concurrently.
type Source interface {
	Latest() State
}

// Cell is a single-writer, single-reader latest-value cell. Stores overwrite;
// there is no queue and no backpressure, the reader only ever wants the
// newest sample.
type Cell struct {
	v atomic.Pointer[State]
}

// Store publishes s as the newest sample.
func (c *Cell) Store(s State) {
	c.v.Store(&s)
}

// Latest returns the newest sample, or the neutral state when nothing has
// been stored yet.
func (c *Cell) Latest() State {
	if s := c.v.Load(); s != nil {
		return *s
	}
	return Neutral()
}
