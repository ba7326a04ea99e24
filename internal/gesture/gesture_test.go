package gesture

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeutralDefaults(t *testing.T) {
	n := Neutral()
	assert.Equal(t, float32(0), n.Expansion)
	assert.Equal(t, float32(0), n.Rotation)
	assert.Equal(t, float32(1), n.Zoom)
	assert.False(t, n.PeaceSign)
	assert.False(t, n.Namaste)
}

func TestCellLatestWins(t *testing.T) {
	var c Cell
	assert.Equal(t, Neutral(), c.Latest(), "empty cell reads neutral")

	c.Store(State{Expansion: 0.2, Zoom: 1})
	c.Store(State{Expansion: 0.9, Zoom: 2})
	got := c.Latest()
	assert.Equal(t, float32(0.9), got.Expansion)
	assert.Equal(t, float32(2), got.Zoom)
}

func TestCellConcurrentReads(t *testing.T) {
	var c Cell
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 1000 {
			c.Store(State{Expansion: float32(i) / 1000, Zoom: 1})
		}
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 1000 {
			s := c.Latest()
			assert.GreaterOrEqual(t, s.Expansion, float32(0))
			assert.LessOrEqual(t, s.Expansion, float32(1))
		}
	}()
	<-done
	wg.Wait()
}

func TestPointerSourceExpansionFromSpeed(t *testing.T) {
	p := NewPointerSource()
	assert.Equal(t, Neutral(), p.Latest())

	// Establish a position, then flick fast to the right.
	p.Track(Sample{X: 0, Y: 0}, 1.0/60)
	for i := range 30 {
		p.Track(Sample{X: float64((i + 1) * 40), Y: 0}, 1.0/60)
	}
	fast := p.Latest().Expansion
	assert.Greater(t, fast, float32(0.5), "a flick should read as a burst")
	assert.LessOrEqual(t, fast, float32(1))

	// Hold still and the burst dies down.
	for range 60 {
		p.Track(Sample{X: 1240, Y: 0}, 1.0/60)
	}
	assert.Less(t, p.Latest().Expansion, float32(0.05))
}

func TestPointerSourceDragRotates(t *testing.T) {
	p := NewPointerSource()
	p.Track(Sample{X: 100, Y: 100}, 1.0/60)
	p.Track(Sample{X: 160, Y: 100, Dragging: true}, 1.0/60)
	assert.InDelta(t, 60*dragRotateGain, p.Latest().Rotation, 1e-5)

	// Moving without the button held leaves rotation alone.
	p.Track(Sample{X: 400, Y: 100}, 1.0/60)
	assert.InDelta(t, 60*dragRotateGain, p.Latest().Rotation, 1e-5)
}

func TestPointerSourceZoomClamped(t *testing.T) {
	p := NewPointerSource()
	for range 100 {
		p.Track(Sample{Scroll: 5}, 1.0/60)
	}
	assert.InDelta(t, maxZoom, p.Latest().Zoom, 1e-5)

	for range 100 {
		p.Track(Sample{Scroll: -5}, 1.0/60)
	}
	assert.InDelta(t, minZoom, p.Latest().Zoom, 1e-5)
}

func TestPointerSourceFlagsPassThrough(t *testing.T) {
	p := NewPointerSource()
	p.Track(Sample{Peace: true}, 0)
	assert.True(t, p.Latest().PeaceSign)
	assert.False(t, p.Latest().Namaste)

	p.Track(Sample{Namaste: true}, 0)
	assert.False(t, p.Latest().PeaceSign)
	assert.True(t, p.Latest().Namaste)
}

func TestPointerSourceReset(t *testing.T) {
	p := NewPointerSource()
	p.Track(Sample{X: 0, Y: 0, Scroll: 8}, 1.0/60)
	p.Track(Sample{X: 300, Y: 0, Dragging: true, Namaste: true}, 1.0/60)
	require.NotEqual(t, Neutral().Zoom, p.Latest().Zoom)
	require.NotZero(t, p.Latest().Rotation)

	p.Reset()
	got := p.Latest()
	assert.Equal(t, float32(0), got.Expansion)
	assert.Equal(t, float32(0), got.Rotation)
	assert.Equal(t, float32(1), got.Zoom)
	// The held pose survives the reset so edge detection still works.
	assert.True(t, got.Namaste)

	// No stale cursor: the first sample after a reset sets no expansion.
	p.Track(Sample{X: 900, Y: 900}, 1.0/60)
	assert.Equal(t, float32(0), p.Latest().Expansion)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.2, wrapAngle(0.2), 1e-6)
	assert.InDelta(t, -0.283185, wrapAngle(6.0), 1e-5)
	assert.InDelta(t, 0.283185, wrapAngle(-6.0), 1e-5)
	assert.InDelta(t, math32.Pi, wrapAngle(math32.Pi), 1e-6)
	assert.InDelta(t, math32.Pi, wrapAngle(-math32.Pi), 1e-6)
}
