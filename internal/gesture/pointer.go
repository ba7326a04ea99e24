package gesture

import "github.com/chewxy/math32"

// Pointer emulation tuning. The goal is that a lazy mouse feels like a lazy
// hand: a slow drag turns the cloud gently, a flick bursts it open.
const (
	// dragRotateGain converts horizontal drag pixels to radians.
	dragRotateGain = 0.008

	// burstVelocity is the cursor speed, in pixels per second, that maps
	// to a full expansion burst.
	burstVelocity = 900.0

	// velocitySmoothing is the producer-side blend applied to raw cursor
	// speed before it becomes the expansion signal.
	velocitySmoothing = 0.25

	// zoomStep scales one scroll unit; zoom stays within [minZoom, maxZoom].
	zoomStep = 0.1
	minZoom  = 0.3
	maxZoom  = 3.0
)

// Sample is one frame of window input, gathered by the host loop.
type Sample struct {
	X, Y     float64
	Dragging bool
	Scroll   float64
	Peace    bool
	Namaste  bool
}

// PointerSource emulates the gesture signal from mouse input so the cloud is
// fully drivable without a camera: drag to rotate, flick to expand, scroll
// to zoom, P/N keys for the discrete poses. It publishes into a Cell, which
// makes it a drop-in Source for the render loop.
type PointerSource struct {
	cell Cell

	haveLast  bool
	lastX     float64
	lastY     float64
	smoothVel float32
	state     State
}

// NewPointerSource returns a source resting at the neutral state.
func NewPointerSource() *PointerSource {
	p := &PointerSource{state: Neutral()}
	p.cell.Store(p.state)
	return p
}

// Track folds one input sample into the gesture signal and publishes it.
// dt is the seconds since the previous sample; non-positive steps only
// update the discrete flags and zoom.
func (p *PointerSource) Track(s Sample, dt float32) {
	p.state.PeaceSign = s.Peace
	p.state.Namaste = s.Namaste
	if dt > 0 {
		if p.haveLast {
			dx := float32(s.X - p.lastX)
			dy := float32(s.Y - p.lastY)
			speed := math32.Sqrt(dx*dx+dy*dy) / dt
			p.smoothVel += (speed - p.smoothVel) * velocitySmoothing
			p.state.Expansion = math32.Min(p.smoothVel/burstVelocity, 1)

			if s.Dragging {
				p.state.Rotation += dx * dragRotateGain
			}
		}
		p.lastX, p.lastY = s.X, s.Y
		p.haveLast = true
	}

	if s.Scroll != 0 {
		p.state.Zoom += float32(s.Scroll) * zoomStep
		p.state.Zoom = math32.Max(minZoom, math32.Min(maxZoom, p.state.Zoom))
	}

	p.cell.Store(p.state)
}

// Latest implements Source.
func (p *PointerSource) Latest() State {
	return p.cell.Latest()
}

// Reset drops accumulated rotation, zoom and velocity back to neutral. The
// next sample starts a fresh motion estimate.
func (p *PointerSource) Reset() {
	peace, namaste := p.state.PeaceSign, p.state.Namaste
	p.state = Neutral()
	p.state.PeaceSign = peace
	p.state.Namaste = namaste
	p.smoothVel = 0
	p.haveLast = false
	p.cell.Store(p.state)
}
