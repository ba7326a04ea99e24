package gesture

import "github.com/chewxy/math32"

// DefaultSmoothing is the per-frame blend factor the render loop uses. Low
// enough to swallow sample jitter, high enough that a gesture lands within
// half a second at 60 fps.
const DefaultSmoothing = 0.1

// Smoother blends raw gesture samples into the displayed state, one step per
// frame. Each continuous channel approaches its target by factor per step,
// so a step input converges monotonically and never overshoots. Rotation is
// blended along the shorter arc.
type Smoother struct {
	factor float32
	state  State
}

// NewSmoother returns a smoother starting at the neutral state. Factors
// outside (0, 1] fall back to DefaultSmoothing.
func NewSmoother(factor float32) *Smoother {
	if factor <= 0 || factor > 1 {
		factor = DefaultSmoothing
	}
	return &Smoother{factor: factor, state: Neutral()}
}

// Advance moves the displayed state one step toward target and returns it.
// Discrete flags are not smoothed; they pass through as sampled.
func (s *Smoother) Advance(target State) State {
	s.state.Expansion += (target.Expansion - s.state.Expansion) * s.factor
	s.state.Zoom += (target.Zoom - s.state.Zoom) * s.factor
	s.state.Rotation += wrapAngle(target.Rotation-s.state.Rotation) * s.factor
	s.state.PeaceSign = target.PeaceSign
	s.state.Namaste = target.Namaste
	return s.state
}

// Displayed returns the current smoothed state without advancing it.
func (s *Smoother) Displayed() State {
	return s.state
}

// Reset snaps the displayed state back to neutral.
func (s *Smoother) Reset() {
	s.state = Neutral()
}

// wrapAngle maps an angle difference into (-pi, pi] so blending always takes
// the shorter way around.
func wrapAngle(diff float32) float32 {
	for diff > math32.Pi {
		diff -= 2 * math32.Pi
	}
	for diff <= -math32.Pi {
		diff += 2 * math32.Pi
	}
	return diff
}
