package cloud

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// Photo particle placement: somewhere in a radius-6 ball around the origin,
// forced to a size that reads without dominating.
const (
	photoRadius   = 6.0
	photoSize     = 6.0
	maxPhotoCount = 5
)

// Options carries the user-facing knobs the assembler combines with a shape
// bundle.
type Options struct {
	Mode       Mode
	Base       RGB
	Secondary  RGB
	PhotoCount int
}

// colorBearing lists the shapes whose bundle colors always win over the
// selected color mode.
func colorBearing(id shape.ID) bool {
	switch id {
	case shape.Flag, shape.Tree, shape.Image, shape.Text:
		return true
	}
	return false
}

// Assemble fills the point set from a freshly generated bundle. It runs on
// every discrete change (shape, pixels, color scheme, photo album), never
// per frame, and touches only the first ActiveCount slots. Persistent
// randomness is left alone so the same shape re-assembles identically.
func (ps *PointSet) Assemble(rng *rand.Rand, id shape.ID, b shape.Bundle, opts Options) {
	baseCount := min(b.Count, Capacity)

	copy(ps.Positions[:3*baseCount], b.Positions)
	for i := range baseCount {
		if b.SizeOverrides != nil {
			ps.SizeOverrides[i] = b.SizeOverrides[i]
		} else {
			ps.SizeOverrides[i] = 0
		}
		if b.TextureEligible != nil {
			ps.TextureEligible[i] = b.TextureEligible[i]
		} else {
			ps.TextureEligible[i] = 1
		}
		ps.PhotoFlags[i] = 0
		ps.TextureIndices[i] = 0
	}

	if b.Colors != nil && (colorBearing(id) || opts.Mode == ImageColors) {
		copy(ps.Colors[:3*baseCount], b.Colors)
	} else {
		ps.synthesizeColors(rng, baseCount, opts)
	}

	photos := min(max(opts.PhotoCount, 0), maxPhotoCount)
	for k := range photos {
		i := baseCount + k
		if i >= Capacity {
			break
		}
		z := 2*rng.Float32() - 1
		theta := 2 * math32.Pi * rng.Float32()
		rxy := math32.Sqrt(1 - z*z)
		r := math32.Cbrt(rng.Float32()) * photoRadius
		ps.Positions[3*i+0] = r * rxy * math32.Cos(theta)
		ps.Positions[3*i+1] = r * rxy * math32.Sin(theta)
		ps.Positions[3*i+2] = r * z
		ps.Colors[3*i+0] = 1
		ps.Colors[3*i+1] = 1
		ps.Colors[3*i+2] = 1
		ps.SizeOverrides[i] = photoSize
		ps.TextureEligible[i] = 1
		ps.PhotoFlags[i] = 1
		ps.TextureIndices[i] = float32(k)
	}

	ps.BaseCount = baseCount
	ps.ActiveCount = min(baseCount+photos, Capacity)
}

// synthesizeColors fills [0, baseCount) from the selected mode. Gradient is
// keyed on the point index, not position, so it is stable across
// re-assemblies of the same shape. An image mode without bundle colors has
// nothing to show, so it degrades to mono.
func (ps *PointSet) synthesizeColors(rng *rand.Rand, baseCount int, opts Options) {
	switch opts.Mode {
	case Gradient:
		for i := range baseCount {
			t := float32(i) / float32(baseCount)
			c := lerp(opts.Base, opts.Secondary, t)
			ps.Colors[3*i+0] = c.R
			ps.Colors[3*i+1] = c.G
			ps.Colors[3*i+2] = c.B
		}
	case Rainbow:
		for i := range baseCount {
			c := hue(rng.Float32() * 360)
			ps.Colors[3*i+0] = c.R
			ps.Colors[3*i+1] = c.G
			ps.Colors[3*i+2] = c.B
		}
	default:
		for i := range baseCount {
			ps.Colors[3*i+0] = opts.Base.R
			ps.Colors[3*i+1] = opts.Base.G
			ps.Colors[3*i+2] = opts.Base.B
		}
	}
}
