package cloud

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(4, 2))
}

func assembleShape(t *testing.T, id shape.ID, pix *shape.PixelBuffer, opts Options) *PointSet {
	t.Helper()
	rng := testRand()
	ps := NewPointSet(rng)
	ps.Assemble(rng, id, shape.Generate(rng, id, pix), opts)
	return ps
}

func TestAssembleDefaults(t *testing.T) {
	ps := assembleShape(t, shape.Sphere, nil, Options{Mode: Mono, Base: RGB{R: 1}})
	assert.Equal(t, shape.ProceduralCount, ps.BaseCount)
	assert.Equal(t, shape.ProceduralCount, ps.ActiveCount)
	for i := range ps.ActiveCount {
		assert.Equal(t, float32(0), ps.SizeOverrides[i])
		assert.Equal(t, float32(1), ps.TextureEligible[i])
		assert.Equal(t, float32(0), ps.PhotoFlags[i])
		assert.Equal(t, float32(1), ps.Colors[3*i])
		assert.Equal(t, float32(0), ps.Colors[3*i+1])
	}
}

// The reference scenario: heart shape, gradient #ff0055 -> #4400ff.
func TestGradientHeartScenario(t *testing.T) {
	base := MustHex("#ff0055")
	secondary := MustHex("#4400ff")
	ps := assembleShape(t, shape.Heart, nil, Options{Mode: Gradient, Base: base, Secondary: secondary})
	require.Equal(t, 15000, ps.ActiveCount)

	// Heart envelope: the scaled parametric curve stays inside |x|,|y| < 9.
	for i := range ps.ActiveCount {
		assert.Less(t, math32.Abs(ps.Positions[3*i]), float32(9))
		assert.Less(t, math32.Abs(ps.Positions[3*i+1]), float32(9))
	}

	assert.InDelta(t, 1.0, ps.Colors[0], 1e-6)
	assert.InDelta(t, 0.0, ps.Colors[1], 1e-6)
	assert.InDelta(t, 0.333, ps.Colors[2], 1e-3)

	last := ps.ActiveCount - 1
	assert.InDelta(t, 0.267, ps.Colors[3*last], 1e-3)
	assert.InDelta(t, 0.0, ps.Colors[3*last+1], 1e-6)
	assert.InDelta(t, 1.0, ps.Colors[3*last+2], 1e-3)

	// Interpolation is monotone along the index: red falls, blue rises.
	for i := 1; i < ps.ActiveCount; i++ {
		assert.LessOrEqual(t, ps.Colors[3*i], ps.Colors[3*(i-1)])
		assert.GreaterOrEqual(t, ps.Colors[3*i+2], ps.Colors[3*(i-1)+2])
	}
}

func TestGradientDeterministic(t *testing.T) {
	opts := Options{Mode: Gradient, Base: RGB{R: 1}, Secondary: RGB{B: 1}}
	a := assembleShape(t, shape.Sphere, nil, opts)
	b := assembleShape(t, shape.Sphere, nil, opts)
	assert.Equal(t, a.Colors[:3*a.ActiveCount], b.Colors[:3*b.ActiveCount])
}

func TestRainbowFullSaturation(t *testing.T) {
	ps := assembleShape(t, shape.Sphere, nil, Options{Mode: Rainbow})
	for i := range ps.ActiveCount {
		r, g, b := ps.Colors[3*i], ps.Colors[3*i+1], ps.Colors[3*i+2]
		hi := math32.Max(r, math32.Max(g, b))
		lo := math32.Min(r, math32.Min(g, b))
		assert.InDelta(t, 1.0, hi, 1e-4, "full value at point %d", i)
		assert.InDelta(t, 0.0, lo, 1e-4, "full saturation at point %d", i)
	}
}

func TestBundleColorsWinForColorBearingShapes(t *testing.T) {
	ps := assembleShape(t, shape.Flag, nil, Options{Mode: Mono, Base: RGB{B: 1}})
	// Mono blue must not override the flag's red field.
	red := 0
	for i := range ps.ActiveCount {
		if ps.Colors[3*i] > 0.8 {
			red++
		}
	}
	assert.Greater(t, red, ps.ActiveCount/2)
}

func TestBundleColorsIgnoredForOtherShapes(t *testing.T) {
	b := shape.Bundle{
		Positions: make([]float32, 12),
		Colors:    []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		Count:     4,
	}
	rng := testRand()
	ps := NewPointSet(rng)

	ps.Assemble(rng, shape.Sphere, b, Options{Mode: Mono, Base: RGB{G: 1}})
	assert.Equal(t, float32(0), ps.Colors[0])
	assert.Equal(t, float32(1), ps.Colors[1])

	// Image color mode flips the precedence back to the bundle.
	ps.Assemble(rng, shape.Sphere, b, Options{Mode: ImageColors, Base: RGB{G: 1}})
	assert.Equal(t, float32(0.5), ps.Colors[0])
}

// The reference scenario: a 2x2 opaque red buffer drawn as the image shape.
func TestImagePipelineScenario(t *testing.T) {
	pix := &shape.PixelBuffer{Width: 2, Height: 2, Pix: []uint8{
		255, 0, 0, 255,
		255, 0, 0, 255,
		255, 0, 0, 255,
		255, 0, 0, 255,
	}}
	ps := assembleShape(t, shape.Image, pix, Options{Mode: Mono, Base: RGB{B: 1}})
	require.Equal(t, 4, ps.ActiveCount)
	for i := range ps.ActiveCount {
		assert.Equal(t, float32(1), ps.Colors[3*i])
		assert.Equal(t, float32(0), ps.Colors[3*i+1])
		assert.Equal(t, float32(0), ps.Colors[3*i+2])
		assert.Less(t, math32.Abs(ps.Positions[3*i]), float32(8))
		assert.Less(t, math32.Abs(ps.Positions[3*i+1]), float32(8))
	}
}

func TestPhotoAppend(t *testing.T) {
	ps := assembleShape(t, shape.Sphere, nil, Options{Mode: Mono, Base: RGB{R: 1}, PhotoCount: 3})
	require.Equal(t, ps.BaseCount+3, ps.ActiveCount)
	for k := range 3 {
		i := ps.BaseCount + k
		assert.Equal(t, float32(1), ps.PhotoFlags[i])
		assert.Equal(t, float32(1), ps.TextureEligible[i])
		assert.Equal(t, float32(k), ps.TextureIndices[i])
		assert.Equal(t, float32(photoSize), ps.SizeOverrides[i])
		assert.Equal(t, []float32{1, 1, 1}, ps.Colors[3*i:3*i+3])

		x, y, z := ps.Positions[3*i], ps.Positions[3*i+1], ps.Positions[3*i+2]
		assert.LessOrEqual(t, math32.Sqrt(x*x+y*y+z*z), float32(photoRadius)+1e-4)
	}
}

func TestPhotoCountClamped(t *testing.T) {
	ps := assembleShape(t, shape.Sphere, nil, Options{PhotoCount: 9})
	assert.Equal(t, ps.BaseCount+maxPhotoCount, ps.ActiveCount)

	ps = assembleShape(t, shape.Sphere, nil, Options{PhotoCount: -2})
	assert.Equal(t, ps.BaseCount, ps.ActiveCount)
}

func TestActiveCountNeverExceedsCapacity(t *testing.T) {
	b := shape.Bundle{
		Positions: make([]float32, 3*Capacity),
		Count:     Capacity,
	}
	rng := testRand()
	ps := NewPointSet(rng)
	ps.Assemble(rng, shape.Sphere, b, Options{PhotoCount: 5})
	assert.Equal(t, Capacity, ps.BaseCount)
	assert.Equal(t, Capacity, ps.ActiveCount)
}

func TestPersistentRandomnessSurvivesAssembly(t *testing.T) {
	rng := testRand()
	ps := NewPointSet(rng)
	sizes := append([]float32(nil), ps.RandomSizes...)
	rots := append([]float32(nil), ps.RandomRotations...)

	for i := range Capacity {
		assert.GreaterOrEqual(t, ps.RandomSizes[i], float32(minRandomSize))
		assert.Less(t, ps.RandomSizes[i], float32(maxRandomSize))
		assert.GreaterOrEqual(t, ps.RandomRotations[i], float32(0))
		assert.Less(t, ps.RandomRotations[i], float32(2*math32.Pi))
	}

	ps.Assemble(rng, shape.Galaxy, shape.Generate(rng, shape.Galaxy, nil), Options{Mode: Rainbow})
	ps.Assemble(rng, shape.Tree, shape.Generate(rng, shape.Tree, nil), Options{Mode: Mono})
	assert.Equal(t, sizes, ps.RandomSizes)
	assert.Equal(t, rots, ps.RandomRotations)
}
