package shape

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func maxNorm(b Bundle) float32 {
	var worst float32
	for i := range b.Count {
		x := b.Positions[3*i]
		y := b.Positions[3*i+1]
		z := b.Positions[3*i+2]
		n := math32.Sqrt(x*x + y*y + z*z)
		if n > worst {
			worst = n
		}
	}
	return worst
}

func TestGenerateEveryShape(t *testing.T) {
	for _, id := range All() {
		b := Generate(testRand(), id, nil)
		assert.Equal(t, ProceduralCount, b.Count, "shape %s", id)
		assert.Len(t, b.Positions, 3*ProceduralCount, "shape %s", id)
		assert.LessOrEqual(t, b.Count, MaxPoints, "shape %s", id)
		if b.Colors != nil {
			assert.Len(t, b.Colors, 3*b.Count, "shape %s", id)
		}
		if b.SizeOverrides != nil {
			assert.Len(t, b.SizeOverrides, b.Count, "shape %s", id)
		}
		if b.TextureEligible != nil {
			assert.Len(t, b.TextureEligible, b.Count, "shape %s", id)
		}
		// Formations stay inside a sane envelope around the origin.
		assert.Less(t, maxNorm(b), float32(16), "shape %s", id)
	}
}

func TestGenerateUnknownIDFallsBack(t *testing.T) {
	b := Generate(testRand(), ID(999), nil)
	require.Equal(t, ProceduralCount, b.Count)
	assert.LessOrEqual(t, maxNorm(b), float32(fallbackRadius)+1e-4)
}

func TestGenerateDeterministic(t *testing.T) {
	for _, id := range []ID{Sphere, Galaxy, Tree, Flag} {
		a := Generate(rand.New(rand.NewPCG(3, 9)), id, nil)
		b := Generate(rand.New(rand.NewPCG(3, 9)), id, nil)
		assert.Equal(t, a, b, "shape %s", id)
	}
}

func TestSphereStaysInBall(t *testing.T) {
	b := Generate(testRand(), Sphere, nil)
	assert.LessOrEqual(t, maxNorm(b), float32(fallbackRadius)+1e-4)
}

func TestHeartEnvelope(t *testing.T) {
	b := Generate(testRand(), Heart, nil)
	for i := range b.Count {
		assert.LessOrEqual(t, math32.Abs(b.Positions[3*i]), float32(8))
		assert.LessOrEqual(t, math32.Abs(b.Positions[3*i+1]), float32(9))
		assert.LessOrEqual(t, math32.Abs(b.Positions[3*i+2]), float32(0.6))
	}
}

func TestTreeAttributes(t *testing.T) {
	b := Generate(testRand(), Tree, nil)
	require.Len(t, b.Colors, 3*b.Count)
	require.Len(t, b.SizeOverrides, b.Count)
	require.Len(t, b.TextureEligible, b.Count)

	starStart := b.Count - starPoints
	for i := starStart; i < b.Count; i++ {
		assert.InDelta(t, starSize, b.SizeOverrides[i], 1e-6)
		assert.Greater(t, b.Colors[3*i], float32(0.9), "star points are yellow")
		assert.Less(t, b.Colors[3*i+2], float32(0.5))
		assert.Greater(t, b.Positions[3*i+1], float32(treeHeight/2-1), "star sits at the apex")
	}

	ornaments := 0
	for i := range starStart {
		if b.SizeOverrides[i] == ornamentSize {
			ornaments++
			assert.Equal(t, float32(1), b.TextureEligible[i])
		} else {
			assert.Equal(t, float32(0), b.TextureEligible[i])
			assert.Greater(t, b.Colors[3*i+1], b.Colors[3*i], "foliage is green")
		}
	}
	ratio := float32(ornaments) / float32(starStart)
	assert.InDelta(t, 1.0/ornamentEvery, ratio, 0.01)
}

func TestFlagColors(t *testing.T) {
	b := Generate(testRand(), Flag, nil)
	require.Len(t, b.Colors, 3*b.Count)

	stars := 0
	for i := range b.Count {
		r, g := b.Colors[3*i], b.Colors[3*i+1]
		if g > 0.5 {
			stars++
			assert.InDelta(t, 1.0, r, 1e-6)
			// Canton stars live in the upper hoist quadrant.
			assert.Less(t, b.Positions[3*i], float32(0))
			assert.Greater(t, b.Positions[3*i+1], float32(-0.1))
		} else {
			assert.InDelta(t, 0.87, r, 1e-6)
		}
		assert.LessOrEqual(t, math32.Abs(b.Positions[3*i+2]), float32(flagWaveAmp)+1e-4)
	}
	assert.InDelta(t, starShare, float32(stars)/float32(b.Count), 0.02)
}

func TestSaturnRingIsFlat(t *testing.T) {
	b := Generate(testRand(), Saturn, nil)
	for i := b.Count * 45 / 100; i < b.Count; i++ {
		x := b.Positions[3*i]
		z := b.Positions[3*i+2]
		r := math32.Sqrt(x*x + z*z)
		assert.GreaterOrEqual(t, r, float32(4.3), "ring points stay outside the body")
	}
}

func TestParseIDRoundTrip(t *testing.T) {
	for id, name := range idNames {
		got, ok := ParseID(name)
		require.True(t, ok, name)
		assert.Equal(t, id, got)
		assert.Equal(t, name, got.String())
	}
	_, ok := ParseID("dodecahedron")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ID(999).String())
}

func TestAllExcludesPixelShapes(t *testing.T) {
	ids := All()
	assert.Len(t, ids, 19)
	for _, id := range ids {
		assert.False(t, id.PixelDerived(), "shape %s", id)
	}
}
