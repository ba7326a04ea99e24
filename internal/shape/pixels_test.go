package shape

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidBuffer builds a w x h buffer where every pixel has the given color
// and full alpha.
func solidBuffer(w, h int, r, g, b uint8) *PixelBuffer {
	pix := make([]uint8, 4*w*h)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

func TestPixelBufferEmpty(t *testing.T) {
	var nilBuf *PixelBuffer
	assert.True(t, nilBuf.Empty())
	assert.True(t, (&PixelBuffer{Width: 0, Height: 4}).Empty())
	assert.True(t, (&PixelBuffer{Width: 2, Height: 2, Pix: make([]uint8, 3)}).Empty())
	assert.False(t, solidBuffer(2, 2, 0, 0, 0).Empty())
}

func TestPixelsKeepOnlyOpaque(t *testing.T) {
	// 3x1 image: transparent, exactly at threshold, above threshold.
	buf := &PixelBuffer{Width: 3, Height: 1, Pix: []uint8{
		10, 20, 30, 0,
		50, 60, 70, alphaThreshold,
		200, 100, 50, 255,
	}}
	b := Generate(testRand(), Image, buf)
	require.Equal(t, 1, b.Count)
	assert.InDelta(t, 200.0/255, b.Colors[0], 1e-6)
	assert.InDelta(t, 100.0/255, b.Colors[1], 1e-6)
	assert.InDelta(t, 50.0/255, b.Colors[2], 1e-6)
}

func TestPixelsPreserveAspectAndOrientation(t *testing.T) {
	b := Generate(testRand(), Image, solidBuffer(20, 10, 255, 255, 255))
	require.Equal(t, 200, b.Count)

	var maxX, maxY float32
	for i := range b.Count {
		maxX = math32.Max(maxX, math32.Abs(b.Positions[3*i]))
		maxY = math32.Max(maxY, math32.Abs(b.Positions[3*i+1]))
		assert.LessOrEqual(t, math32.Abs(b.Positions[3*i+2]), float32(pixelDepthJitter))
	}
	// Long axis fills the 14-unit square, short axis scales with it.
	assert.InDelta(t, pixelExtent/2, maxX, 0.4)
	assert.InDelta(t, pixelExtent/4, maxY, 0.4)

	// First kept pixel is the top-left corner: left of center, above it.
	assert.Less(t, b.Positions[0], float32(0))
	assert.Greater(t, b.Positions[1], float32(0))
}

func TestPixelsSubsampleAtCapacity(t *testing.T) {
	// 240x200 = 48000 opaque pixels, more than the cloud can hold.
	b := Generate(testRand(), Image, solidBuffer(240, 200, 128, 128, 128))
	assert.Equal(t, MaxPoints, b.Count)
	assert.Len(t, b.Positions, 3*MaxPoints)
	assert.Len(t, b.Colors, 3*MaxPoints)

	// The subsample is unbiased: both image halves keep roughly half.
	top := 0
	for i := range b.Count {
		if b.Positions[3*i+1] > 0 {
			top++
		}
	}
	assert.InDelta(t, 0.5, float32(top)/float32(b.Count), 0.02)
}

func TestPixelShapeWithoutPixelsFallsBack(t *testing.T) {
	for _, id := range []ID{Image, Text} {
		b := Generate(testRand(), id, nil)
		assert.Equal(t, ProceduralCount, b.Count, "shape %s", id)
		assert.Nil(t, b.Colors, "fallback carries no inherent colors")
	}
}
