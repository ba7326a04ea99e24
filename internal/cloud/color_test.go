package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0055")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.0, c.G, 1e-6)
	assert.InDelta(t, 0x55/255.0, c.B, 1e-6)

	_, err = ParseHex("not-a-color")
	assert.Error(t, err)

	assert.Panics(t, func() { MustHex("#zzzzzz") })
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"mono", "gradient", "rainbow", "image"} {
		m, ok := ParseMode(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.String())
	}
	m, ok := ParseMode("plaid")
	assert.False(t, ok)
	assert.Equal(t, Mono, m)
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestLerp(t *testing.T) {
	a := RGB{R: 1}
	b := RGB{B: 1}
	assert.Equal(t, a, lerp(a, b, 0))
	assert.Equal(t, b, lerp(a, b, 1))
	mid := lerp(a, b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.InDelta(t, 0.5, mid.B, 1e-6)
}

func TestHueCardinals(t *testing.T) {
	r := hue(0)
	assert.InDelta(t, 1.0, r.R, 1e-6)
	assert.InDelta(t, 0.0, r.G, 1e-6)

	g := hue(120)
	assert.InDelta(t, 1.0, g.G, 1e-6)

	b := hue(240)
	assert.InDelta(t, 1.0, b.B, 1e-6)
}
