package cloud

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how base points are colored when the shape does not bring its
// own palette.
type Mode int

const (
	Mono Mode = iota
	Gradient
	Rainbow
	ImageColors
)

var modeNames = map[Mode]string{
	Mono:        "mono",
	Gradient:    "gradient",
	Rainbow:     "rainbow",
	ImageColors: "image",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode maps a mode name to its Mode, defaulting to Mono for anything it
// does not recognize.
func ParseMode(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return m, true
		}
	}
	return Mono, false
}

// RGB is a normalized [0,1] color triple, the only color form the point set
// stores.
type RGB struct {
	R, G, B float32
}

// ParseHex decodes a #rrggbb (or #rgb) string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}, nil
}

// MustHex is ParseHex for compile-time constants; it panics on bad input.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// hue returns a full-saturation, full-value color at h degrees.
func hue(h float32) RGB {
	c := colorful.Hsv(float64(h), 1, 1)
	return RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// lerp blends a toward b by t, component-wise.
func lerp(a, b RGB, t float32) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}
