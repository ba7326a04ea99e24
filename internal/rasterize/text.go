// Package rasterize turns text and image files into the RGBA pixel buffers
// the pixel-derived shapes consume. It is the only package that knows about
// fonts and image decoding; the generator just sees pixels.
package rasterize

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

const (
	// defaultTextSize is the font size in pixels when the caller does not
	// pick one.
	defaultTextSize = 96.0

	// maxCanvasWidth bounds the rasterized line; longer text is shrunk to
	// fit rather than truncated.
	maxCanvasWidth = 2048

	textPadding = 8
)

// TextOptions tunes text rasterization.
type TextOptions struct {
	// Size is the font size in pixels; <= 0 means the default.
	Size float64
}

var parseFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Text rasterizes s as a single white-on-transparent line and returns the
// pixel buffer. Whitespace-only input is an error: it would generate zero
// particles and silently blank the cloud.
func Text(s string, opts TextOptions) (*shape.PixelBuffer, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("rasterize text: empty string")
	}
	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("parse builtin font: %w", err)
	}

	size := opts.Size
	if size <= 0 {
		size = defaultTextSize
	}
	face := newFace(f, size)
	d := &font.Drawer{Face: face}
	width := d.MeasureString(s).Ceil()
	// Hinting rounds glyph advances, so one rescale can still land wide;
	// retry a few times with a small margin.
	for try := 0; width > maxCanvasWidth && try < 4; try++ {
		size *= 0.98 * float64(maxCanvasWidth) / float64(width)
		face = newFace(f, size)
		d.Face = face
		width = d.MeasureString(s).Ceil()
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize text: degenerate canvas %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*textPadding, height+2*textPadding))
	d.Dst = img
	d.Src = image.White
	d.Dot = freetype.Pt(textPadding, textPadding+ascent)
	d.DrawString(s)

	return &shape.PixelBuffer{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Pix:    img.Pix,
	}, nil
}
