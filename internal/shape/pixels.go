package shape

import (
	"math/rand/v2"
)

// PixelBuffer is a rectangular RGBA image handed in by a pixel source
// (decoded upload, rasterized text). Row-major, top-left origin, straight
// alpha, 4 bytes per pixel.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// Empty reports whether the buffer has no usable pixels. A nil buffer, a
// zero dimension and a short Pix slice all count as empty so that malformed
// input degrades to the procedural fallback instead of a panic.
func (p *PixelBuffer) Empty() bool {
	return p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Pix) < 4*p.Width*p.Height
}

const (
	// alphaThreshold is the minimum alpha (out of 255) for a pixel to
	// become a particle.
	alphaThreshold = 20

	// pixelExtent is the world-space size of the square the image is
	// fitted into. The longer image axis spans this many units; the
	// shorter one shrinks proportionally so the aspect ratio survives.
	pixelExtent = 14.0

	// pixelDepthJitter is the +/- z offset applied per point so a flat
	// image still reads as a cloud.
	pixelDepthJitter = 0.25
)

// generatePixels converts every sufficiently opaque pixel into one particle
// carrying the pixel's color. When the image has more opaque pixels than the
// cloud has slots, a full Fisher-Yates shuffle picks an unbiased subset; a
// partial sample would systematically favor the top rows.
func generatePixels(rng *rand.Rand, pix *PixelBuffer) Bundle {
	w, h := pix.Width, pix.Height
	kept := make([]int, 0, w*h/4)
	for y := range h {
		row := y * w * 4
		for x := range w {
			if pix.Pix[row+x*4+3] > alphaThreshold {
				kept = append(kept, y*w+x)
			}
		}
	}

	if len(kept) > MaxPoints {
		rng.Shuffle(len(kept), func(i, j int) {
			kept[i], kept[j] = kept[j], kept[i]
		})
		kept = kept[:MaxPoints]
	}

	scale := float32(pixelExtent) / float32(max(w, h))
	halfW := float32(w) / 2
	halfH := float32(h) / 2

	b := Bundle{
		Positions: make([]float32, 3*len(kept)),
		Colors:    make([]float32, 3*len(kept)),
		Count:     len(kept),
	}
	for i, idx := range kept {
		x := idx % w
		y := idx / w
		px := (float32(x) + 0.5 - halfW) * scale
		// Image rows grow downward; world y grows upward.
		py := (halfH - float32(y) - 0.5) * scale
		pz := (rng.Float32() - 0.5) * 2 * pixelDepthJitter
		b.setPosition(i, px, py, pz)

		o := idx * 4
		b.setColor(i,
			float32(pix.Pix[o+0])/255,
			float32(pix.Pix[o+1])/255,
			float32(pix.Pix[o+2])/255,
		)
	}
	return b
}
