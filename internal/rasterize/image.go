package rasterize

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// maxImagePixels bounds the decoded pixel count fed to the generator. The
// cloud holds 40k points, so anything past a few hundred thousand pixels is
// pure subsampling work.
const maxImagePixels = 512 * 512

// ImageFile decodes the PNG or JPEG at path into a pixel buffer, downscaling
// oversized images to the pixel budget.
func ImageFile(path string) (*shape.PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return FromImage(img)
}

// FromImage converts any decoded image into a pixel buffer within the pixel
// budget.
func FromImage(img image.Image) (*shape.PixelBuffer, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", w, h)
	}

	if w*h > maxImagePixels {
		scale := math.Sqrt(float64(maxImagePixels) / float64(w*h))
		sw := int(float64(w) * scale)
		sh := int(float64(h) * scale)
		if sw < 1 {
			sw = 1
		}
		if sh < 1 {
			sh = 1
		}
		img = transform.Resize(img, sw, sh, transform.Linear)
		w, h = sw, sh
		b = img.Bounds()
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) || rgba.Stride != 4*w {
		out := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		rgba = out
	}

	return &shape.PixelBuffer{Width: w, Height: h, Pix: rgba.Pix}, nil
}
