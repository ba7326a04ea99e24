package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Snapshot reads the current framebuffer back into an image. GL rows run
// bottom-up, so they get flipped into image order here.
func Snapshot(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.Finish()
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	rowBytes := 4 * width
	tmp := make([]byte, rowBytes)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*rowBytes : (y+1)*rowBytes]
		bottom := img.Pix[(height-1-y)*rowBytes : (height-y)*rowBytes]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
	return img
}

// SavePNG writes an image to disk.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
