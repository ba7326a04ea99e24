// Package photo keeps the user's uploaded photo textures: an ordered album
// of at most five decoded RGBA images, enforced at the moment of adding so
// nothing past the cap ever reaches the renderer.
package photo

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// MaxPhotos is the album capacity. The shader carries exactly this many
// sampler slots, so the cap is structural, not a tunable.
const MaxPhotos = 5

// maxTextureDim bounds the longer edge of a stored photo. Larger uploads are
// downscaled before they ever hit the GPU.
const maxTextureDim = 512

// ErrAlbumFull rejects the sixth and later uploads. The album is unchanged.
var ErrAlbumFull = errors.New("photo album is full")

// ErrAlbumClosed rejects loads that finish after teardown.
var ErrAlbumClosed = errors.New("photo album is closed")

// Album is an ordered, capped list of decoded photos. Safe for concurrent
// use; loads racing teardown are dropped via the closed flag.
type Album struct {
	mu     sync.Mutex
	images []*image.RGBA
	closed bool
}

// NewAlbum returns an empty album.
func NewAlbum() *Album {
	return &Album{}
}

// Add stores img in the next free slot and returns its index. The image is
// converted to RGBA and downscaled to the texture budget on the way in.
func (a *Album) Add(img image.Image) (int, error) {
	prepared := prepare(img)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return 0, ErrAlbumClosed
	}
	if len(a.images) >= MaxPhotos {
		return 0, ErrAlbumFull
	}
	a.images = append(a.images, prepared)
	return len(a.images) - 1, nil
}

// AddFile decodes the image at path and adds it. A failed open or decode
// leaves the album untouched.
func (a *Album) AddFile(path string) (int, error) {
	img, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	return a.Add(img)
}

// LoadFile decodes the image at path into a texture-ready RGBA, downscaled
// to the same budget album photos get.
func LoadFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", path, err)
	}
	return prepare(img), nil
}

// Images returns the current photos in slot order. The slice is a copy; the
// images are shared.
func (a *Album) Images() []*image.RGBA {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*image.RGBA, len(a.images))
	copy(out, a.images)
	return out
}

// Count reports how many slots are occupied.
func (a *Album) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.images)
}

// Clear empties every slot.
func (a *Album) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.images = nil
}

// Close empties the album and refuses all further adds.
func (a *Album) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.images = nil
	a.closed = true
}

// prepare converts img to RGBA, downscaling so the longer edge fits the
// texture budget while keeping the aspect ratio.
func prepare(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxTextureDim || h > maxTextureDim {
		if w >= h {
			h = h * maxTextureDim / w
			w = maxTextureDim
		} else {
			w = w * maxTextureDim / h
			h = maxTextureDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		return transform.Resize(img, w, h, transform.Linear)
	}
	// The GPU upload reads Pix as tightly packed rows from (0,0).
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*w {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
