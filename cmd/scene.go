package cmd

import (
	"image"
	"log"

	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/cloud"
	"github.com/cooffer/ZenParticlesBy3D/internal/config"
	"github.com/cooffer/ZenParticlesBy3D/internal/photo"
	"github.com/cooffer/ZenParticlesBy3D/internal/rasterize"
	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// sceneFlags describe what to draw. run, snapshot and preview share them.
type sceneFlags struct {
	shape          string
	colorMode      string
	baseColor      string
	secondaryColor string
	text           string
	imagePath      string
	spritePath     string
	photos         []string
}

var sceneArgs sceneFlags

func registerSceneFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&sceneArgs.shape, "shape", "", "shape to display (see the shapes command)")
	f.StringVar(&sceneArgs.colorMode, "color-mode", "", "mono, gradient, rainbow or image")
	f.StringVar(&sceneArgs.baseColor, "base-color", "", "base color as #rrggbb")
	f.StringVar(&sceneArgs.secondaryColor, "secondary-color", "", "gradient end color as #rrggbb")
	f.StringVar(&sceneArgs.text, "text", "", "form the cloud from this text")
	f.StringVar(&sceneArgs.imagePath, "image", "", "form the cloud from this PNG or JPEG")
	f.StringVar(&sceneArgs.spritePath, "sprite", "", "draw points with this image instead of the soft disk")
	f.StringArrayVar(&sceneArgs.photos, "photo", nil, "photo floating through the cloud (repeatable, up to 5)")
}

// override lays validated flag values over the loaded settings. Settings
// file problems are forgiven and reset; explicit flags are not.
func (sf *sceneFlags) override(s *config.Settings) {
	if sf.shape != "" {
		if _, ok := shape.ParseID(sf.shape); !ok {
			log.Fatalf("Unknown shape %q, see the shapes command", sf.shape)
		}
		s.Shape = sf.shape
	}
	if sf.colorMode != "" {
		if _, ok := cloud.ParseMode(sf.colorMode); !ok {
			log.Fatalf("Unknown color mode %q", sf.colorMode)
		}
		s.ColorMode = sf.colorMode
	}
	if sf.baseColor != "" {
		if _, err := cloud.ParseHex(sf.baseColor); err != nil {
			log.Fatal("Invalid base color: ", err)
		}
		s.BaseColor = sf.baseColor
	}
	if sf.secondaryColor != "" {
		if _, err := cloud.ParseHex(sf.secondaryColor); err != nil {
			log.Fatal("Invalid secondary color: ", err)
		}
		s.SecondaryColor = sf.secondaryColor
	}
}

// scene is the resolved thing to draw: a shape, its pixel source when the
// shape is derived from text or an image, and the assembly options.
type scene struct {
	id   shape.ID
	pix  *shape.PixelBuffer
	opts cloud.Options
}

// buildScene resolves settings plus flags into a scene. Settings have been
// validated, so parsing them cannot fail; pixel sources are produced here
// and any failure is fatal since the user asked for them explicitly.
func (sf *sceneFlags) buildScene(s *config.Settings, photoCount int) scene {
	id, _ := shape.ParseID(s.Shape)
	mode, _ := cloud.ParseMode(s.ColorMode)

	sc := scene{
		id: id,
		opts: cloud.Options{
			Mode:       mode,
			Base:       cloud.MustHex(s.BaseColor),
			Secondary:  cloud.MustHex(s.SecondaryColor),
			PhotoCount: photoCount,
		},
	}

	switch {
	case sf.text != "":
		pix, err := rasterize.Text(sf.text, rasterize.TextOptions{})
		if err != nil {
			log.Fatal("Failed to rasterize text: ", err)
		}
		sc.id, sc.pix = shape.Text, pix
	case sf.imagePath != "":
		pix, err := rasterize.ImageFile(sf.imagePath)
		if err != nil {
			log.Fatal("Failed to load image: ", err)
		}
		sc.id, sc.pix = shape.Image, pix
	}
	return sc
}

// loadPhotos fills an album from the --photo flags. A photo that cannot be
// decoded, or one past the album cap, is skipped with a warning; the cloud
// still renders.
func loadPhotos(paths []string) *photo.Album {
	album := photo.NewAlbum()
	for _, path := range paths {
		if _, err := album.AddFile(path); err != nil {
			log.Printf("Skipping photo %s: %v", path, err)
		}
	}
	return album
}

// loadSprite reads the --sprite image. Like photos, a broken sprite is
// skipped with a warning and the points fall back to the disk.
func loadSprite(path string) *image.RGBA {
	if path == "" {
		return nil
	}
	img, err := photo.LoadFile(path)
	if err != nil {
		log.Printf("Skipping sprite %s: %v", path, err)
		return nil
	}
	return img
}
