package cmd

import (
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/cloud"
	"github.com/cooffer/ZenParticlesBy3D/internal/config"
	"github.com/cooffer/ZenParticlesBy3D/internal/gesture"
	"github.com/cooffer/ZenParticlesBy3D/internal/render"
	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
	"github.com/cooffer/ZenParticlesBy3D/pkg/window"
)

// autoSpinRate keeps the cloud turning slowly even with no input, in
// radians per second.
const autoSpinRate = 0.15

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the particle window",
	Run:   Run,
}

var noGestures bool

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()

	registerSceneFlags(runCmd)
	runCmd.Flags().BoolVar(&noGestures, "no-gestures", false, "ignore all input, render at neutral state")
}

func Run(cmd *cobra.Command, args []string) {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}
	sceneArgs.override(settings)

	win, err := window.New(window.Options{
		Title:  "ZenParticles",
		Width:  settings.Width,
		Height: settings.Height,
		VSync:  settings.VSync,
	})
	if err != nil {
		log.Fatal("Failed to create window: ", err)
	}
	defer win.Destroy()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	points := cloud.NewPointSet(rng)

	renderer, err := render.New(points)
	if err != nil {
		log.Fatal("Failed to initialize renderer: ", err)
	}
	defer renderer.Destroy()

	album := loadPhotos(sceneArgs.photos)
	renderer.SetPhotos(album.Images())
	renderer.SetSprite(loadSprite(sceneArgs.spritePath))

	sc := sceneArgs.buildScene(settings, album.Count())
	current := sc.id
	regenerate := func() {
		points.Assemble(rng, current, shape.Generate(rng, current, sc.pix), sc.opts)
		renderer.Upload(points)
	}
	regenerate()

	// Peace cycles through the procedural shapes, starting after the
	// current one when it is in the list.
	order := shape.All()
	orderIdx := 0
	for i, id := range order {
		if id == current {
			orderIdx = i
			break
		}
	}

	pointer := gesture.NewPointerSource()
	var source gesture.Source
	if !noGestures {
		source = pointer
	}
	smoother := gesture.NewSmoother(gesture.DefaultSmoothing)

	start := time.Now()
	lastTime := start
	var wasPeace, wasNamaste bool

	for !win.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		elapsed := float32(now.Sub(start).Seconds())

		win.PollEvents()

		if source != nil {
			x, y := win.GetCursorPos()
			pointer.Track(gesture.Sample{
				X:        x,
				Y:        y,
				Dragging: win.GetMouseButton(),
				Scroll:   win.ConsumeScroll(),
				Peace:    win.KeyHeld(window.KeyP),
				Namaste:  win.KeyHeld(window.KeyN),
			}, dt)
		}

		target := gesture.Neutral()
		if source != nil {
			target = source.Latest()
		}
		state := smoother.Advance(target)
		peaceNow, namasteNow := state.PeaceSign, state.Namaste

		if peaceNow && !wasPeace {
			orderIdx = (orderIdx + 1) % len(order)
			current = order[orderIdx]
			regenerate()
			log.Printf("Shape: %s", current)
		}
		if namasteNow && !wasNamaste {
			pointer.Reset()
			smoother.Reset()
			state = smoother.Displayed()
		}
		wasPeace, wasNamaste = peaceNow, namasteNow

		w, h := win.GetSize()
		renderer.Frame(render.FrameState{
			Width:            w,
			Height:           h,
			DevicePixelRatio: win.ContentScale(),
			Time:             elapsed,
			Expansion:        state.Expansion,
			Rotation:         state.Rotation + autoSpinRate*elapsed,
			Zoom:             state.Zoom,
			Scale:            settings.Scale,
			PointSize:        settings.PointSize,
			Opacity:          settings.Opacity,
			PixelShape:       current.PixelDerived(),
		})
		win.SwapBuffers()
	}
}
