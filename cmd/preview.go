package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/cooffer/ZenParticlesBy3D/internal/cloud"
	"github.com/cooffer/ZenParticlesBy3D/internal/config"
	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// Preview tuning: rotation step per keypress, expansion step, and how many
// world units the terminal's height spans.
const (
	previewTurnStep   = 0.1
	previewExpandStep = 0.05
	previewExtent     = 24.0
)

var densityRamp = []rune(" .:-=+*#%@")

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw a shape in the terminal, no GPU required",
	Run:   Preview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	registerSceneFlags(previewCmd)
}

func Preview(cmd *cobra.Command, args []string) {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}
	sceneArgs.override(settings)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	points := cloud.NewPointSet(rng)
	sc := sceneArgs.buildScene(settings, 0)
	points.Assemble(rng, sc.id, shape.Generate(rng, sc.id, sc.pix), sc.opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("Failed to open terminal screen: ", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("Failed to init terminal screen: ", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.HideCursor()

	var yaw, pitch, expansion float32
	for {
		drawCloud(screen, points, sc.id, yaw, pitch, expansion)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyLeft:
				yaw -= previewTurnStep
			case ev.Key() == tcell.KeyRight:
				yaw += previewTurnStep
			case ev.Key() == tcell.KeyUp:
				pitch -= previewTurnStep
			case ev.Key() == tcell.KeyDown:
				pitch += previewTurnStep
			case ev.Rune() == '+' || ev.Rune() == '=':
				expansion = math32.Min(expansion+previewExpandStep, 1)
			case ev.Rune() == '-':
				expansion = math32.Max(expansion-previewExpandStep, 0)
			}
		}
	}
}

// drawCloud projects the point set onto the terminal grid. Each cell keeps a
// hit count for its density glyph and the color of its frontmost point.
func drawCloud(s tcell.Screen, points *cloud.PointSet, id shape.ID, yaw, pitch, expansion float32) {
	s.Clear()
	w, h := s.Size()
	if w < 8 || h < 4 {
		s.Show()
		return
	}

	// Bottom row is the status line.
	rows := h - 1
	counts := make([]int, w*rows)
	depths := make([]float32, w*rows)
	colors := make([]tcell.Color, w*rows)

	cy, sy := math32.Cos(yaw), math32.Sin(yaw)
	cp, sp := math32.Cos(pitch), math32.Sin(pitch)

	// Terminal cells are roughly twice as tall as wide.
	unit := float32(rows) / previewExtent
	centerX, centerY := float32(w)/2, float32(rows)/2

	for i := range points.ActiveCount {
		x, y, z := points.Displace(i, expansion)

		x1 := x*cy + z*sy
		z1 := -x*sy + z*cy
		y1 := y*cp - z1*sp
		z2 := y*sp + z1*cp

		col := int(centerX + x1*unit*2)
		row := int(centerY - y1*unit)
		if col < 0 || col >= w || row < 0 || row >= rows {
			continue
		}
		idx := row*w + col
		counts[idx]++
		if counts[idx] == 1 || z2 > depths[idx] {
			depths[idx] = z2
			colors[idx] = tcell.NewRGBColor(
				int32(points.Colors[3*i]*255),
				int32(points.Colors[3*i+1]*255),
				int32(points.Colors[3*i+2]*255),
			)
		}
	}

	for row := range rows {
		for col := range w {
			c := counts[row*w+col]
			if c == 0 {
				continue
			}
			glyph := densityRamp[min(1+c/3, len(densityRamp)-1)]
			s.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(colors[row*w+col]))
		}
	}

	status := fmt.Sprintf(" %s | arrows rotate, +/- expand, q quits ", id)
	for i, r := range status {
		if i >= w {
			break
		}
		s.SetContent(i, rows, r, nil, tcell.StyleDefault.Reverse(true))
	}
	s.Show()
}
