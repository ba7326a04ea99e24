package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// genDNA winds a double helix: two strands offset by half a turn, with a
// sparse set of straight rungs bridging them. Strand assignment and height
// are keyed on the point index so the ladder stays coherent.
func genDNA(rng *rand.Rand, b *Bundle) {
	const (
		helixTurns  = 5.0
		helixHeight = 10.0
		helixRadius = 2.2
		rungEvery   = 24 // one rung point per this many strand points
		strandFuzz  = 0.18
	)
	for i := range b.Count {
		f := float32(i) / float32(b.Count)
		y := (f - 0.5) * helixHeight
		theta := f * helixTurns * 2 * math32.Pi

		if i%rungEvery == 0 {
			// Rung: interpolate straight across between the two strands.
			t := rng.Float32()
			x0, z0 := helixRadius*math32.Cos(theta), helixRadius*math32.Sin(theta)
			x1, z1 := -x0, -z0
			b.setPosition(i, x0+(x1-x0)*t, y, z0+(z1-z0)*t)
			continue
		}
		if i%2 == 1 {
			theta += math32.Pi
		}
		x := helixRadius*math32.Cos(theta) + (rng.Float32()-0.5)*strandFuzz
		z := helixRadius*math32.Sin(theta) + (rng.Float32()-0.5)*strandFuzz
		b.setPosition(i, x, y, z)
	}
}

// genSnake lays points along a slithering sine path, index-keyed front to
// back. The body tapers toward the tail, swells into a head at the front,
// and a forked tongue flicks out ahead of the head.
func genSnake(rng *rand.Rand, b *Bundle) {
	const (
		snakeLength  = 12.0
		waveAmp      = 2.2
		waves        = 2.5
		bodyRadius   = 0.8
		headShare    = 0.06
		headScale    = 1.7
		tonguePoints = 60
		tongueLength = 1.1
	)
	for i := range b.Count {
		if i < tonguePoints {
			// Tongue tip: two thin prongs forking off the snout.
			t := rng.Float32()
			fork := float32(0.22)
			if i%2 == 0 {
				fork = -fork
			}
			b.setPosition(i,
				-snakeLength/2-bodyRadius*headScale-t*tongueLength,
				(rng.Float32()-0.5)*0.08,
				t*fork+(rng.Float32()-0.5)*0.08,
			)
			continue
		}

		f := float32(i) / float32(b.Count) // 0 = head, 1 = tail tip
		x := (f - 0.5) * snakeLength
		z := waveAmp * math32.Sin(f*waves*2*math32.Pi)

		r := bodyRadius * (1 - f*0.75)
		if f < headShare {
			r = bodyRadius * headScale * (0.6 + f/headShare*0.4)
		}
		dir := unitVector(rng)
		jr := r * math32.Cbrt(rng.Float32())
		b.setPosition(i,
			x+dir.X()*jr,
			dir.Y()*jr+math32.Sin(f*9)*0.2,
			z+dir.Z()*jr,
		)
	}
}
